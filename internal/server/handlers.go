// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/navigator"
)

const maxAskBody = 16 << 10

// APIHandlers serves the navigation endpoints.
type APIHandlers struct {
	logger *slog.Logger
	nav    *navigator.Navigator
}

// NewAPIHandlers constructs APIHandlers over nav.
func NewAPIHandlers(logger *slog.Logger, nav *navigator.Navigator) *APIHandlers {
	return &APIHandlers{logger: logger, nav: nav}
}

type healthResponse struct {
	Status    string `json:"status"`
	Locations int    `json:"locations"`
}

type locationsResponse struct {
	Locations []campus.Location `json:"locations"`
	Count     int               `json:"count"`
}

// replyResponse is a navigator reply plus its rendered directions.
type replyResponse struct {
	navigator.Reply
	Directions []string `json:"directions,omitempty"`
}

type askRequest struct {
	Text string `json:"text"`
}

func (h *APIHandlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, healthResponse{
		Status:    "ok",
		Locations: h.nav.Graph().LocationCount(),
	})
}

func (h *APIHandlers) handleLocations(w http.ResponseWriter, r *http.Request) {
	locs := h.nav.Graph().Locations()
	respondData(w, r, http.StatusOK, locationsResponse{Locations: locs, Count: len(locs)})
}

// handleRoute is the form flow: GET /api/routes?from=<id>&to=<id>.
func (h *APIHandlers) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reply := h.nav.Navigate(q.Get("from"), q.Get("to"))

	switch reply.Kind {
	case navigator.KindRoute:
		respondReply(w, r, http.StatusOK, reply)
	case navigator.KindNoRoute:
		respondReply(w, r, http.StatusNotFound, reply)
	default:
		respondReply(w, r, http.StatusBadRequest, reply)
	}
}

// handleAsk is the chat flow: POST /api/ask {"text": "..."}.
// Every understood message is a 200; the reply kind tells the client what happened.
func (h *APIHandlers) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxAskBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Warn("invalid ask request", "error", err, "request_id", RequestID(r.Context()))
		respondError(w, r, http.StatusBadRequest, "invalid_request", "body must be a JSON object with a text field")
		return
	}

	reply := h.nav.Ask(req.Text)
	status := http.StatusOK
	if reply.Kind == navigator.KindMissingInput {
		status = http.StatusBadRequest
	}
	respondReply(w, r, status, reply)
}

// respondReply wraps a reply in the envelope. Non-route replies carry an
// error whose code is the reply kind.
func respondReply(w http.ResponseWriter, r *http.Request, status int, reply navigator.Reply) {
	body := envelope{
		Success:   reply.OK(),
		Data:      replyResponse{Reply: reply},
		RequestID: RequestID(r.Context()),
	}
	if reply.OK() {
		body.Data = replyResponse{Reply: reply, Directions: navigator.Directions(*reply.Result)}
	} else {
		body.Error = &apiError{Code: reply.Kind.String(), Message: reply.Message}
	}

	respondJSON(w, status, body)
}

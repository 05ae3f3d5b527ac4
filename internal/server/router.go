// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequestIDHeader carries the request correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// envelope is the shape of every JSON response.
type envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
	RequestID string    `json:"request_id"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewRouter wires the HTTP routes exposed by the navigation API.
func NewRouter(logger *slog.Logger, api *APIHandlers) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware(logger))

	r.HandleFunc("/healthz", api.handleHealth).Methods(http.MethodGet)

	sub := r.PathPrefix("/api").Subrouter()
	sub.HandleFunc("/locations", api.handleLocations).Methods(http.MethodGet)
	sub.HandleFunc("/routes", api.handleRoute).Methods(http.MethodGet)
	sub.HandleFunc("/ask", api.handleAsk).Methods(http.MethodPost)

	// mux skips middleware for these, so they are wrapped by hand.
	r.NotFoundHandler = requestIDMiddleware(loggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, "not_found", "no such endpoint")
	})))
	r.MethodNotAllowedHandler = requestIDMiddleware(loggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "method_not_allowed", req.Method+" is not allowed here")
	})))

	return r
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestID returns the correlation id attached by the router, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", RequestID(r.Context()),
			)
		})
	}
}

func respondData(w http.ResponseWriter, r *http.Request, status int, data any) {
	respondJSON(w, status, envelope{Success: true, Data: data, RequestID: RequestID(r.Context())})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondJSON(w, status, envelope{
		Error:     &apiError{Code: code, Message: message},
		RequestID: RequestID(r.Context()),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

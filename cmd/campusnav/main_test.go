// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"CAMPUSNAV_DATA", "CAMPUSNAV_SELECTION", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRoute(t *testing.T) {
	for _, sel := range []string{"linear", "heap"} {
		t.Run(sel, func(t *testing.T) {
			out, err := runCLI(t, "-selection", sel, "route", "gate1", "food_court")
			require.NoError(t, err)
			assert.Equal(t, strings.Join([]string{
				"Start at Main Gate 1",
				"Walk 180 m to Main Gate 2",
				"Walk 75 m to Admin Block 1",
				"Walk 125 m to Admin Block 2",
				"Walk 215 m to Food Court",
				"Arrive at Food Court: 595 m total, about 8 min",
			}, "\n")+"\n", out)
		})
	}

	_, err := runCLI(t, "route", "gate1", "gate1")
	require.EqualError(t, err, "Start and end locations cannot be the same")

	_, err = runCLI(t, "route", "gate1", "moon")
	require.EqualError(t, err, "No route found between selected locations")
}

func TestAsk(t *testing.T) {
	out, err := runCLI(t, "ask", "take", "me", "from", "hostel", "1", "to", "food", "court")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Start at Hostel 1\n"), out)
	assert.Contains(t, out, "Arrive at Food Court")

	out, err = runCLI(t, "ask", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "I couldn't identify any campus locations")
}

func TestLocations(t *testing.T) {
	out, err := runCLI(t, "locations")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[1], "gate1"))
	assert.Contains(t, lines[1], "Main Gate 1")
}

func TestDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
locations:
  - {id: lib, name: Library}
  - {id: lab, name: Physics Lab}
connections:
  - {from: lib, to: lab, distance: 1500}
`), 0o600))

	out, err := runCLI(t, "-data", path, "route", "lab", "lib")
	require.NoError(t, err)
	assert.Contains(t, out, "Arrive at Library: 1500 m total, about 18 min")

	_, err = runCLI(t, "-data", filepath.Join(t.TempDir(), "missing.yaml"), "locations")
	require.Error(t, err)
}

func TestUsageErrors(t *testing.T) {
	_, err := runCLI(t)
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "fly", "home")
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "route", "gate1")
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "ask")
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "-selection", "random", "locations")
	require.Error(t, err)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	return ln.Addr().(*net.TCPAddr).Port
}

func TestServeStopsWithContext(t *testing.T) {
	for _, k := range []string{"CAMPUSNAV_DATA", "CAMPUSNAV_SELECTION", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", strconv.Itoa(freePort(t)))
	t.Setenv("LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(ctx, []string{"serve"}, &stdout, &stderr))
}

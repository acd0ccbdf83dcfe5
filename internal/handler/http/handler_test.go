package http

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-push-mirror/internal/store"
	"github.com/MKhiriev/go-push-mirror/models"
)

func get(t *testing.T, env *testEnv, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, env.server.URL+path, nil)
	require.NoError(t, err)
	// keep the transport from transparently decompressing
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestGetNotifications(t *testing.T) {
	env := newTestEnv(t)
	env.hub.OnNotificationsUpdated([]models.NotificationView{
		{SourceKind: models.SourceSMS, Header: "SMS: Alice", Body: "hi", CreatedAt: time.Unix(100, 0).UTC()},
	})

	resp := get(t, env, "/api/notifications")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))

	var got []models.NotificationView
	decode(t, resp, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "SMS: Alice", got[0].Header)
	assert.Equal(t, models.SourceSMS, got[0].SourceKind)
}

func TestGetNotifications_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	resp := get(t, env, "/api/notifications")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestGetDevices(t *testing.T) {
	env := newTestEnv(t)
	env.hub.OnDevicesUpdated([]models.Device{{Identifier: "d1", DisplayName: "Phone"}})

	resp := get(t, env, "/api/devices")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Device
	decode(t, resp, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Phone", got[0].DisplayName)
}

func TestGetCommands(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantLimit  int
	}{
		{name: "default limit", wantStatus: http.StatusOK, wantLimit: defaultCommandsLimit},
		{name: "explicit limit", query: "?limit=5", wantStatus: http.StatusOK, wantLimit: 5},
		{name: "limit clamped", query: "?limit=5000", wantStatus: http.StatusOK, wantLimit: maxCommandsLimit},
		{name: "non-numeric limit", query: "?limit=abc", wantStatus: http.StatusBadRequest},
		{name: "zero limit", query: "?limit=0", wantStatus: http.StatusBadRequest},
		{
			name:       "journal query failure",
			err:        fmt.Errorf("%w: disk I/O error", store.ErrExecutingQuery),
			wantStatus: http.StatusServiceUnavailable,
			wantLimit:  defaultCommandsLimit,
		},
		{
			name:       "unknown failure",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantLimit:  defaultCommandsLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.dispatcher.err = tt.err
			env.dispatcher.records = []models.CommandRecord{
				{ID: "r1", Command: "display off", Outcome: models.CommandExecuted},
			}

			resp := get(t, env, "/api/commands"+tt.query)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantLimit, env.dispatcher.lastLimit)

			if tt.wantStatus != http.StatusOK {
				return
			}
			var got []models.CommandRecord
			decode(t, resp, &got)
			require.Len(t, got, 1)
			assert.Equal(t, models.CommandExecuted, got[0].Outcome)
		})
	}
}

func TestGetStatus(t *testing.T) {
	env := newTestEnv(t)

	resp := get(t, env, "/api/status")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got statusResponse
	decode(t, resp, &got)
	assert.Equal(t, "connected", got.Session)
}

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)

	resp := get(t, env, "/api/version")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", string(body))
}

func TestGetBuildInfo(t *testing.T) {
	env := newTestEnv(t)

	resp := get(t, env, "/api/build")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got buildInfoResponse
	decode(t, resp, &got)
	assert.Equal(t, buildInfoResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "N/A"}, got)
}

func TestRoutes_GZip(t *testing.T) {
	env := newTestEnv(t)
	env.hub.OnDevicesUpdated([]models.Device{{Identifier: "d1"}})

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/api/devices", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	var got []models.Device
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "d1", got[0].Identifier)
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/notifications", "/api/version", "/api/commands"} {
		resp, err := env.server.Client().Post(env.server.URL+path, "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	env := newTestEnv(t)

	resp := get(t, env, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestParseLimit(t *testing.T) {
	limit, err := parseLimit("")
	require.NoError(t, err)
	assert.Equal(t, defaultCommandsLimit, limit)

	_, err = parseLimit("-3")
	assert.ErrorIs(t, err, ErrInvalidLimit)
	assert.Equal(t, http.StatusBadRequest, statusFromError(err))
}

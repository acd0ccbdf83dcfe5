package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/presenter"
	"github.com/MKhiriev/go-push-mirror/internal/service"
	"github.com/MKhiriev/go-push-mirror/models"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(_ context.Context) string {
	return "1.2.3"
}

func (stubAppInfo) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("1.2.3", "2026-10-01", "")
}

type stubDispatcher struct {
	records   []models.CommandRecord
	err       error
	lastLimit int
}

func (s *stubDispatcher) Dispatch(_ context.Context, _ models.Push) models.CommandOutcome {
	return models.CommandIgnored
}

func (s *stubDispatcher) Recent(_ context.Context, limit int) ([]models.CommandRecord, error) {
	s.lastLimit = limit
	return s.records, s.err
}

type stubSession struct {
	state service.SessionState
}

func (s *stubSession) Start(_ context.Context) error { return nil }
func (s *stubSession) Stop()                         {}
func (s *stubSession) Done() <-chan struct{}         { return nil }
func (s *stubSession) State() service.SessionState   { return s.state }

type testEnv struct {
	hub        *presenter.Hub
	dispatcher *stubDispatcher
	server     *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		hub:        presenter.NewHub(config.Display{NumberOfNotifications: 3}, logger.Nop()),
		dispatcher: &stubDispatcher{},
	}
	services := &service.Services{
		AppInfoService:    stubAppInfo{},
		CommandDispatcher: env.dispatcher,
		StreamSession:     &stubSession{state: service.SessionConnected},
	}

	h := NewHandler(services, env.hub, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	env.server = httptest.NewServer(h.Init())
	t.Cleanup(env.server.Close)

	return env
}

package http

import (
	"time"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/presenter"
	"github.com/MKhiriev/go-push-mirror/internal/service"
	"github.com/MKhiriev/go-push-mirror/models"
)

// EventSource is the presentation state the handlers read from.
type EventSource interface {
	Devices() []models.Device
	Notifications() []models.NotificationView
	Subscribe() *presenter.Subscriber
	Unsubscribe(sub *presenter.Subscriber)
	Close()
}

type Handler struct {
	services *service.Services
	events   EventSource

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, events EventSource, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		events:         events,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// Close ends every open event stream. It is registered as a shutdown hook of
// the HTTP server, which does not track hijacked connections.
func (h *Handler) Close() {
	h.events.Close()
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/utils"
)

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.events.Notifications(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getNotifications").Msg("error writing response")
	}
}

func (h *Handler) getDevices(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.events.Devices(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getDevices").Msg("error writing response")
	}
}

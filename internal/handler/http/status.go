package http

import (
	"net/http"

	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/utils"
)

type statusResponse struct {
	Session string `json:"session"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Session: string(h.services.StreamSession.State())}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getStatus").Msg("error writing response")
	}
}

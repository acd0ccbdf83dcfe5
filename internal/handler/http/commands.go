// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/utils"
)

const (
	defaultCommandsLimit = 20
	maxCommandsLimit     = 200
)

// getCommands returns the newest command journal entries. The optional
// "limit" query parameter is clamped to maxCommandsLimit.
func (h *Handler) getCommands(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCommands").Msg("invalid limit")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.services.CommandDispatcher.Recent(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCommands").Msg("error reading command journal")
		http.Error(w, "error reading command journal", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getCommands").Msg("error writing response")
	}
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultCommandsLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	return min(limit, maxCommandsLimit), nil
}

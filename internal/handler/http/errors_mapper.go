package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-push-mirror/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidLimit: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusServiceUnavailable,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

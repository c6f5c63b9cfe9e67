package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDate: http.StatusBadRequest,
	service.ErrEmptyNote:   http.StatusBadRequest,
	service.ErrEmptyNoteID: http.StatusBadRequest,
	ErrInvalidJSON:         http.StatusBadRequest,

	service.ErrWrongPassphrase:         http.StatusUnauthorized,
	service.ErrLocked:                  http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSessionRevoked:          http.StatusUnauthorized,
	utils.ErrInvalidAuthHeader:         http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,

	service.ErrVaultNotEstablished:     http.StatusConflict,
	service.ErrVaultAlreadyEstablished: http.StatusConflict,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	store.ErrStorageUnavailable:    http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. Server-side
// faults are reported with the generic status text only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/utils"
)

// auth admits a request only when it carries a valid bearer token for the
// session that is currently unlocked. Locking the journal (explicitly or by
// the idle worker) therefore revokes every token issued before.
//
// On success the session id is stored in the request context under
// [utils.SessionIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeServiceError(w, r, err, "malformed authorization header")
			return
		}

		ctx := r.Context()
		token, err := h.services.SessionService.ParseToken(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err, "error occurred during parsing token")
			return
		}

		activeSession, unlocked := h.services.JournalService.SessionID()
		if !unlocked || activeSession != token.SessionID {
			writeServiceError(w, r, service.ErrSessionRevoked, "token belongs to an inactive session")
			return
		}

		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, token.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

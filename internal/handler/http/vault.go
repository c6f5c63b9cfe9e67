package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/utils"
	"github.com/MKhiriev/heart-journal/models"
)

func (h *Handler) getVaultStatus(w http.ResponseWriter, r *http.Request) {
	established, err := h.services.JournalService.IsVaultEstablished(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error checking vault")
		return
	}

	_, _ = utils.WriteJSON(w, models.VaultStatus{
		Established: established,
		Unlocked:    h.services.JournalService.IsUnlocked(),
	}, http.StatusOK)
}

// unlock creates the vault on first use or verifies the passphrase against
// it. A granted outcome starts a new session whose token is returned in the
// Authorization header; a rejected one answers 401 with the outcome body.
func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "error decoding unlock request")
		return
	}

	outcome, err := h.services.JournalService.CreateOrVerify(ctx, req.Passphrase)
	if err != nil {
		writeServiceError(w, r, err, "error unlocking journal")
		return
	}

	if !outcome.Granted() {
		log.Warn().Msg("unlock rejected")
		_, _ = utils.WriteJSON(w, models.UnlockResponse{Outcome: outcome}, http.StatusUnauthorized)
		return
	}

	sessionID, ok := h.services.JournalService.SessionID()
	if !ok {
		writeServiceError(w, r, service.ErrLocked, "journal locked right after unlock")
		return
	}

	token, err := h.services.SessionService.CreateToken(ctx, sessionID)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	log.Info().Str("outcome", outcome.String()).Msg("journal unlocked")
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.UnlockResponse{Outcome: outcome}, http.StatusOK)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	if err := h.services.JournalService.Lock(r.Context()); err != nil {
		writeServiceError(w, r, err, "error locking journal")
		return
	}

	logger.FromRequest(r).Info().Msg("journal locked")
	w.WriteHeader(http.StatusNoContent)
}

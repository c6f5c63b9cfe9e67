package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/heart-journal/internal/utils"
	"github.com/MKhiriev/heart-journal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	book, err := h.services.JournalService.LoadAllNotes(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error loading notes")
		return
	}

	if book == nil {
		book = models.NoteBook{}
	}
	_, _ = utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "error decoding note")
		return
	}

	notes, err := h.services.JournalService.SaveNoteForDate(r.Context(), date, req.Text)
	if err != nil {
		writeServiceError(w, r, err, "error saving note")
		return
	}

	_, _ = utils.WriteJSON(w, notes, http.StatusCreated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	id := chi.URLParam(r, "id")

	notes, err := h.services.JournalService.DeleteNote(r.Context(), date, id)
	if err != nil {
		writeServiceError(w, r, err, "error deleting note")
		return
	}

	_, _ = utils.WriteJSON(w, notes, http.StatusOK)
}

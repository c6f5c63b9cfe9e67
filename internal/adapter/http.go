package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/utils"
	"github.com/MKhiriev/heart-journal/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a [ServerAdapter] talking to the journal
// server at cfg.RemoteAddress. A bare "host:port" is treated as http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.RemoteAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// IsVaultEstablished implements [service.Journal] via GET /api/vault.
func (h *httpServerAdapter) IsVaultEstablished(ctx context.Context) (bool, error) {
	var status models.VaultStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/vault")
	if err != nil {
		return false, fmt.Errorf("vault status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return status.Established, nil
}

// CreateOrVerify implements [service.Journal] via POST /api/vault/unlock. A
// granted outcome stores the returned bearer token; a rejected one keeps the
// current token, matching the local journal that keeps its session.
func (h *httpServerAdapter) CreateOrVerify(ctx context.Context, passphrase string) (models.Outcome, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UnlockRequest{Passphrase: passphrase}).
		Post("/api/vault/unlock")
	if err != nil {
		return models.Rejected, fmt.Errorf("unlock request: %w", err)
	}

	var unlockResp models.UnlockResponse
	if resp.StatusCode() == http.StatusUnauthorized {
		if json.Unmarshal(resp.Body(), &unlockResp) == nil && unlockResp.Outcome == models.Rejected {
			return models.Rejected, nil
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Rejected, err
	}

	if err = json.Unmarshal(resp.Body(), &unlockResp); err != nil {
		return models.Rejected, fmt.Errorf("decode unlock response: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Rejected, fmt.Errorf("unlock parse bearer token: %w", err)
	}

	h.SetToken(token)
	return unlockResp.Outcome, nil
}

// LoadAllNotes implements [service.Journal] via GET /api/notes.
func (h *httpServerAdapter) LoadAllNotes(ctx context.Context) (models.NoteBook, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	book := models.NoteBook{}
	resp, err := req.SetResult(&book).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("load notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return book, nil
}

// SaveNoteForDate implements [service.Journal] via POST /api/notes/{date}.
func (h *httpServerAdapter) SaveNoteForDate(ctx context.Context, date, text string) ([]models.NoteEntry, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var notes []models.NoteEntry
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("date", date).
		SetBody(models.NoteRequest{Text: text}).
		SetResult(&notes).
		Post("/api/notes/{date}")
	if err != nil {
		return nil, fmt.Errorf("save note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(notes), nil
}

// DeleteNote implements [service.Journal] via DELETE /api/notes/{date}/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, date, id string) ([]models.NoteEntry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, service.ErrEmptyNoteID
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var notes []models.NoteEntry
	resp, err := req.
		SetPathParams(map[string]string{"date": date, "id": id}).
		SetResult(&notes).
		Delete("/api/notes/{date}/{id}")
	if err != nil {
		return nil, fmt.Errorf("delete note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(notes), nil
}

// Lock implements [service.Journal] via POST /api/vault/lock. The token is
// dropped even when the server already considers the session closed.
func (h *httpServerAdapter) Lock(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil
	}
	defer h.SetToken("")

	resp, err := req.Post("/api/vault/lock")
	if err != nil {
		return fmt.Errorf("lock request: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil
	}

	return mapHTTPError(resp)
}

// authedRequest fails with service.ErrLocked when no session token is held.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, service.ErrLocked
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func nonNil(notes []models.NoteEntry) []models.NoteEntry {
	if notes == nil {
		return []models.NoteEntry{}
	}
	return notes
}

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/internal/utils"
	"github.com/go-resty/resty/v2"
)

// validationErrors are recognised by the message the server puts into the
// error body.
var validationErrors = []error{
	service.ErrInvalidDate,
	service.ErrEmptyNote,
	service.ErrEmptyNoteID,
}

var conflictErrors = []error{
	service.ErrVaultAlreadyEstablished,
	service.ErrVaultNotEstablished,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		for _, target := range validationErrors {
			if strings.Contains(body, target.Error()) {
				return fmt.Errorf("%w: %s", target, body)
			}
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", service.ErrLocked, ErrUnauthorized, body)
	case http.StatusConflict:
		for _, target := range conflictErrors {
			if strings.Contains(body, target.Error()) {
				return fmt.Errorf("%w: %s", target, body)
			}
		}
		return fmt.Errorf("%w: %s", service.ErrVaultNotEstablished, body)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", store.ErrStorageUnavailable, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), body)
	}
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw body and then to the status text.
func errorMessage(resp *resty.Response) string {
	var errResp utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}

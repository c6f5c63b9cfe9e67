// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/heart-journal/models"
)

// Field name constants restrict validation to a subset of fields.
const (
	FieldDate = "date"
	FieldText = "text"
	FieldID   = "id"
)

// NoteValidator checks note drafts and note references before they reach
// storage.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(value, fields...)
	case models.NoteRef:
		return v.validateRef(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if err := validateDate(draft.Date); err != nil {
				return err
			}
		case FieldText:
			if strings.TrimSpace(draft.Text) == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateRef(ref models.NoteRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if err := validateDate(ref.Date); err != nil {
				return err
			}
		case FieldID:
			if strings.TrimSpace(ref.ID) == "" {
				return ErrEmptyNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDate accepts real calendar dates in strict YYYY-MM-DD form only.
func validateDate(date string) error {
	if len(date) != len(models.DateLayout) {
		return ErrInvalidDate
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

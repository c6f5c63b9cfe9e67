// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/heart-journal/internal/app"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/store"
)

var errorMessages = []struct {
	target error
	msg    string
}{
	{service.ErrLocked, app.MsgJournalLocked},
	{service.ErrVaultNotEstablished, app.MsgNoVault},
	{service.ErrEmptyNote, app.MsgEmptyMemory},
	{service.ErrInvalidDate, app.MsgInvalidDate},
	{store.ErrStorageUnavailable, app.MsgStorageUnavailable},
}

// humanizeError turns a journal error into a message for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, e := range errorMessages {
		if errors.Is(err, e.target) {
			return e.msg
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}

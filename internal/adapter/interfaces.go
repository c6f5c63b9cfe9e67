// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client use a journal served over HTTP.
//
// [ServerAdapter] satisfies the same [service.Journal] contract as the local
// journal, so the user interface does not know where the vault lives. HTTP
// status codes are mapped back to the service and store sentinels by
// mapHTTPError, which keeps [errors.Is] checks transport-agnostic.
package adapter

import (
	"github.com/MKhiriev/heart-journal/internal/service"
)

// ServerAdapter is a remote [service.Journal]. The bearer token obtained by
// CreateOrVerify is attached to every later request and dropped by Lock.
type ServerAdapter interface {
	service.Journal

	// SetToken stores the bearer token for subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" while locked.
	Token() string
}

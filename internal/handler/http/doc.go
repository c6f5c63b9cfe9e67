// Package http implements the REST API of the journal server.
//
// It wires chi routes to the session facade held in [service.Services]. The
// vault endpoints present passphrases and issue bearer tokens; the note
// endpoints require a token whose session is still the active one. Tracing,
// access logging, compression and request deadlines are applied as
// middleware before a request reaches a handler.
package http

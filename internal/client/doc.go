// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It picks a local or remote journal from the configuration, runs the
// terminal UI over it and locks the journal when the UI exits.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Outcome is the result of presenting a passphrase to the journal.
type Outcome int

const (
	// Rejected means a vault exists and the passphrase did not unlock it.
	Rejected Outcome = iota
	// Established means no vault existed and one was created with the
	// supplied passphrase.
	Established
	// Unlocked means the passphrase matched the existing vault.
	Unlocked
)

var outcomeNames = map[Outcome]string{
	Rejected:    "rejected",
	Established: "established",
	Unlocked:    "unlocked",
}

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Granted reports whether the outcome gives access to the notes.
func (o Outcome) Granted() bool {
	return o == Established || o == Unlocked
}

// MarshalJSON encodes the outcome as its name.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes an outcome name produced by MarshalJSON.
func (o *Outcome) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for k, v := range outcomeNames {
		if v == name {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", name)
}

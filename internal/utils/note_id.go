package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// noteIDSuffixLen is the number of random characters after the timestamp.
const noteIDSuffixLen = 6

// NewNoteID returns "<unix millis>-<random suffix>" for a note created at now.
// The suffix is taken from a random UUID so two notes created in the same
// millisecond still get distinct ids.
func NewNoteID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:noteIDSuffixLen]
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}

// NewSessionID returns a time-ordered identifier for a journal session.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

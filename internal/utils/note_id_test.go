package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteID_Format(t *testing.T) {
	now := time.UnixMilli(1714560000123)

	id := NewNoteID(now)

	assert.Regexp(t, regexp.MustCompile(`^1714560000123-[0-9a-f]{6}$`), id)
}

func TestNewNoteID_UniqueWithinSameMillisecond(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		id := NewNoteID(now)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

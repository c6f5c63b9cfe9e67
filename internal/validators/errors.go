package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptyText   = errors.New("note text is empty")
	ErrEmptyNoteID = errors.New("note id is empty")
)

package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid server address")
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("client unauthorized")
	ErrServer         = errors.New("journal server error")
)

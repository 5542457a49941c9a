package apperror

import "errors"

var (
	ErrTransport         = errors.New("game server is unreachable")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidInput      = errors.New("invalid move input")
)

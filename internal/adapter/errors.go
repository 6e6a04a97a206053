package adapter

import "errors"

var (
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrScriptNotFound    = errors.New("script not found")
	ErrServerUnavailable = errors.New("script server unavailable")
)

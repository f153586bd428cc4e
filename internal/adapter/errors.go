package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRequestTooLarge     = errors.New("request too large")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken       = errors.New("no token, log in first")
	ErrEmptyAddress  = errors.New("empty server address")
	ErrInvalidServer = errors.New("server address must include scheme and host")
)

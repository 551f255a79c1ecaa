package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request rejected by server")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("request forbidden")
	ErrNotFound            = errors.New("resource not found on server")
	ErrConflict            = errors.New("record conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("server temporarily unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

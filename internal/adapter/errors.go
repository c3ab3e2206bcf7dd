package adapter

import "errors"

// Sentinel errors for non-2xx backend responses. The backend's detail message
// is wrapped together with them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("request entity too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("backend unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrInvalidAddress is returned by the constructor for an unusable base URL.
var ErrInvalidAddress = errors.New("invalid adapter http address")

// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
var ErrDecodingResponse = errors.New("error decoding response")

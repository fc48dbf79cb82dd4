// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrUnavailable  = errors.New("backend unreachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrBadRequest   = errors.New("bad request")
	ErrUpstream     = errors.New("backend error")
)

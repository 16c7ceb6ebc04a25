package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("authorization header is not set")
)

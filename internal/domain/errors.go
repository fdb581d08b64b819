package domain

import "errors"

var (
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrNotFound               = errors.New("not found")
)

package domain

import "errors"

// Domain errors.
var (
	ErrMissingView        = errors.New("comments presenter: view is required")
	ErrMissingStrings     = errors.New("comments presenter: string provider is required")
	ErrCommentsLoadFailed = errors.New("comments load failed")
	ErrUnknownTable       = errors.New("unknown string table")
)

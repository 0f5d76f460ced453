package repository

import "errors"

var (
	// ErrNotFound means the provider resolved the request but has no such
	// ticker.
	ErrNotFound = errors.New("ticker not found")

	// ErrUnavailable means the provider could not be reached or answered
	// with an error.
	ErrUnavailable = errors.New("quote provider unavailable")
)

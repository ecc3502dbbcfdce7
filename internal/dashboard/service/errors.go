package service

import "errors"

var (
	// ErrViewNotFound is returned for an unknown feed, sentiment or conversation id.
	ErrViewNotFound = errors.New("view not found")
	// ErrNoTicker is returned when a request carries no subject.
	ErrNoTicker = errors.New("no ticker provided")
	// ErrInvalidRequest is returned for malformed request parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmptyMessage is returned when blank text is submitted to the copilot.
	ErrEmptyMessage = errors.New("message is empty")
)

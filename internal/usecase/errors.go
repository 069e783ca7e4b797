package usecase

import "errors"

var (
	// ErrInvalidID marks identifiers that are not well-formed, as opposed
	// to well-formed identifiers that match nothing.
	ErrInvalidID = errors.New("invalid id")

	// ErrOwnJob rejects a user applying to a job they posted themselves.
	ErrOwnJob = errors.New("cannot apply for own job")

	ErrInternal = errors.New("internal error")
)

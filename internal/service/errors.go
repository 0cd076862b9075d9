package service

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. Anything else
// coming out of a service is a store fault.
var (
	// ErrInvalidID means an identifier field did not parse as a
	// 24-character hex ObjectID.
	ErrInvalidID = errors.New("invalid object id")

	// ErrNotFound means a well-formed identifier matched no document.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername means the username uniqueness pre-check
	// found an existing user.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrQuizNotFound means a question referenced a quiz_id that
	// parsed but resolves to no quiz.
	ErrQuizNotFound = errors.New("quiz does not exist")
)

package statements

import "errors"

var (
	// ErrStatementNotFound is returned when no statement matches an ID or text.
	ErrStatementNotFound = errors.New("statement not found")
	// ErrStatementExists is returned when a statement with the same text is already stored.
	ErrStatementExists = errors.New("statement already exists")
	// ErrResponseNotFound is returned when a statement has no response with the requested text.
	ErrResponseNotFound = errors.New("response not found")
	// ErrInvalid wraps every validation failure of statements, responses and queries.
	ErrInvalid = errors.New("validation failed")
)

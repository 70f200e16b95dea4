package statements

import (
	"context"
)

// StatementService defines methods for recording and inspecting statements.
type StatementService interface {
	// Create stores a new statement. It fails when the text is already known.
	Create(ctx context.Context, text string, extraData map[string]interface{}) (*Statement, error)

	// GetOrCreate returns the statement with the given text, creating it when missing.
	GetOrCreate(ctx context.Context, text string) (*Statement, error)

	// List retrieves statements considering a query filter when set.
	List(ctx context.Context, query *StatementQuery) ([]*Statement, error)

	// GetByID retrieves a statement together with its responses.
	GetByID(ctx context.Context, statementID string) (*Statement, error)

	// GetByText retrieves a statement together with its responses.
	GetByText(ctx context.Context, text string) (*Statement, error)

	// AddExtraData sets a key of the statement's extra data and persists it.
	AddExtraData(ctx context.Context, statementID, key string, value interface{}) (*Statement, error)

	// Serialize returns the dictionary representation of a statement.
	Serialize(ctx context.Context, statementID string) (*SerializedStatement, error)

	// DeleteByID deletes a statement and every response edge it takes part in.
	DeleteByID(ctx context.Context, statementID string) error
}

// ResponseService defines methods for recording which statements follow others.
type ResponseService interface {
	// AddResponse records one more occurrence of responseText after the statement,
	// creating the reply statement when needed.
	AddResponse(ctx context.Context, statementID, responseText string) (*Response, error)

	// Learn records responseText as a reply to statementText, creating both statements when needed.
	Learn(ctx context.Context, statementText, responseText string) (*Response, error)

	// RemoveResponse removes the response with the given text and reports whether one existed.
	RemoveResponse(ctx context.Context, statementID, responseText string) (bool, error)

	// GetResponseCount returns how often responseText followed the statement, 0 when never.
	GetResponseCount(ctx context.Context, statementID, responseText string) (uint, error)

	// ListResponses returns the responses of a statement, most frequent first.
	ListResponses(ctx context.Context, statementID string, limit int) ([]*Response, error)
}

// StatementRepository defines the interface for Statement-related operations
type StatementRepository interface {
	// Create adds a new Statement to the database
	Create(ctx context.Context, statement *Statement) error
	// List lists Statements in the database with optional filter
	List(ctx context.Context, query *StatementQuery) ([]*Statement, error)
	// GetByID retrieves a Statement and its responses by ID
	GetByID(ctx context.Context, statementID string) (*Statement, error)
	// GetByText retrieves a Statement and its responses by text
	GetByText(ctx context.Context, text string) (*Statement, error)
	// UpdateByID updates a Statement in the database by ID
	UpdateByID(ctx context.Context, statement *Statement) error
	// DeleteByID deletes a Statement and its response edges by ID
	DeleteByID(ctx context.Context, statementID string) error
}

// ResponseRepository defines the interface for Response-related operations
type ResponseRepository interface {
	// Upsert records an occurrence of responseID after statementID and reports whether the edge was created
	Upsert(ctx context.Context, statementID, responseID string) (*Response, bool, error)
	// GetByResponseText retrieves the edge of statementID whose reply has the given text
	GetByResponseText(ctx context.Context, statementID, responseText string) (*Response, error)
	// ListByStatementID lists the edges of statementID ordered by occurrence, limit <= 0 means all
	ListByStatementID(ctx context.Context, statementID string, limit int) ([]*Response, error)
	// DeleteByResponseText removes the edges of statementID whose reply has the given text
	DeleteByResponseText(ctx context.Context, statementID, responseText string) (int64, error)
}

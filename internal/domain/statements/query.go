package statements

import "time"

// StatementQuery filters, sorts and pages statement listings
type StatementQuery struct {
	Text            string    `validate:"omitempty,max=255"`
	DateTimeCreated time.Time `validate:"omitempty"`
	Limit           int       `validate:"omitempty,gte=0"`
	Offset          int       `validate:"omitempty,gte=0"`
	SortBy          string    `validate:"omitempty,oneof=text date_time_created"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewStatementQuery creates an empty StatementQuery
func NewStatementQuery() *StatementQuery {
	return &StatementQuery{}
}

// Validate for validating StatementQuery struct
func (q *StatementQuery) Validate() error {
	return validateStruct(q)
}

package models

import (
	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
)

// ResponseModel is the GORM database model for response edges between two statements
type ResponseModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	StatementID string          `gorm:"not null;type:uuid;uniqueIndex:idx_responses_statement_response"`
	ResponseID  string          `gorm:"not null;type:uuid;uniqueIndex:idx_responses_statement_response;index:idx_responses_response_id"`
	Occurrence  uint            `gorm:"not null;default:1"`
	Statement   *StatementModel `gorm:"foreignKey:StatementID"`
	Response    *StatementModel `gorm:"foreignKey:ResponseID"`
}

// TableName specifies the table name for GORM
func (ResponseModel) TableName() string {
	return "responses"
}

// ToDomain converts GORM model to domain entity, taking texts from loaded associations
func (m *ResponseModel) ToDomain() *statements.Response {
	response := &statements.Response{
		ID:          m.ID,
		StatementID: m.StatementID,
		ResponseID:  m.ResponseID,
		Occurrence:  m.Occurrence,
	}
	if m.Statement != nil {
		response.StatementText = m.Statement.Text
	}
	if m.Response != nil {
		response.ResponseText = m.Response.Text
	}
	return response
}

// FromDomain converts domain entity to GORM model
func (m *ResponseModel) FromDomain(r *statements.Response) {
	m.ID = r.ID
	m.StatementID = r.StatementID
	m.ResponseID = r.ResponseID
	m.Occurrence = r.Occurrence
}

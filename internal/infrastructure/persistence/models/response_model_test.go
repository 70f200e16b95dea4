//go:build unit
// +build unit

package models

import (
	"testing"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/stretchr/testify/assert"
)

func TestResponseModel_ToDomain(t *testing.T) {
	responseModel := &ResponseModel{
		ID:          "edge-id",
		StatementID: "statement-id",
		ResponseID:  "response-id",
		Occurrence:  3,
		Statement:   &StatementModel{ID: "statement-id", Text: "Hi"},
		Response:    &StatementModel{ID: "response-id", Text: "Hello"},
	}

	response := responseModel.ToDomain()

	assert.Equal(t, responseModel.ID, response.ID)
	assert.Equal(t, responseModel.StatementID, response.StatementID)
	assert.Equal(t, responseModel.ResponseID, response.ResponseID)
	assert.Equal(t, uint(3), response.Occurrence)
	assert.Equal(t, "Hi", response.StatementText)
	assert.Equal(t, "Hello", response.ResponseText)
}

func TestResponseModel_ToDomain_WithoutAssociations(t *testing.T) {
	response := (&ResponseModel{ID: "edge-id", Occurrence: 1}).ToDomain()

	assert.Empty(t, response.StatementText)
	assert.Empty(t, response.ResponseText)
}

func TestResponseModel_FromDomain(t *testing.T) {
	response := &statements.Response{
		ID:            "edge-id",
		StatementID:   "statement-id",
		ResponseID:    "response-id",
		StatementText: "Hi",
		ResponseText:  "Hello",
		Occurrence:    2,
	}

	responseModel := &ResponseModel{}
	responseModel.FromDomain(response)

	assert.Equal(t, response.ID, responseModel.ID)
	assert.Equal(t, response.StatementID, responseModel.StatementID)
	assert.Equal(t, response.ResponseID, responseModel.ResponseID)
	assert.Equal(t, response.Occurrence, responseModel.Occurrence)
	assert.Nil(t, responseModel.Statement)
	assert.Nil(t, responseModel.Response)
}

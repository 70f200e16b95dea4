//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"

	"github.com/stretchr/testify/mock"
)

// MockStatementService is a mock implementation of StatementService
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) Create(ctx context.Context, text string, extraData map[string]interface{}) (*statements.Statement, error) {
	args := m.Called(ctx, text, extraData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Statement), args.Error(1)
}

func (m *MockStatementService) GetOrCreate(ctx context.Context, text string) (*statements.Statement, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Statement), args.Error(1)
}

func (m *MockStatementService) List(ctx context.Context, query *statements.StatementQuery) ([]*statements.Statement, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*statements.Statement), args.Error(1)
}

func (m *MockStatementService) GetByID(ctx context.Context, statementID string) (*statements.Statement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Statement), args.Error(1)
}

func (m *MockStatementService) GetByText(ctx context.Context, text string) (*statements.Statement, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Statement), args.Error(1)
}

func (m *MockStatementService) AddExtraData(ctx context.Context, statementID, key string, value interface{}) (*statements.Statement, error) {
	args := m.Called(ctx, statementID, key, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Statement), args.Error(1)
}

func (m *MockStatementService) Serialize(ctx context.Context, statementID string) (*statements.SerializedStatement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.SerializedStatement), args.Error(1)
}

func (m *MockStatementService) DeleteByID(ctx context.Context, statementID string) error {
	args := m.Called(ctx, statementID)
	return args.Error(0)
}

// MockResponseService is a mock implementation of ResponseService
type MockResponseService struct {
	mock.Mock
}

func (m *MockResponseService) AddResponse(ctx context.Context, statementID, responseText string) (*statements.Response, error) {
	args := m.Called(ctx, statementID, responseText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Response), args.Error(1)
}

func (m *MockResponseService) Learn(ctx context.Context, statementText, responseText string) (*statements.Response, error) {
	args := m.Called(ctx, statementText, responseText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Response), args.Error(1)
}

func (m *MockResponseService) RemoveResponse(ctx context.Context, statementID, responseText string) (bool, error) {
	args := m.Called(ctx, statementID, responseText)
	return args.Bool(0), args.Error(1)
}

func (m *MockResponseService) GetResponseCount(ctx context.Context, statementID, responseText string) (uint, error) {
	args := m.Called(ctx, statementID, responseText)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockResponseService) ListResponses(ctx context.Context, statementID string, limit int) ([]*statements.Response, error) {
	args := m.Called(ctx, statementID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*statements.Response), args.Error(1)
}

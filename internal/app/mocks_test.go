//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"

	"github.com/stretchr/testify/mock"
)

type mockStatementRepository struct {
	mock.Mock
}

func (m *mockStatementRepository) Create(ctx context.Context, statement *statements.Statement) error {
	return m.Called(ctx, statement).Error(0)
}

func (m *mockStatementRepository) List(ctx context.Context, query *statements.StatementQuery) ([]*statements.Statement, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*statements.Statement), args.Error(1)
}

func (m *mockStatementRepository) GetByID(ctx context.Context, statementID string) (*statements.Statement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Statement), args.Error(1)
}

func (m *mockStatementRepository) GetByText(ctx context.Context, text string) (*statements.Statement, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Statement), args.Error(1)
}

func (m *mockStatementRepository) UpdateByID(ctx context.Context, statement *statements.Statement) error {
	return m.Called(ctx, statement).Error(0)
}

func (m *mockStatementRepository) DeleteByID(ctx context.Context, statementID string) error {
	return m.Called(ctx, statementID).Error(0)
}

type mockResponseRepository struct {
	mock.Mock
}

func (m *mockResponseRepository) Upsert(ctx context.Context, statementID, responseID string) (*statements.Response, bool, error) {
	args := m.Called(ctx, statementID, responseID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*statements.Response), args.Bool(1), args.Error(2)
}

func (m *mockResponseRepository) GetByResponseText(ctx context.Context, statementID, responseText string) (*statements.Response, error) {
	args := m.Called(ctx, statementID, responseText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statements.Response), args.Error(1)
}

func (m *mockResponseRepository) ListByStatementID(ctx context.Context, statementID string, limit int) ([]*statements.Response, error) {
	args := m.Called(ctx, statementID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*statements.Response), args.Error(1)
}

func (m *mockResponseRepository) DeleteByResponseText(ctx context.Context, statementID, responseText string) (int64, error) {
	args := m.Called(ctx, statementID, responseText)
	return args.Get(0).(int64), args.Error(1)
}

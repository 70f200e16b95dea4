package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/logger"
)

// statementService implements the StatementService interface for recording statements
type statementService struct {
	statementRepo statements.StatementRepository
	logger        logger.Logger
}

// NewStatementService creates a new statementService instance
func NewStatementService(statementRepo statements.StatementRepository, logger logger.Logger) (statements.StatementService, error) {
	if statementRepo == nil {
		return nil, fmt.Errorf("statement repository must not be nil")
	}
	return &statementService{
		statementRepo: statementRepo,
		logger:        logger,
	}, nil
}

// Create stores a new statement with optional extra data.
func (s *statementService) Create(ctx context.Context, text string, extraData map[string]interface{}) (*statements.Statement, error) {
	statement := statements.NewStatement(text)
	for key, value := range extraData {
		statement.AddExtraData(key, value)
	}

	if err := s.statementRepo.Create(ctx, statement); err != nil {
		return nil, fmt.Errorf("failed to create statement: %w", err)
	}

	s.logger.Info("Statement ", statement.ID, " created: ", statement.String())
	return statement, nil
}

// GetOrCreate returns the stored statement with the given text or creates it.
// A concurrent writer creating the same text first is resolved by reading its row.
func (s *statementService) GetOrCreate(ctx context.Context, text string) (*statements.Statement, error) {
	statement, err := s.statementRepo.GetByText(ctx, text)
	if err == nil {
		return statement, nil
	}
	if !errors.Is(err, statements.ErrStatementNotFound) {
		return nil, fmt.Errorf("failed to look up statement: %w", err)
	}

	statement, err = s.Create(ctx, text, nil)
	if errors.Is(err, statements.ErrStatementExists) {
		return s.statementRepo.GetByText(ctx, text)
	}
	if err != nil {
		return nil, err
	}
	return statement, nil
}

// List retrieves statements based on a query.
func (s *statementService) List(ctx context.Context, query *statements.StatementQuery) ([]*statements.Statement, error) {
	if query == nil {
		query = statements.NewStatementQuery()
	}

	result, err := s.statementRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return result, nil
}

// GetByID retrieves a statement with its responses by its ID.
func (s *statementService) GetByID(ctx context.Context, statementID string) (*statements.Statement, error) {
	statement, err := s.statementRepo.GetByID(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return statement, nil
}

// GetByText retrieves a statement with its responses by its text.
func (s *statementService) GetByText(ctx context.Context, text string) (*statements.Statement, error) {
	statement, err := s.statementRepo.GetByText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return statement, nil
}

// AddExtraData sets a single extra data entry of a statement.
func (s *statementService) AddExtraData(ctx context.Context, statementID, key string, value interface{}) (*statements.Statement, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: extra data key must not be empty", statements.ErrInvalid)
	}

	statement, err := s.statementRepo.GetByID(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}

	statement.AddExtraData(key, value)
	if err := s.statementRepo.UpdateByID(ctx, statement); err != nil {
		return nil, fmt.Errorf("failed to update statement: %w", err)
	}

	s.logger.Info("Added extra data key ", key, " to statement ", statementID)
	return statement, nil
}

// Serialize returns the dictionary representation of a statement.
func (s *statementService) Serialize(ctx context.Context, statementID string) (*statements.SerializedStatement, error) {
	statement, err := s.statementRepo.GetByID(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return statement.Serialize(), nil
}

// DeleteByID deletes a statement and its response edges.
func (s *statementService) DeleteByID(ctx context.Context, statementID string) error {
	if err := s.statementRepo.DeleteByID(ctx, statementID); err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}

	s.logger.Info("Deleted statement ", statementID)
	return nil
}

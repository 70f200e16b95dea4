package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/logger"
)

// responseService implements the ResponseService interface on top of the statement and response repositories
type responseService struct {
	statementService statements.StatementService
	statementRepo    statements.StatementRepository
	responseRepo     statements.ResponseRepository
	logger           logger.Logger
}

// NewResponseService creates a new responseService instance
func NewResponseService(
	statementRepo statements.StatementRepository,
	responseRepo statements.ResponseRepository,
	logger logger.Logger,
) (statements.ResponseService, error) {
	statementService, err := NewStatementService(statementRepo, logger)
	if err != nil {
		return nil, err
	}
	if responseRepo == nil {
		return nil, fmt.Errorf("response repository must not be nil")
	}

	return &responseService{
		statementService: statementService,
		statementRepo:    statementRepo,
		responseRepo:     responseRepo,
		logger:           logger,
	}, nil
}

// AddResponse records responseText as a reply to the statement. The reply statement is
// created on demand; repeating a known reply increments its occurrence.
func (s *responseService) AddResponse(ctx context.Context, statementID, responseText string) (*statements.Response, error) {
	if _, err := s.statementRepo.GetByID(ctx, statementID); err != nil {
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}

	reply, err := s.statementService.GetOrCreate(ctx, responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to get reply statement: %w", err)
	}

	return s.record(ctx, statementID, reply.ID)
}

// Learn records a (statement, response) pair observed in a conversation.
func (s *responseService) Learn(ctx context.Context, statementText, responseText string) (*statements.Response, error) {
	statement, err := s.statementService.GetOrCreate(ctx, statementText)
	if err != nil {
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}

	reply, err := s.statementService.GetOrCreate(ctx, responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to get reply statement: %w", err)
	}

	return s.record(ctx, statement.ID, reply.ID)
}

func (s *responseService) record(ctx context.Context, statementID, responseID string) (*statements.Response, error) {
	response, created, err := s.responseRepo.Upsert(ctx, statementID, responseID)
	if err != nil {
		return nil, fmt.Errorf("failed to record response: %w", err)
	}

	if created {
		s.logger.Info("Learned response ", response.String())
	} else {
		s.logger.Info("Response ", response.String(), " seen ", response.Occurrence, " times")
	}
	return response, nil
}

// RemoveResponse deletes the response with the given text and reports whether it existed.
func (s *responseService) RemoveResponse(ctx context.Context, statementID, responseText string) (bool, error) {
	if _, err := s.statementRepo.GetByID(ctx, statementID); err != nil {
		return false, fmt.Errorf("failed to get statement: %w", err)
	}

	removed, err := s.responseRepo.DeleteByResponseText(ctx, statementID, responseText)
	if err != nil {
		return false, fmt.Errorf("failed to remove response: %w", err)
	}

	if removed > 0 {
		s.logger.Info("Forgot response ", fmt.Sprintf("%q", responseText), " of statement ", statementID)
	}
	return removed > 0, nil
}

// GetResponseCount returns the occurrence of responseText after the statement.
func (s *responseService) GetResponseCount(ctx context.Context, statementID, responseText string) (uint, error) {
	response, err := s.responseRepo.GetByResponseText(ctx, statementID, responseText)
	if errors.Is(err, statements.ErrResponseNotFound) {
		// an unknown statement is still an error
		if _, err := s.statementRepo.GetByID(ctx, statementID); err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return response.Occurrence, nil
}

// ListResponses returns the responses of a statement, most frequent first.
func (s *responseService) ListResponses(ctx context.Context, statementID string, limit int) ([]*statements.Response, error) {
	if _, err := s.statementRepo.GetByID(ctx, statementID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	responses, err := s.responseRepo.ListByStatementID(ctx, statementID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return responses, nil
}

package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormResponseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormResponseRepository creates a new GORM-based ResponseRepository implementation
func NewGormResponseRepository(db *gorm.DB, logger logger.Logger) (statements.ResponseRepository, error) {
	return &gormResponseRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert inserts the edge with occurrence 1 or increments the stored occurrence.
// The increment happens in the database so concurrent callers never lose a count.
func (r *gormResponseRepository) Upsert(ctx context.Context, statementID, responseID string) (*statements.Response, bool, error) {
	candidate := statements.NewResponse(statementID, responseID)
	if err := candidate.Validate(); err != nil {
		return nil, false, fmt.Errorf("validation error: %w", err)
	}

	model := &models.ResponseModel{}
	model.FromDomain(candidate)

	var stored models.ResponseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureStatementsExist(tx, statementID, responseID); err != nil {
			return err
		}

		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "statement_id"}, {Name: "response_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"occurrence": gorm.Expr("responses.occurrence + ?", 1),
			}),
		}).Create(model).Error
		if err != nil {
			return fmt.Errorf("failed to record response: %w", err)
		}

		return withStatementTexts(tx).
			Where(clause.Eq{Column: clause.Column{Table: "responses", Name: "statement_id"}, Value: statementID}).
			Where(clause.Eq{Column: clause.Column{Table: "responses", Name: "response_id"}, Value: responseID}).
			Take(&stored).Error
	})
	if err != nil {
		return nil, false, err
	}

	created := stored.ID == candidate.ID
	if created {
		r.logger.Info("Created response with id ", stored.ID)
	} else {
		r.logger.Info("Incremented response with id ", stored.ID, " to occurrence ", stored.Occurrence)
	}

	return stored.ToDomain(), created, nil
}

func (r *gormResponseRepository) GetByResponseText(ctx context.Context, statementID, responseText string) (*statements.Response, error) {
	if !isUUID(statementID) {
		return nil, fmt.Errorf("statement %s: %w", statementID, statements.ErrStatementNotFound)
	}

	var model models.ResponseModel
	err := withStatementTexts(r.db.WithContext(ctx)).
		Where(clause.Eq{Column: clause.Column{Table: "responses", Name: "statement_id"}, Value: statementID}).
		Where(clause.Eq{Column: clause.Column{Table: "Response", Name: "text"}, Value: responseText}).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("response %q of statement %s: %w", responseText, statementID, statements.ErrResponseNotFound)
		}
		return nil, fmt.Errorf("failed to fetch response: %w", err)
	}

	return model.ToDomain(), nil
}

func (r *gormResponseRepository) ListByStatementID(ctx context.Context, statementID string, limit int) ([]*statements.Response, error) {
	if !isUUID(statementID) {
		return nil, fmt.Errorf("statement %s: %w", statementID, statements.ErrStatementNotFound)
	}
	return listResponses(r.db.WithContext(ctx), statementID, limit)
}

func (r *gormResponseRepository) DeleteByResponseText(ctx context.Context, statementID, responseText string) (int64, error) {
	if !isUUID(statementID) {
		return 0, fmt.Errorf("statement %s: %w", statementID, statements.ErrStatementNotFound)
	}

	db := r.db.WithContext(ctx)
	replies := db.Model(&models.StatementModel{}).Select("id").Where("text = ?", responseText)

	result := db.Where("statement_id = ?", statementID).
		Where("response_id IN (?)", replies).
		Delete(&models.ResponseModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete response: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Deleted response ", fmt.Sprintf("%q", responseText), " of statement ", statementID)
	}
	return result.RowsAffected, nil
}

// withStatementTexts joins both ends of the edge so ToDomain can fill the texts
func withStatementTexts(db *gorm.DB) *gorm.DB {
	return db.Model(&models.ResponseModel{}).Joins("Statement").Joins("Response")
}

// listResponses returns the edges of statementID, most frequent first; limit <= 0 means all
func listResponses(db *gorm.DB, statementID string, limit int) ([]*statements.Response, error) {
	query := withStatementTexts(db).
		Where(clause.Eq{Column: clause.Column{Table: "responses", Name: "statement_id"}, Value: statementID}).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Table: "responses", Name: "occurrence"}, Desc: true},
			{Column: clause.Column{Table: "Response", Name: "text"}},
		}})
	if limit > 0 {
		query = query.Limit(limit)
	}

	var modelList []*models.ResponseModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch responses: %w", err)
	}

	responses := make([]*statements.Response, len(modelList))
	for i, model := range modelList {
		responses[i] = model.ToDomain()
	}
	return responses, nil
}

func ensureStatementsExist(tx *gorm.DB, ids ...string) error {
	for _, id := range ids {
		var count int64
		if err := tx.Model(&models.StatementModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up statement: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("statement %s: %w", id, statements.ErrStatementNotFound)
		}
	}
	return nil
}

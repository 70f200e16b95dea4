package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormStatementRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStatementRepository creates a new GORM-based StatementRepository implementation
func NewGormStatementRepository(db *gorm.DB, logger logger.Logger) (statements.StatementRepository, error) {
	return &gormStatementRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStatementRepository) Create(ctx context.Context, statement *statements.Statement) error {
	if err := statement.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StatementModel{}
	if err := model.FromDomain(statement); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("statement %q: %w", statement.Text, statements.ErrStatementExists)
		}
		return fmt.Errorf("failed to create statement: %w", err)
	}

	r.logger.Info("Created statement with id ", statement.ID)
	return nil
}

func (r *gormStatementRepository) List(ctx context.Context, query *statements.StatementQuery) ([]*statements.Statement, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.StatementModel
	dbQuery := r.db.WithContext(ctx).Model(&models.StatementModel{})

	if query.Text != "" {
		dbQuery = dbQuery.Where("text LIKE ? ESCAPE '\\'", "%"+escapeLike(query.Text)+"%")
	}
	if !query.DateTimeCreated.IsZero() {
		// SQLite compares the stored UTC text, so the bound must be UTC as well
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated.UTC())
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch statements: %w", err)
	}

	domainList := make([]*statements.Statement, len(modelList))
	for i, model := range modelList {
		statement, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList[i] = statement
	}

	return domainList, nil
}

func (r *gormStatementRepository) GetByID(ctx context.Context, statementID string) (*statements.Statement, error) {
	if !isUUID(statementID) {
		return nil, fmt.Errorf("statement %s: %w", statementID, statements.ErrStatementNotFound)
	}
	return r.get(ctx, "id = ?", statementID, statementID)
}

func (r *gormStatementRepository) GetByText(ctx context.Context, text string) (*statements.Statement, error) {
	return r.get(ctx, "text = ?", text, fmt.Sprintf("%q", text))
}

func (r *gormStatementRepository) get(ctx context.Context, condition string, value interface{}, label string) (*statements.Statement, error) {
	db := r.db.WithContext(ctx)

	var model models.StatementModel
	if err := db.Where(condition, value).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("statement %s: %w", label, statements.ErrStatementNotFound)
		}
		return nil, fmt.Errorf("failed to fetch statement: %w", err)
	}

	statement, err := model.ToDomain()
	if err != nil {
		return nil, err
	}

	responses, err := listResponses(db, model.ID, 0)
	if err != nil {
		return nil, err
	}
	statement.InResponseTo = responses

	return statement, nil
}

func (r *gormStatementRepository) UpdateByID(ctx context.Context, statement *statements.Statement) error {
	if err := statement.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StatementModel{}
	if err := model.FromDomain(statement); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.StatementModel{ID: statement.ID}).
		Select("text", "extra_data").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("statement %q: %w", statement.Text, statements.ErrStatementExists)
		}
		return fmt.Errorf("failed to update statement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("statement %s: %w", statement.ID, statements.ErrStatementNotFound)
	}

	r.logger.Info("Updated statement with id ", statement.ID)
	return nil
}

func (r *gormStatementRepository) DeleteByID(ctx context.Context, statementID string) error {
	if !isUUID(statementID) {
		return fmt.Errorf("statement %s: %w", statementID, statements.ErrStatementNotFound)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("statement_id = ? OR response_id = ?", statementID, statementID).
			Delete(&models.ResponseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete responses of statement: %w", err)
		}

		result := tx.Where("id = ?", statementID).Delete(&models.StatementModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete statement: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("statement %s: %w", statementID, statements.ErrStatementNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted statement with id ", statementID)
	return nil
}

// isUUID guards queries against uuid columns, which PostgreSQL rejects for malformed input
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/infrastructure/persistence"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	StatementService statements.StatementService
	ResponseService  statements.ResponseService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	statementService, err := NewStatementService(dbContext.StatementRepo, logger)
	require.NoError(t, err, "Failed to create StatementService")

	responseService, err := NewResponseService(dbContext.StatementRepo, dbContext.ResponseRepo, logger)
	require.NoError(t, err, "Failed to create ResponseService")

	return &TestServices{
		StatementService: statementService,
		ResponseService:  responseService,
		DBContext:        dbContext,
	}
}

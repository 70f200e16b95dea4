//go:build integration
// +build integration

package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/config"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestPostgresDSNEnv names the variable enabling the PostgreSQL variants of the tests,
// e.g. "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
const TestPostgresDSNEnv = "DMS_TEST_POSTGRES_DSN"

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	StatementRepo statements.StatementRepository
	ResponseRepo  statements.ResponseRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(t.TempDir(), "dialog.db"),
		}

	case config.PostgresDbType:
		dsn := os.Getenv(TestPostgresDSNEnv)
		if dsn == "" {
			t.Skipf("%s not set", TestPostgresDSNEnv)
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    dsn,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(dsn+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	statementRepo, err := NewGormStatementRepository(db, logger)
	require.NoError(t, err, "Failed to create statement repository")

	responseRepo, err := NewGormResponseRepository(db, logger)
	require.NoError(t, err, "Failed to create response repository")

	return &TestContext{
		DB:            db,
		StatementRepo: statementRepo,
		ResponseRepo:  responseRepo,
	}
}

// CreateTestStatement stores a statement with the given text
func CreateTestStatement(t *testing.T, ctx *TestContext, text string) *statements.Statement {
	t.Helper()

	statement := statements.NewStatement(text)
	require.NoError(t, ctx.StatementRepo.Create(context.Background(), statement))
	return statement
}

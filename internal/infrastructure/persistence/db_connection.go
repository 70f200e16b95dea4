package persistence

import (
	"fmt"
	"log"

	"github.com/MGTheTrain/dialog-memory/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDBConnection creates a database connection based on settings
// Supports both production and test environments
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.PostgresDbType:
		return connectPostgres(settings)
	case config.SqliteDbType:
		return connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

func gormConfig() *gorm.Config {
	// Unique violations surface as gorm.ErrDuplicatedKey on every dialect
	return &gorm.Config{TranslateError: true}
}

// connectPostgres establishes PostgreSQL connection with optional database creation
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.DBName == "" {
		return db, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}

	// CREATE DATABASE has no IF NOT EXISTS; an existing database is fine
	_, _ = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.DBName))

	if err := sqlDB.Close(); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.DBName)
	db, err = gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.DBName, err)
	}

	return db, nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// Every new connection to :memory: opens a separate empty database, and
	// SQLite serializes writers anyway.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates the statements and responses tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.StatementModel{}, &models.ResponseModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	err = db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}

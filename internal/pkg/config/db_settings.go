package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings describes how to reach the statement store.
// For SQLite an empty DSN means an in-memory database. For PostgreSQL a non-empty
// DBName is created on demand and appended to the DSN.
type DatabaseSettings struct {
	Type   string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Type postgres"`
	DBName string `mapstructure:"db_name" validate:"omitempty,max=63"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == SqliteDbType && s.DBName != "" {
		return fmt.Errorf("db name is only supported for %s", PostgresDbType)
	}

	for _, r := range s.DBName {
		if r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("db name %q may only contain letters, digits and underscores", s.DBName)
		}
	}

	return nil
}

// Package commands implements the sub-commands of dialog-memory-cli.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MGTheTrain/dialog-memory/internal/pkg/config"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/logger"
)

// Flag names shared by every command
const (
	flagDBType   = "db-type"
	flagDSN      = "dsn"
	flagDBName   = "db-name"
	flagLogLevel = "log-level"
)

const defaultSQLiteDSN = "dialog-memory.db"

func setupLogger(level string) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: level,
		LogType:  config.LogTypeConsole,
	}

	loggerInstance, err := logger.NewLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return loggerInstance, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseValue decodes raw as JSON and falls back to the plain string
func parseValue(raw string) interface{} {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

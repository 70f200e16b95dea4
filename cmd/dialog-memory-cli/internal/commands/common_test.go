//go:build unit
// +build unit

package commands

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/dialog-memory/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	assert.Equal(t, float64(3), parseValue("3"))
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, map[string]interface{}{"a": "b"}, parseValue(`{"a":"b"}`))
	assert.Equal(t, "cheerful", parseValue("cheerful"))
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, map[string]int{"occurrence": 2}))
	assert.Equal(t, "{\n  \"occurrence\": 2\n}\n", out.String())
}

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	rootCmd := NewRootCmd()

	for _, name := range []string{"learn", "show", "count", "responses", "forget", "annotate"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSetupLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := setupLogger("verbose")
	assert.Error(t, err)
}

func TestSettingsFromFlags_DefaultDSN(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantType string
		wantDSN  string
	}{
		{"sqlite falls back to local file", nil, config.SqliteDbType, defaultSQLiteDSN},
		{"postgres keeps empty dsn", []string{"--db-type", config.PostgresDbType}, config.PostgresDbType, ""},
		{"explicit dsn wins", []string{"--dsn", "other.db"}, config.SqliteDbType, "other.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd := NewRootCmd()
			require.NoError(t, rootCmd.ParseFlags(tt.args))

			settings, _, err := settingsFromFlags(rootCmd)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, settings.Type)
			assert.Equal(t, tt.wantDSN, settings.DSN)
		})
	}
}

//go:build integration
// +build integration

package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--dsn", dsn}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDialogCommands_LearnCountForget(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cli.db")

	for i := 0; i < 3; i++ {
		_, err := execute(t, dsn, "learn", "Hi", "Hello")
		require.NoError(t, err)
	}

	out, err := execute(t, dsn, "count", "Hi", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "3", strings.TrimSpace(out))

	out, err = execute(t, dsn, "count", "Hi", "Bye")
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))

	out, err = execute(t, dsn, "forget", "Hi", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))

	out, err = execute(t, dsn, "count", "Hi", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))
}

func TestDialogCommands_ShowAndResponses(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cli.db")

	for _, reply := range []string{"Hello", "Hey", "Hello"} {
		_, err := execute(t, dsn, "learn", "Hi", reply)
		require.NoError(t, err)
	}

	_, err := execute(t, dsn, "annotate", "Hi", "turn", "2")
	require.NoError(t, err)

	out, err := execute(t, dsn, "show", "Hi")
	require.NoError(t, err)

	var serialized struct {
		Text         string                   `json:"text"`
		InResponseTo []map[string]interface{} `json:"in_response_to"`
		ExtraData    map[string]interface{}   `json:"extra_data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &serialized))
	assert.Equal(t, "Hi", serialized.Text)
	assert.Len(t, serialized.InResponseTo, 2)
	assert.EqualValues(t, 2, serialized.ExtraData["turn"])

	out, err = execute(t, dsn, "responses", "Hi", "--limit", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":"Hello","occurrence":2}]`, out)
}

func TestDialogCommands_Failures(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cli.db")

	_, err := execute(t, dsn, "show", "Unknown")
	assert.Error(t, err)

	_, err = execute(t, dsn, "learn", "only one")
	assert.Error(t, err)

	_, err = execute(t, dsn, "--db-type", "mysql", "show", "Hi")
	assert.Error(t, err)
}

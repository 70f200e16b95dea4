//go:build unit
// +build unit

package statements

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatement(t *testing.T) {
	statement := NewStatement("Hello")

	require.NoError(t, statement.Validate())
	assert.Equal(t, "Hello", statement.Text)
	assert.NotNil(t, statement.ExtraData)
	assert.False(t, statement.DateTimeCreated.IsZero())
}

func TestStatementValidation(t *testing.T) {
	valid := func() *Statement {
		return &Statement{
			ID:              uuid.NewString(),
			Text:            "How are you?",
			DateTimeCreated: time.Now(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *Statement)
		wantErr bool
	}{
		{"valid", func(s *Statement) {}, false},
		{"max length text", func(s *Statement) { s.Text = strings.Repeat("a", MaxTextLength) }, false},
		{"multibyte text at max length", func(s *Statement) { s.Text = strings.Repeat("ü", MaxTextLength) }, false},
		{"text too long", func(s *Statement) { s.Text = strings.Repeat("a", MaxTextLength+1) }, true},
		{"empty text", func(s *Statement) { s.Text = "" }, true},
		{"blank text", func(s *Statement) { s.Text = "   " }, true},
		{"invalid id", func(s *Statement) { s.ID = "not-a-uuid" }, true},
		{"missing creation time", func(s *Statement) { s.DateTimeCreated = time.Time{} }, true},
		{"extra data too large", func(s *Statement) {
			s.ExtraData = map[string]interface{}{"note": strings.Repeat("x", 500)}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement := valid()
			tt.mutate(statement)

			err := statement.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalid)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatementString(t *testing.T) {
	long := strings.Repeat("b", 61)

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"short", "Hello there", "Hello there"},
		{"exactly sixty", strings.Repeat("a", 60), strings.Repeat("a", 60)},
		{"longer than sixty", long, strings.Repeat("b", 57) + "..."},
		{"empty", "", "<empty>"},
		{"whitespace only", "   ", "<empty>"},
		{"padding does not count", "  " + strings.Repeat("c", 60) + "  ", "  " + strings.Repeat("c", 60) + "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement := &Statement{Text: tt.text}
			assert.Equal(t, tt.expected, statement.String())
		})
	}
}

func TestStatementAddExtraData(t *testing.T) {
	statement := &Statement{Text: "Hi"}

	statement.AddExtraData("speaker", "alice")
	statement.AddExtraData("turn", 3)
	statement.AddExtraData("speaker", "bob")

	assert.Equal(t, map[string]interface{}{"speaker": "bob", "turn": 3}, statement.ExtraData)
}

func TestStatementGetResponseCount(t *testing.T) {
	statement := &Statement{
		Text: "Hi",
		InResponseTo: []*Response{
			{ResponseText: "Hello", Occurrence: 4},
			{ResponseText: "Hey", Occurrence: 1},
		},
	}

	assert.Equal(t, uint(4), statement.GetResponseCount("Hello"))
	assert.Equal(t, uint(1), statement.GetResponseCount("Hey"))
	assert.Equal(t, uint(0), statement.GetResponseCount("Bye"))
}

func TestStatementSerialize(t *testing.T) {
	t.Run("empty statement", func(t *testing.T) {
		statement := &Statement{Text: "Hi"}

		data, err := json.Marshal(statement.Serialize())
		require.NoError(t, err)
		assert.JSONEq(t, `{"text":"Hi","in_response_to":[],"extra_data":{}}`, string(data))
	})

	t.Run("with responses and extra data", func(t *testing.T) {
		statement := &Statement{
			Text:      "Hi",
			ExtraData: map[string]interface{}{"lang": "en"},
			InResponseTo: []*Response{
				{ResponseText: "Hello", Occurrence: 2},
				{ResponseText: "Hey", Occurrence: 1},
			},
		}

		serialized := statement.Serialize()
		assert.Equal(t, "Hi", serialized.Text)
		assert.Equal(t, []SerializedResponse{{Text: "Hello", Occurrence: 2}, {Text: "Hey", Occurrence: 1}}, serialized.InResponseTo)

		serialized.ExtraData["lang"] = "de"
		assert.Equal(t, "en", statement.ExtraData["lang"], "serialized extra data must not alias the statement")
	})
}

func TestResponseValidation(t *testing.T) {
	response := NewResponse(uuid.NewString(), uuid.NewString())
	require.NoError(t, response.Validate())
	assert.Equal(t, uint(1), response.Occurrence)

	response.Occurrence = 0
	assert.Error(t, response.Validate())

	invalid := NewResponse("", uuid.NewString())
	assert.Error(t, invalid.Validate())
}

func TestResponseString(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		response  string
		expected  string
	}{
		{"short", "Hi", "Hello", "Hi => Hello"},
		{
			"long statement",
			"What is the weather like today?",
			"Sunny",
			"What is the weath... => Sunny",
		},
		{
			"long response",
			"Hi",
			strings.Repeat("r", 41),
			"Hi => " + strings.Repeat("r", 37) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := &Response{StatementText: tt.statement, ResponseText: tt.response}
			assert.Equal(t, tt.expected, response.String())
		})
	}
}

//go:build unit
// +build unit

package strutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 10, ConvertToInt("10"))
	assert.Equal(t, -3, ConvertToInt("-3"))
	assert.Equal(t, 0, ConvertToInt("ten"))
	assert.Equal(t, 0, ConvertToInt(""))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		keep     int
		expected string
	}{
		{"short", "Hello", 20, 17, "Hello"},
		{"at limit", strings.Repeat("a", 20), 20, 17, strings.Repeat("a", 20)},
		{"over limit", strings.Repeat("a", 21), 20, 17, strings.Repeat("a", 17) + "..."},
		{"multibyte", strings.Repeat("ä", 25), 20, 17, strings.Repeat("ä", 17) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.limit, tt.keep))
		})
	}
}

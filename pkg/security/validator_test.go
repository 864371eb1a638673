package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectError bool
		errorMsg    string
		expected    string
	}{
		{
			name:     "empty query means no filter",
			query:    "",
			expected: "",
		},
		{
			name:     "plain name",
			query:    "alex",
			expected: "alex",
		},
		{
			name:     "name with spaces",
			query:    "alex chen",
			expected: "alex chen",
		},
		{
			name:     "email address",
			query:    "alex@example.com",
			expected: "alex@example.com",
		},
		{
			name:     "allowed punctuation",
			query:    "alex-chen_42",
			expected: "alex-chen_42",
		},
		{
			name:     "leading and trailing spaces trimmed",
			query:    "  alex chen  ",
			expected: "alex chen",
		},
		{
			name:        "query too long",
			query:       string(make([]rune, MaxSearchQueryLength+1)),
			expectError: true,
			errorMsg:    "search query too long",
		},
		{
			name:        "union select",
			query:       "alex UNION SELECT * FROM employees",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "tautology",
			query:       "alex OR 1=1",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "line comment",
			query:       "alex --",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "drop table",
			query:       "alex; DROP TABLE employees",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "script tag",
			query:       "<script>alert('xss')</script>",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "ampersand",
			query:       "alex&chen",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "semicolon",
			query:       "alex;chen",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateSearchQuery(tt.query)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Empty(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestSanitizeSearchString(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "empty string", query: "", expected: ""},
		{name: "no wildcards", query: "alex", expected: "alex"},
		{name: "percent escaped", query: "alex%", expected: "alex\\%"},
		{name: "underscore escaped", query: "alex_chen", expected: "alex\\_chen"},
		{name: "mixed wildcards", query: "%alex_%", expected: "\\%alex\\_\\%"},
		{name: "email untouched", query: "alex@example.com", expected: "alex@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSearchString(tt.query))
		})
	}
}

func TestIsValidSearchChar(t *testing.T) {
	valid := []rune{'a', 'Z', '5', ' ', '-', '_', '.', '@', '+', '#', '*'}
	for _, c := range valid {
		assert.True(t, isValidSearchChar(c), "expected %q to be valid", c)
	}

	invalid := []rune{';', '&', '<', '>', '\'', '"', '(', ')'}
	for _, c := range invalid {
		assert.False(t, isValidSearchChar(c), "expected %q to be invalid", c)
	}
}

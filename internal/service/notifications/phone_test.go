package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uk national format",
			input:    "07911123456",
			expected: "+447911123456",
		},
		{
			name:     "already international passes through",
			input:    "+447911123456",
			expected: "+447911123456",
		},
		{
			name:     "uk national with spaces",
			input:    "07911 123 456",
			expected: "+447911123456",
		},
		{
			name:     "uk national with punctuation",
			input:    "(07911) 123-456",
			expected: "+447911123456",
		},
		{
			name:     "foreign digits get bare plus prefix",
			input:    "14155552671",
			expected: "+14155552671",
		},
		{
			name:     "short uk-looking number falls back to plus prefix",
			input:    "0791112345",
			expected: "+0791112345",
		},
		{
			name:     "international with formatting passes through untouched",
			input:    "+44 7911 123456",
			expected: "+44 7911 123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPhoneNumber(tt.input, "+44", "07")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatPhoneNumber_Idempotent(t *testing.T) {
	once := FormatPhoneNumber("07911123456", "+44", "07")
	twice := FormatPhoneNumber(once, "+44", "07")
	assert.Equal(t, once, twice)
}

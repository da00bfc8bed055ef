package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chronokit/chronokit/pkg/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "with punctuation",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "zone display name",
			input:    "Pacific Time (US & Canada)",
			expected: "pacific-time-us-canada",
		},
		{
			name:     "path style name",
			input:    "America/Los Angeles",
			expected: "america-los-angeles",
		},
		{
			name:     "multiple spaces",
			input:    "Too    Many     Spaces",
			expected: "too-many-spaces",
		},
		{
			name:     "leading and trailing noise",
			input:    "  (Trim Me)  ",
			expected: "trim-me",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "unicode diacritics",
			input:    "Café résumé naïve",
			expected: "cafe-resume-naive",
		},
		{
			name:     "mixed case with lowercase disabled",
			input:    "Hello World",
			opts:     []slug.Option{slug.Lowercase(false)},
			expected: "Hello-World",
		},
		{
			name:     "custom separator",
			input:    "Hello World",
			opts:     []slug.Option{slug.Separator("_")},
			expected: "hello_world",
		},
		{
			name:     "consecutive separators collapse",
			input:    "Too---Many---Dashes",
			expected: "too-many-dashes",
		},
		{
			name:     "numbers pass through",
			input:    "GMT-08:00",
			expected: "gmt-08-00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

package dateformat

import (
	"fmt"
	"time"

	"github.com/chronokit/chronokit/pkg/strftime"
)

// Parse parses value against a strftime format string.
// Failures are reported as an error result, never a panic; IsValid is the
// boolean projection for callers that only need validity.
func Parse(value, format string) (time.Time, error) {
	layout, err := strftime.Layout(format)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return parsed, nil
}

// IsValid reports whether value parses against the format. It never fails.
func IsValid(value, format string) bool {
	_, err := Parse(value, format)
	return err == nil
}

// Parse resolves key through the table first, so both symbolic keys and
// literal format strings work.
func (t Table) Parse(value, key string) (time.Time, error) {
	return Parse(value, t.Lookup(key))
}

// IsValid reports whether value parses against the format behind key.
func (t Table) IsValid(value, key string) bool {
	return IsValid(value, t.Lookup(key))
}

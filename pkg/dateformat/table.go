package dateformat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table maps symbolic keys to strftime format strings, e.g.
// "default" → "%Y-%m-%d". A lookup miss is not an error: the key itself is
// returned, so a caller may pass either a known key or a literal format.
type Table map[string]string

// Lookup resolves key to its stored format, or returns key unchanged when it
// is not present in the table.
func (t Table) Lookup(key string) string {
	if format, ok := t[key]; ok {
		return format
	}
	return key
}

// ParseYAML reads a flat key → format document:
//
//	default: "%Y-%m-%d"
//	long: "%A, %B %e %Y"
func ParseYAML(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseYAML, err)
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}

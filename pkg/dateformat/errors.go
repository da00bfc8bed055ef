package dateformat

import "errors"

// Package-specific errors
var (
	// ErrFailedToParseYAML is returned when a format table document is not valid YAML
	ErrFailedToParseYAML = errors.New("failed to parse date format table YAML")

	// ErrUnsupportedFormat is returned when a format string uses strftime
	// specifiers that cannot be parsed back
	ErrUnsupportedFormat = errors.New("unsupported date format")

	// ErrInvalidDate is returned when a value does not match its format
	ErrInvalidDate = errors.New("value does not match date format")
)

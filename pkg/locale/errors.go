package locale

import "errors"

// Package-specific errors
var (
	// ErrFailedToParseYAML is returned when a name table document is not valid YAML
	ErrFailedToParseYAML = errors.New("failed to parse locale names YAML")

	// ErrInvalidNameCount is returned when a name sequence has the wrong length
	ErrInvalidNameCount = errors.New("invalid calendar name count")

	// ErrNoLanguages is returned when a parsed document contains no languages
	ErrNoLanguages = errors.New("no languages found in locale names document")
)

package strftime

import "errors"

// Package-specific errors
var (
	// ErrUnsupportedSpecifier is returned by Layout for strftime specifiers
	// that have no Go layout equivalent
	ErrUnsupportedSpecifier = errors.New("unsupported strftime specifier")
)

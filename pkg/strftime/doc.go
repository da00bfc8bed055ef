// Package strftime formats and parses times using POSIX strftime(3)
// conversion specifications.
//
// Go's reference-layout approach is unusual among languages; configuration
// that travels between systems (date format tables, user preferences) is
// commonly expressed in strftime directives like "%Y-%m-%d". This package
// bridges the two worlds:
//
//   - Format renders a time directly from a strftime format string.
//   - Layout converts a strftime format string to a Go layout so the standard
//     time.Parse machinery can consume it.
//   - FormatLocalized substitutes the textual directives (%a %A %b %B) from a
//     locale name table before formatting.
//
// # Usage
//
//	strftime.Format("%F %T", t)              // "2016-03-27 10:30:00"
//	layout, err := strftime.Layout("%Y-%m")  // "2006-01", nil
//
// Unknown directives are copied through verbatim by Format, matching the
// permissive behavior of C libraries; Layout instead fails with
// ErrUnsupportedSpecifier because a silent gap in a parse layout would accept
// garbage.
package strftime

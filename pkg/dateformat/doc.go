// Package dateformat resolves symbolic date format keys and validates date
// strings against strftime formats.
//
// A Table maps keys like "default" or "short" to strftime format strings.
// Lookups are deliberately soft: a missing key resolves to itself, so callers
// can hand the result of Lookup either a configured key or a raw format
// string without checking which one they hold.
//
//	table := dateformat.Table{"default": "%Y-%m-%d"}
//
//	table.Lookup("default")  // "%Y-%m-%d"
//	table.Lookup("%d.%m.%Y") // "%d.%m.%Y" (identity fallback)
//
// Validation is a result, not an exception:
//
//	t, err := dateformat.Parse("2020-01-01", "%F") // ok
//	dateformat.IsValid("not-a-date", "%F")         // false, never panics
package dateformat

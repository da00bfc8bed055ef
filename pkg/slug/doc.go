// Package slug provides URL-safe string generation.
//
// The package converts arbitrary display strings into a URL- and search-safe
// form by folding Unicode diacritics to ASCII, collapsing runs of
// non-alphanumeric characters into a single separator, and optionally
// lowercasing the result. It is used wherever a human-readable name has to
// survive a round trip through a URL or a query parameter, such as
// parameterized timezone names.
//
// # Usage
//
//	import "github.com/chronokit/chronokit/pkg/slug"
//
//	slug.Make("Pacific Time (US & Canada)")
//	// Result: "pacific-time-us-canada"
//
//	slug.Make("Café Zürich", slug.Separator("_"))
//	// Result: "cafe_zurich"
//
// # Unicode Support
//
// Diacritics are folded through Unicode decomposition (NFD) with combining
// marks removed, so "résumé" becomes "resume" without a hand-maintained
// character table. Characters that do not decompose to ASCII are treated as
// separators.
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use.
package slug

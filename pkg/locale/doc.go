// Package locale supplies localized calendar name tables.
//
// A name table holds the four ordered sequences calendar formatting needs:
// short and long day names (Monday first) and short and long month names
// (January first). Tables can be loaded from YAML documents keyed by language
// code, and a Provider resolves a requested language to the best matching
// table using BCP 47 matching from golang.org/x/text/language.
//
// # Usage
//
//	provider, err := locale.NewProviderFromYAML(data)
//	if err != nil {
//		// handle error
//	}
//
//	names := provider.Names("de-AT") // matches a "de" table if present
//
// When no table matches, the provider's fallback table (the built-in English
// one for NewProviderFromYAML) is returned; language resolution never fails.
//
// # Validation
//
// Sequence lengths are validated once at parse time. Consumers of Names trust
// the 7/7/12/12 shape and perform no further checks.
package locale

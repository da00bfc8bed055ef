// Package timezone resolves named timezones to offsets, DST periods, display
// names and URL-safe parameterized forms.
//
// Zones pair an IANA reference identifier with friendly display names from a
// curated catalog; offset and DST facts are read from the host tzdata via
// time.Location, so the package carries no timezone database of its own.
//
// A Resolver serves lookups and listings over a Source:
//
//	resolver := timezone.NewResolver(timezone.NewBuiltinSource())
//
//	names := resolver.ListAll(true, "(DST)")
//	zone, ok := resolver.Find("(GMT-08:00) America/Los Angeles", "")
//
// Display names follow the "(GMT±HH:MM) Location" convention and order by
// location name, not offset. Parameterization turns a display name into a
// slug usable in URLs and search queries:
//
//	timezone.ParameterizeZone("(GMT-08:00) Pacific Time (US & Canada)", true)
//	// "-0800@pacific-time-us-canada"
//
// and Unparameterize resolves such a slug back to its zone.
//
// Lookup misses are reported with a false second return, never an error; the
// only error path is constructing a Zone whose reference the host tzdata
// does not know.
//
// # Caching
//
// Sorted listings are memoized per DST label inside each Resolver and never
// invalidated; the zone source is assumed static for the process lifetime.
// Tests needing isolation construct a fresh Resolver per test.
//
// # DST resolution
//
// A year's DST period is found by probing January 15 and July 15, which
// covers both hemispheres' summers. Zones whose DST is dormant on both
// sample dates are treated as not observing DST for that year.
package timezone

package timezone

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"
)

// Zone is one named timezone backed by the host tzdata.
// Friendly names come from the catalog mapping; offset and DST facts come
// from the zone's time.Location.
type Zone struct {
	reference string
	names     []string
	loc       *time.Location
	offset    int // standard (non-DST) UTC offset in seconds

	aliasOnce sync.Once
	aliases   []string
}

// Period is the offset/DST state of a zone at one instant.
type Period struct {
	Offset int
	IsDST  bool
}

// DSTPeriod describes the daylight saving period of a zone for one year.
type DSTPeriod struct {
	Start      time.Time
	End        time.Time
	Offset     int // total UTC offset while DST is in effect
	Correction int // delta against the standard offset
}

// NewZone loads the location for an IANA reference identifier and attaches
// the given friendly display names.
func NewZone(reference string, names ...string) (*Zone, error) {
	loc, err := time.LoadLocation(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", reference, err)
	}
	z := &Zone{
		reference: reference,
		names:     names,
		loc:       loc,
	}
	z.offset = z.standardOffset(time.Now().Year())
	return z, nil
}

// Reference returns the zone's IANA identifier, e.g. "America/Los_Angeles".
func (z *Zone) Reference() string {
	return z.reference
}

// Location returns the underlying time.Location.
func (z *Zone) Location() *time.Location {
	return z.loc
}

// PeriodForInstant reports the UTC offset and DST state in effect at t.
func (z *Zone) PeriodForInstant(t time.Time) Period {
	lt := t.In(z.loc)
	_, offset := lt.Zone()
	return Period{Offset: offset, IsDST: lt.IsDST()}
}

// Offset returns the standard UTC offset in seconds, ignoring DST.
func (z *Zone) Offset() int {
	return z.offset
}

// OffsetAt returns the effective UTC offset at t, DST included.
func (z *Zone) OffsetAt(t time.Time) int {
	return z.PeriodForInstant(t).Offset
}

// CurrentOffset returns the effective UTC offset right now.
func (z *Zone) CurrentOffset() int {
	return z.OffsetAt(time.Now())
}

// RationalOffset returns the standard offset as a fraction of a day.
func (z *Zone) RationalOffset() *big.Rat {
	return RationalizeOffset(z.offset)
}

// DSTPeriod returns the daylight saving period observed in the given year,
// or false when the zone does not observe DST that year.
//
// The year is probed at two fixed instants, January 15 and July 15, covering
// one northern and one southern hemisphere summer. Zones with rules that are
// dormant on both sample dates are reported as not observing DST; their
// behavior is undefined here.
func (z *Zone) DSTPeriod(year int) (*DSTPeriod, bool) {
	for _, probe := range probeInstants(year) {
		lt := probe.In(z.loc)
		if !lt.IsDST() {
			continue
		}
		start, end := lt.ZoneBounds()
		_, offset := lt.Zone()
		return &DSTPeriod{
			Start:      start,
			End:        end,
			Offset:     offset,
			Correction: offset - z.offset,
		}, true
	}
	return nil, false
}

// UsesDST reports whether the zone observes DST in the given year.
func (z *Zone) UsesDST(year int) bool {
	_, ok := z.DSTPeriod(year)
	return ok
}

// UsesDSTAt reports whether DST is in effect at t.
func (z *Zone) UsesDSTAt(t time.Time) bool {
	return z.PeriodForInstant(t).IsDST
}

// DSTOffset returns the total offset during the year's DST period, or 0 when
// the zone does not observe DST that year.
func (z *Zone) DSTOffset(year int) int {
	if period, ok := z.DSTPeriod(year); ok {
		return period.Offset
	}
	return 0
}

// DSTCorrection returns the delta between the DST and standard offsets for
// the year, or 0 without DST.
func (z *Zone) DSTCorrection(year int) int {
	if period, ok := z.DSTPeriod(year); ok {
		return period.Correction
	}
	return 0
}

// Aliases returns the zone's display aliases, sorted.
//
// The canonical alias is the reference identifier with underscores turned
// into spaces. Each friendly name is substituted for the last element of the
// reference path, except a few legacy names that read as complete display
// strings on their own and are kept verbatim.
func (z *Zone) Aliases() []string {
	z.aliasOnce.Do(func() {
		seen := make(map[string]bool)
		add := func(alias string) {
			if alias != "" && !seen[alias] {
				seen[alias] = true
				z.aliases = append(z.aliases, alias)
			}
		}

		add(strings.ReplaceAll(z.reference, "_", " "))

		region := ""
		if i := strings.LastIndex(z.reference, "/"); i >= 0 {
			region = strings.ReplaceAll(z.reference[:i+1], "_", " ")
		}
		for _, name := range z.names {
			if keepVerbatim(name) {
				add(name)
				continue
			}
			add(region + name)
		}

		sort.Strings(z.aliases)
	})
	return z.aliases
}

// keepVerbatim marks friendly names that already read as full display names
// and must not be substituted into the reference path.
func keepVerbatim(name string) bool {
	return name == "International Date Line West" ||
		name == "UTC" ||
		strings.Contains(name, "(US & Canada)")
}

// CurrentAlias returns the alias matching the zone's reference identifier,
// falling back to the first alias.
func (z *Zone) CurrentAlias() string {
	aliases := z.Aliases()
	target := strings.ReplaceAll(z.reference, "_", " ")
	for _, alias := range aliases {
		if alias == target {
			return alias
		}
	}
	if len(aliases) > 0 {
		return aliases[0]
	}
	return target
}

// DisplayNames returns every alias prefixed with the standard offset, e.g.
// "(GMT-08:00) America/Los Angeles".
func (z *Zone) DisplayNames() []string {
	prefix := FormatOffset(z.offset)
	names := make([]string, len(z.Aliases()))
	for i, alias := range z.Aliases() {
		names[i] = prefix + " " + alias
	}
	return names
}

// String returns the offset-prefixed current alias.
func (z *Zone) String() string {
	return FormatOffset(z.offset) + " " + z.CurrentAlias()
}

// StringWithDST appends the DST label when the zone observes DST in the
// given year.
func (z *Zone) StringWithDST(label string, year int) string {
	if label == "" {
		label = DefaultDSTLabel
	}
	if z.UsesDST(year) {
		return z.String() + " " + label
	}
	return z.String()
}

// Parameterized returns the zone's URL-safe form, optionally prefixed with
// the signed offset.
func (z *Zone) Parameterized(withOffset bool) string {
	return ParameterizeZone(z.String(), withOffset)
}

// ParameterizedWithDST parameterizes the DST-labeled display string.
func (z *Zone) ParameterizedWithDST(label string, year int, withOffset bool) string {
	return ParameterizeZone(z.StringWithDST(label, year), withOffset)
}

// standardOffset probes the two sample instants and returns the offset of a
// non-DST one; if both report DST the January offset is used.
func (z *Zone) standardOffset(year int) int {
	probes := probeInstants(year)
	for _, probe := range probes {
		if p := z.PeriodForInstant(probe); !p.IsDST {
			return p.Offset
		}
	}
	return z.PeriodForInstant(probes[0]).Offset
}

// probeInstants returns the January 15 / July 15 sample instants for a year.
func probeInstants(year int) [2]time.Time {
	return [2]time.Time{
		time.Date(year, time.January, 15, 12, 0, 0, 0, time.UTC),
		time.Date(year, time.July, 15, 12, 0, 0, 0, time.UTC),
	}
}

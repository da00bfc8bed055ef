package calendar

import "time"

type refKind int

const (
	refNow refKind = iota
	refYear
	refDate
)

// Reference is a tagged reference point for calendar queries: a concrete
// date, a bare year, or (the zero value) "now". Callers state which variant
// they mean instead of the calendar probing the value's capabilities.
type Reference struct {
	kind refKind
	date time.Time
	yr   int
}

// Now is the zero Reference, resolved against the calendar's clock.
var Now = Reference{}

// ReferenceDate fixes the reference to a concrete date.
func ReferenceDate(t time.Time) Reference {
	return Reference{kind: refDate, date: t}
}

// ReferenceYear fixes the reference to a bare year.
func ReferenceYear(year int) Reference {
	return Reference{kind: refYear, yr: year}
}

// Date resolves the reference to a concrete time, using the clock for the
// "now" variant and January 1 for the bare-year variant.
func (r Reference) Date(now func() time.Time) time.Time {
	switch r.kind {
	case refDate:
		return r.date
	case refYear:
		return time.Date(r.yr, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return now()
	}
}

func (r Reference) year(now func() time.Time) int {
	switch r.kind {
	case refDate:
		return r.date.Year()
	case refYear:
		return r.yr
	default:
		return now().Year()
	}
}

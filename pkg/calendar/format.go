package calendar

import (
	"time"

	"github.com/chronokit/chronokit/pkg/strftime"
)

// Strftime formats t with plain strftime directives, no localization.
func (c *Calendar) Strftime(t time.Time, format string) string {
	return strftime.Format(format, t)
}

// Lstrftime formats t with the textual day/month directives substituted from
// the calendar's locale name table.
func (c *Calendar) Lstrftime(t time.Time, format string) string {
	return strftime.FormatLocalized(format, t, c.names)
}

// LocalStrftime converts t to the given location before formatting.
// A nil location leaves t untouched.
func (c *Calendar) LocalStrftime(t time.Time, loc *time.Location, format string) string {
	return c.Strftime(localize(t, loc), format)
}

// LocalLstrftime is Lstrftime in the given location.
// A nil location leaves t untouched.
func (c *Calendar) LocalLstrftime(t time.Time, loc *time.Location, format string) string {
	return c.Lstrftime(localize(t, loc), format)
}

func localize(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

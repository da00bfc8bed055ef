package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/chronokit/chronokit/pkg/locale"
)

// Choice is a value/label pair, typically rendered as one entry of a
// selection list.
type Choice struct {
	Value string
	Label string
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock overrides the time source used when no explicit reference is
// given. Primarily for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) {
		if now != nil {
			c.now = now
		}
	}
}

// Calendar answers derived calendar queries against one locale name table.
type Calendar struct {
	names locale.Names
	now   func() time.Time
}

// New creates a calendar over the given name table.
func New(names locale.Names, opts ...Option) *Calendar {
	c := &Calendar{
		names: names,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Names returns the name table the calendar was built with.
func (c *Calendar) Names() locale.Names {
	return c.names
}

// Days enumerates the weekdays Monday first. Values are "1" through "7";
// labels come from the short or long day names.
func (c *Calendar) Days(short bool) []Choice {
	labels := c.names.LongDays
	if short {
		labels = c.names.ShortDays
	}
	choices := make([]Choice, len(labels))
	for i, label := range labels {
		choices[i] = Choice{Value: strconv.Itoa(i + 1), Label: label}
	}
	return choices
}

// Months enumerates the months January first. Values are zero-padded "01"
// through "12"; labels come from the short or long month names.
func (c *Calendar) Months(short bool) []Choice {
	labels := c.names.LongMonths
	if short {
		labels = c.names.ShortMonths
	}
	choices := make([]Choice, len(labels))
	for i, label := range labels {
		choices[i] = Choice{Value: fmt.Sprintf("%02d", i+1), Label: label}
	}
	return choices
}

// Years lists the years from ref-offset up to ref, or up to ref+offset when
// alsoFuture is set. Both ends are inclusive. A zero Reference means the
// current year.
func (c *Calendar) Years(offset int, alsoFuture bool, ref Reference) []int {
	reference := ref.year(c.now)
	last := reference
	if alsoFuture {
		last = reference + offset
	}
	years := make([]int, 0, last-(reference-offset)+1)
	for y := reference - offset; y <= last; y++ {
		years = append(years, y)
	}
	return years
}

// YearChoices is Years with each year projected to a Choice whose value and
// label are both the year's decimal form.
func (c *Calendar) YearChoices(offset int, alsoFuture bool, ref Reference) []Choice {
	years := c.Years(offset, alsoFuture, ref)
	choices := make([]Choice, len(years))
	for i, y := range years {
		s := strconv.Itoa(y)
		choices[i] = Choice{Value: s, Label: s}
	}
	return choices
}

// Easter returns Easter Sunday for the given year, or for the current year
// when year is zero or negative.
func (c *Calendar) Easter(year int) time.Time {
	if year <= 0 {
		year = c.now().Year()
	}
	return Easter(year)
}

package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronokit/chronokit/pkg/calendar"
	"github.com/chronokit/chronokit/pkg/locale"
)

func fixedClock(year int) calendar.Option {
	return calendar.WithClock(func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	})
}

func TestCalendar_Days(t *testing.T) {
	cal := calendar.New(locale.English())

	t.Run("long names", func(t *testing.T) {
		days := cal.Days(false)
		require.Len(t, days, 7)
		assert.Equal(t, calendar.Choice{Value: "1", Label: "Monday"}, days[0])
		assert.Equal(t, calendar.Choice{Value: "7", Label: "Sunday"}, days[6])
	})

	t.Run("short names", func(t *testing.T) {
		days := cal.Days(true)
		require.Len(t, days, 7)
		assert.Equal(t, calendar.Choice{Value: "1", Label: "Mon"}, days[0])
		assert.Equal(t, calendar.Choice{Value: "6", Label: "Sat"}, days[5])
	})
}

func TestCalendar_Months(t *testing.T) {
	cal := calendar.New(locale.English())

	months := cal.Months(true)
	require.Len(t, months, 12)
	assert.Equal(t, calendar.Choice{Value: "01", Label: "Jan"}, months[0])
	assert.Equal(t, calendar.Choice{Value: "09", Label: "Sep"}, months[8])
	assert.Equal(t, calendar.Choice{Value: "12", Label: "Dec"}, months[11])

	long := cal.Months(false)
	require.Len(t, long, 12)
	assert.Equal(t, "January", long[0].Label)
	assert.Equal(t, "12", long[11].Value)
}

func TestCalendar_Years(t *testing.T) {
	cal := calendar.New(locale.English(), fixedClock(2020))

	t.Run("past only", func(t *testing.T) {
		years := cal.Years(10, false, calendar.ReferenceYear(2010))
		require.Len(t, years, 11)
		assert.Equal(t, 2000, years[0])
		assert.Equal(t, 2010, years[10])
	})

	t.Run("past and future", func(t *testing.T) {
		assert.Equal(t, []int{2009, 2010, 2011},
			cal.Years(1, true, calendar.ReferenceYear(2010)))
	})

	t.Run("zero offset", func(t *testing.T) {
		assert.Equal(t, []int{2010}, cal.Years(0, true, calendar.ReferenceYear(2010)))
	})

	t.Run("reference defaults to clock", func(t *testing.T) {
		assert.Equal(t, []int{2019, 2020}, cal.Years(1, false, calendar.Now))
	})

	t.Run("date reference uses its year", func(t *testing.T) {
		ref := calendar.ReferenceDate(time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []int{1998, 1999, 2000}, cal.Years(1, true, ref))
	})
}

func TestCalendar_YearChoices(t *testing.T) {
	cal := calendar.New(locale.English())

	choices := cal.YearChoices(1, true, calendar.ReferenceYear(2010))
	assert.Equal(t, []calendar.Choice{
		{Value: "2009", Label: "2009"},
		{Value: "2010", Label: "2010"},
		{Value: "2011", Label: "2011"},
	}, choices)
}

func TestEaster(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2013, time.March, 31},
		{2016, time.March, 27},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2000, time.April, 23},
		{1999, time.April, 4},
		{2038, time.April, 25}, // latest possible date in the near future
	}

	for _, tt := range tests {
		got := calendar.Easter(tt.year)
		assert.Equal(t, tt.year, got.Year())
		assert.Equal(t, tt.month, got.Month(), "year %d", tt.year)
		assert.Equal(t, tt.day, got.Day(), "year %d", tt.year)
		assert.Equal(t, time.Sunday, got.Weekday(), "year %d", tt.year)
	}
}

func TestCalendar_Easter_DefaultsToCurrentYear(t *testing.T) {
	cal := calendar.New(locale.English(), fixedClock(2016))

	got := cal.Easter(0)
	assert.Equal(t, time.Date(2016, time.March, 27, 0, 0, 0, 0, time.UTC), got)

	assert.Equal(t, calendar.Easter(2025), cal.Easter(2025))
}

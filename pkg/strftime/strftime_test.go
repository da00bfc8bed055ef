package strftime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronokit/chronokit/pkg/locale"
	"github.com/chronokit/chronokit/pkg/strftime"
)

// Sunday, March 27 2016, 09:05:07 UTC.
var reference = time.Date(2016, time.March, 27, 9, 5, 7, 0, time.UTC)

func TestFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"%Y-%m-%d", "2016-03-27"},
		{"%F", "2016-03-27"},
		{"%d/%m/%Y", "27/03/2016"},
		{"%a %b %e", "Sun Mar 27"},
		{"%A, %B %d", "Sunday, March 27"},
		{"%H:%M:%S", "09:05:07"},
		{"%T", "09:05:07"},
		{"%I:%M %p", "09:05 AM"},
		{"%r", "09:05:07 AM"},
		{"%R", "09:05"},
		{"%j", "087"},
		{"%u/%w", "7/0"},
		{"%y", "16"},
		{"%C", "20"},
		{"%z %Z", "+0000 UTC"},
		{"100%% done", "100% done"},
		{"no directives", "no directives"},
		{"%Q", "%Q"}, // unknown specifiers pass through
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, strftime.Format(tt.format, reference))
		})
	}
}

func TestFormat_TwelveHourEdges(t *testing.T) {
	midnight := time.Date(2016, time.March, 27, 0, 30, 0, 0, time.UTC)
	noon := time.Date(2016, time.March, 27, 12, 30, 0, 0, time.UTC)

	assert.Equal(t, "12:30 AM", strftime.Format("%I:%M %p", midnight))
	assert.Equal(t, "12:30 PM", strftime.Format("%I:%M %p", noon))
	assert.Equal(t, "12", strftime.Format("%l", noon))
}

func TestFormat_EpochSeconds(t *testing.T) {
	assert.Equal(t, "0", strftime.Format("%s", time.Unix(0, 0).UTC()))
}

func TestLayout(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"%Y-%m-%d", "2006-01-02"},
		{"%F", "2006-01-02"},
		{"%d/%m/%Y", "02/01/2006"},
		{"%F %T", "2006-01-02 15:04:05"},
		{"%b %e, %Y", "Jan _2, 2006"},
		{"%I:%M %p", "03:04 PM"},
		{"100%%", "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			layout, err := strftime.Layout(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, layout)
		})
	}
}

func TestLayout_RoundTrip(t *testing.T) {
	layout, err := strftime.Layout("%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)

	parsed, err := time.Parse(layout, "2016-03-27 09:05:07")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(reference))
}

func TestLayout_Unsupported(t *testing.T) {
	for _, format := range []string{"%s", "%U", "%V", "week %W"} {
		_, err := strftime.Layout(format)
		assert.ErrorIs(t, err, strftime.ErrUnsupportedSpecifier, format)
	}
}

func TestFormatLocalized(t *testing.T) {
	names := locale.Names{
		ShortDays:   []string{"lun", "mar", "mer", "jeu", "ven", "sam", "dim"},
		LongDays:    []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"},
		ShortMonths: []string{"jan", "fév", "mar", "avr", "mai", "jui", "juil", "aoû", "sep", "oct", "nov", "déc"},
		LongMonths:  []string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	}

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:     "short day and month",
			format:   "%a %d %b %Y",
			expected: "dim 27 mar 2016",
		},
		{
			name:     "long day and month",
			format:   "%A %d %B",
			expected: "dimanche 27 mars",
		},
		{
			name:     "escaped directive is not substituted",
			format:   "%%a %a",
			expected: "%a dim",
		},
		{
			name:     "numeric directives untouched",
			format:   "%Y-%m-%d",
			expected: "2016-03-27",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strftime.FormatLocalized(tt.format, reference, names))
		})
	}
}

func TestFormatLocalized_DefaultNamesMatchFormat(t *testing.T) {
	format := "%a %A %b %B"
	assert.Equal(t,
		strftime.Format(format, reference),
		strftime.FormatLocalized(format, reference, locale.English()))
}

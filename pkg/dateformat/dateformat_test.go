package dateformat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronokit/chronokit/pkg/dateformat"
)

func TestTable_Lookup(t *testing.T) {
	table := dateformat.Table{
		"default": "%Y-%m-%d",
		"long":    "%A, %B %d %Y",
	}

	assert.Equal(t, "%Y-%m-%d", table.Lookup("default"))
	assert.Equal(t, "%A, %B %d %Y", table.Lookup("long"))

	t.Run("miss returns the key itself", func(t *testing.T) {
		assert.Equal(t, "unknown_key", table.Lookup("unknown_key"))
	})

	t.Run("nil table always falls back", func(t *testing.T) {
		var empty dateformat.Table
		assert.Equal(t, "%F", empty.Lookup("%F"))
	})
}

func TestParse(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := dateformat.Parse("2020-01-01", "%F")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("valid with explicit directives", func(t *testing.T) {
		got, err := dateformat.Parse("31.12.1999", "%d.%m.%Y")
		require.NoError(t, err)
		assert.Equal(t, time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("mismatched value", func(t *testing.T) {
		_, err := dateformat.Parse("not-a-date", "%F")
		assert.ErrorIs(t, err, dateformat.ErrInvalidDate)
	})

	t.Run("impossible date", func(t *testing.T) {
		_, err := dateformat.Parse("2020-02-31", "%F")
		assert.ErrorIs(t, err, dateformat.ErrInvalidDate)
	})

	t.Run("unparseable format", func(t *testing.T) {
		_, err := dateformat.Parse("123", "%s")
		assert.ErrorIs(t, err, dateformat.ErrUnsupportedFormat)
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, dateformat.IsValid("2020-01-01", "%F"))
	assert.False(t, dateformat.IsValid("not-a-date", "%F"))
	assert.False(t, dateformat.IsValid("2020-13-01", "%F"))
	assert.False(t, dateformat.IsValid("anything", "%s"))
}

func TestTable_Parse(t *testing.T) {
	table := dateformat.Table{"default": "%Y-%m-%d"}

	got, err := table.Parse("2016-03-27", "default")
	require.NoError(t, err)
	assert.Equal(t, 2016, got.Year())

	t.Run("literal format through the fallback", func(t *testing.T) {
		got, err := table.Parse("27/03/2016", "%d/%m/%Y")
		require.NoError(t, err)
		assert.Equal(t, time.March, got.Month())
	})

	assert.True(t, table.IsValid("2016-03-27", "default"))
	assert.False(t, table.IsValid("27-03-2016", "default"))
}

func TestParseYAML(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		table, err := dateformat.ParseYAML([]byte("default: \"%Y-%m-%d\"\nshort: \"%d %b\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "%Y-%m-%d", table.Lookup("default"))
		assert.Equal(t, "%d %b", table.Lookup("short"))
	})

	t.Run("empty document yields empty table", func(t *testing.T) {
		table, err := dateformat.ParseYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, "key", table.Lookup("key"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := dateformat.ParseYAML([]byte("default: [broken"))
		assert.ErrorIs(t, err, dateformat.ErrFailedToParseYAML)
	})
}

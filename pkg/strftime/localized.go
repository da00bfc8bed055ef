package strftime

import (
	"strings"
	"time"

	"github.com/chronokit/chronokit/pkg/locale"
)

// FormatLocalized renders t like Format, but sources the textual day and
// month directives (%a %A %b %B) from the given name table instead of the
// English names baked into the time package.
//
// An escaped directive ("%%a") stays a literal "%a" and is never substituted.
func FormatLocalized(format string, t time.Time, names locale.Names) string {
	return Format(substituteNames(format, t, names), t)
}

// substituteNames rewrites the localizable directives into literal text.
// The scan is left to right, so "%%" is consumed as an escape before the
// following letter can be mistaken for a directive.
func substituteNames(format string, t time.Time, names locale.Names) string {
	var b strings.Builder
	b.Grow(len(format))

	// Monday-first index for the 7-entry day tables.
	day := (int(t.Weekday()) + 6) % 7
	month := int(t.Month()) - 1

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		switch runes[i+1] {
		case '%':
			b.WriteString("%%")
			i++
		case 'a':
			b.WriteString(names.ShortDays[day])
			i++
		case 'A':
			b.WriteString(names.LongDays[day])
			i++
		case 'b', 'h':
			b.WriteString(names.ShortMonths[month])
			i++
		case 'B':
			b.WriteString(names.LongMonths[month])
			i++
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

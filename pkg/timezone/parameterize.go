package timezone

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/chronokit/chronokit/pkg/slug"
)

// DefaultDSTLabel is the suffix marking DST-qualified display names.
const DefaultDSTLabel = "(DST)"

var (
	// displayPattern matches a canonical display string, capturing the
	// offset and the location name: "(GMT-08:00) Pacific Time (US & Canada)".
	displayPattern = regexp.MustCompile(`^\(GMT([+-]\d{2}:\d{2})\)\s(.+)$`)

	// paramPattern matches an already parameterized string with an offset
	// prefix: "-0800@pacific-time-us-canada".
	paramPattern = regexp.MustCompile(`^[+-]\d{4}@(.+)$`)
)

// ParameterizeZone turns a zone display string into its URL-safe form.
//
// A canonical "(GMT±HH:MM) Location" string becomes "±HHMM@location-slug"
// with offset, or just "location-slug" without. An already parameterized
// string keeps or drops its offset prefix accordingly. Anything else is
// slugified wholesale.
func ParameterizeZone(tz string, withOffset bool) string {
	if m := displayPattern.FindStringSubmatch(tz); m != nil {
		name := slug.Make(m[2])
		if withOffset {
			return strings.Replace(m[1], ":", "", 1) + "@" + name
		}
		return name
	}
	if m := paramPattern.FindStringSubmatch(tz); m != nil {
		if withOffset {
			return tz
		}
		return m[1]
	}
	return slug.Make(tz)
}

// FormatOffset renders an offset in seconds as the display prefix
// "(GMT±HH:MM)".
func FormatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("(GMT%s%02d:%02d)", sign, seconds/3600, seconds%3600/60)
}

// RationalizeOffset converts an offset in seconds to a fraction of a day.
func RationalizeOffset(seconds int) *big.Rat {
	return big.NewRat(int64(seconds), 86400)
}

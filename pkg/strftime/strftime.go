package strftime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format renders t according to a POSIX strftime(3) format string.
// Unsupported conversion specifications are copied to the output verbatim,
// including the leading '%'.
func Format(format string, t time.Time) string {
	var b strings.Builder
	b.Grow(len(format) * 2)

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		i++
		writeDirective(&b, runes[i], t)
	}
	return b.String()
}

func writeDirective(b *strings.Builder, spec rune, t time.Time) {
	switch spec {
	case 'a':
		b.WriteString(t.Format("Mon"))
	case 'A':
		b.WriteString(t.Format("Monday"))
	case 'b', 'h':
		b.WriteString(t.Format("Jan"))
	case 'B':
		b.WriteString(t.Format("January"))
	case 'c':
		b.WriteString(Format("%a %b %e %H:%M:%S %Y", t))
	case 'C':
		fmt.Fprintf(b, "%02d", t.Year()/100)
	case 'd':
		b.WriteString(t.Format("02"))
	case 'D':
		b.WriteString(t.Format("01/02/06"))
	case 'e':
		fmt.Fprintf(b, "%2d", t.Day())
	case 'F':
		b.WriteString(t.Format("2006-01-02"))
	case 'H':
		b.WriteString(t.Format("15"))
	case 'I':
		b.WriteString(t.Format("03"))
	case 'j':
		fmt.Fprintf(b, "%03d", t.YearDay())
	case 'k':
		fmt.Fprintf(b, "%2d", t.Hour())
	case 'l':
		fmt.Fprintf(b, "%2d", hour12(t))
	case 'm':
		b.WriteString(t.Format("01"))
	case 'M':
		b.WriteString(t.Format("04"))
	case 'n':
		b.WriteByte('\n')
	case 'p':
		b.WriteString(t.Format("PM"))
	case 'P':
		b.WriteString(t.Format("pm"))
	case 'r':
		b.WriteString(t.Format("03:04:05 PM"))
	case 'R':
		b.WriteString(t.Format("15:04"))
	case 's':
		b.WriteString(strconv.FormatInt(t.Unix(), 10))
	case 'S':
		b.WriteString(t.Format("05"))
	case 't':
		b.WriteByte('\t')
	case 'T':
		b.WriteString(t.Format("15:04:05"))
	case 'u':
		// ISO weekday, Monday is 1.
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		b.WriteString(strconv.Itoa(wd))
	case 'w':
		b.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'y':
		b.WriteString(t.Format("06"))
	case 'Y':
		b.WriteString(strconv.Itoa(t.Year()))
	case 'z':
		b.WriteString(t.Format("-0700"))
	case 'Z':
		b.WriteString(t.Format("MST"))
	case '%':
		b.WriteByte('%')
	default:
		b.WriteByte('%')
		b.WriteRune(spec)
	}
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return h
}

// layouts maps strftime conversion specifiers to Go reference-layout
// fragments. Only specifiers with a lossless layout equivalent appear here;
// everything else makes Layout fail.
var layouts = map[rune]string{
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'd': "02",
	'D': "01/02/06",
	'e': "_2",
	'F': "2006-01-02",
	'H': "15",
	'I': "03",
	'j': "002",
	'm': "01",
	'M': "04",
	'p': "PM",
	'r': "03:04:05 PM",
	'R': "15:04",
	'S': "05",
	'T': "15:04:05",
	'y': "06",
	'Y': "2006",
	'z': "-0700",
	'Z': "MST",
}

// Layout converts a strftime format string to a Go time layout for parsing.
// Specifiers without a layout equivalent (week numbers, epoch seconds and the
// like) yield ErrUnsupportedSpecifier.
func Layout(format string) (string, error) {
	var b strings.Builder
	b.Grow(len(format))

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		i++
		spec := runes[i]
		if spec == '%' {
			b.WriteByte('%')
			continue
		}
		layout, ok := layouts[spec]
		if !ok {
			return "", fmt.Errorf("%w: %%%c", ErrUnsupportedSpecifier, spec)
		}
		b.WriteString(layout)
	}
	return b.String(), nil
}

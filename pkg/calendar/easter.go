package calendar

import "time"

// Easter computes the date of Easter Sunday for a year in the Gregorian
// calendar using the anonymous Gregorian computus
// (https://en.wikipedia.org/wiki/Computus#Anonymous_Gregorian_algorithm).
// The result is midnight UTC of Easter Sunday. Valid from 1583 onwards.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	f1 := b - b/4 - (b-(b+8)/25+1)/3
	f2 := b % 4
	f3 := c / 4
	f4 := c % 4
	h := (19*a + f1 + 15) % 30
	l := (32 + 2*f2 + 2*f3 - h - f4) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Package calendar answers derived calendar queries: weekday and month
// enumerations for selection lists, inclusive year ranges around a reference
// point, localized strftime formatting, and the Gregorian Easter date.
//
// A Calendar is constructed over a locale name table (see pkg/locale) and an
// optional clock:
//
//	cal := calendar.New(locale.English())
//
//	cal.Months(true)
//	// [{01 Jan} {02 Feb} ... {12 Dec}]
//
//	cal.Years(2, true, calendar.ReferenceYear(2010))
//	// [2008 2009 2010 2011 2012]
//
// Reference points are explicit tagged values (ReferenceDate, ReferenceYear,
// or the zero value Now) rather than dynamically probed arguments.
//
// Easter is a pure function of the year and is also exported at package level:
//
//	calendar.Easter(2016) // 2016-03-27 00:00:00 +0000 UTC
//
// All queries are pure apart from clock reads; the package holds no state
// beyond the name table a Calendar was built with.
package calendar

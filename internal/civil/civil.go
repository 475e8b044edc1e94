// Package civil converts between Rata Die day numbers and dates in the
// proleptic Gregorian calendar.
//
// Day 1 of the Rata Die count is 0001-01-01. Only dates between 0001-01-01 and
// 9999-12-31 are supported; callers are expected to check the range before
// calling Date.
package civil

const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	// MinRataDie is the day number of 0001-01-01.
	MinRataDie = 1
	// MaxRataDie is the day number of 9999-12-31.
	MaxRataDie = 3652059
	// UnixEpoch is the day number of 1970-01-01.
	UnixEpoch = 719163
)

// marchOffset holds the number of days between March 1st and the first day of
// each month, counting in a year that starts in March. January and February
// belong to the end of such a year; index 0 is unused.
var marchOffset = [13]uint16{
	0, 306, 337, 0, 31, 61, 92, 122, 153, 184, 214, 245, 275,
}

// Date returns the calendar date of the Rata Die day number rdn.
//
// Years are counted as starting on March 1st so that the leap day is the last
// day of the year. The day number is shifted onto that calendar, broken down
// into 400, 100, 4 and 1 year cycles, and the remaining day of the year is
// mapped to a month.
func Date(rdn uint32) (year, month, day uint16) {
	d := rdn + 305

	y := 400 * (d / daysPer400Years)
	d %= daysPer400Years

	n100 := d / daysPer100Years
	y += 100 * n100
	d %= daysPer100Years

	y += 4 * (d / daysPer4Years)
	d %= daysPer4Years

	n1 := d / 365
	y += n1
	d %= 365

	// A fourth century or a fourth year in a cycle can only mean the leap day
	// that closes the previous cycle.
	if n100 == 4 || n1 == 4 {
		d = 366
	} else {
		y++
		d++
	}

	m := (5*d + 456) / 153
	if m > 12 {
		m -= 12
	} else {
		y-- // March to December belong to the previous January-based year.
	}

	return uint16(y), uint16(m), uint16(d) - marchOffset[m]
}

// RataDie returns the day number of the given date. It is the inverse of Date.
// The date is not validated.
func RataDie(year, month, day int) uint32 {
	daysSinceStartOfYear := [12]uint32{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

	y := uint32(year - 1)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	d += 365 * y

	d += daysSinceStartOfYear[month-1] + uint32(day)
	if month > 2 && IsLeapYear(year) {
		d++ // +leap year
	}
	return d
}

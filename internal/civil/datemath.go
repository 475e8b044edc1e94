package civil

// IsLeapYear reports whether year has a February 29th in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year. Stepping a date forward
// with it visits the same days as incrementing a Rata Die number.
func DaysInMonth(month, year int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// Weekday returns the day of the week of the Rata Die day number rdn,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func Weekday(rdn uint32) int {
	// 0001-01-01 was a Monday.
	return int(rdn % 7)
}

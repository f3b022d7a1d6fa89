package domain

import "time"

// DateOnly truncates a timestamp to its UTC calendar date. All domain date
// comparisons operate on these midnight-UTC values.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts a date by the given number of calendar months, clamping
// the day-of-month to the last day of the target month when the original day
// does not exist there (Aug 31 minus 6 months is Feb 28, or Feb 29 in a leap
// year). This matches calendar-month arithmetic rather than time.AddDate,
// which would normalize the overflow into the following month.
func AddMonths(t time.Time, months int) time.Time {
	t = DateOnly(t)
	year, month, day := t.Date()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

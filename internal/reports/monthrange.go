package reports

import "time"

// MonthStart returns the first calendar day of a YYYY-MM month as
// YYYY-MM-DD. The input must already be validated.
func MonthStart(yearMonth string) string {
	t, _ := time.Parse("2006-01", yearMonth)
	return t.Format("2006-01-02")
}

// MonthEnd returns the last calendar day of a YYYY-MM month as
// YYYY-MM-DD. Day zero of the next month normalizes variable month
// lengths and leap years.
func MonthEnd(yearMonth string) string {
	t, _ := time.Parse("2006-01", yearMonth)
	end := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return end.Format("2006-01-02")
}

// DefaultRange is the six month trailing window ending with the month
// of now: the first day five months back through the last day of the
// current month.
func DefaultRange(now time.Time) (from, to string) {
	start := time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

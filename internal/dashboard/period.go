package dashboard

import "time"

// Named aggregation periods.
const (
	PeriodCurrent  = "current"
	PeriodPrevious = "previous"
	PeriodLast3    = "last3"
)

// Range is an inclusive calendar-date range.
type Range struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`
}

// PeriodRange resolves a named period relative to now:
// current covers this calendar month, previous the prior month, and last3
// the three-month window ending with the current month.
func PeriodRange(period string, now time.Time) Range {
	year, month := now.Year(), now.Month()

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	switch period {
	case PeriodPrevious:
		start = start.AddDate(0, -1, 0)
		end = time.Date(year, month, 0, 0, 0, 0, 0, time.UTC)
	case PeriodLast3:
		start = start.AddDate(0, -2, 0)
	}

	const layout = "2006-01-02"
	return Range{Start: start.Format(layout), End: end.Format(layout)}
}

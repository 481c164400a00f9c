package fixedexpenses

import (
	"math"
	"time"
)

// DaysUntilDue counts the days from now until the next occurrence of
// dueDay. A due day already past this month (including earlier today)
// rolls over to next month. Out-of-range due days normalize the way the
// calendar does (day 31 in a 30-day month lands in the following month).
func DaysUntilDue(dueDay int, now time.Time) int {
	due := time.Date(now.Year(), now.Month(), dueDay, 0, 0, 0, 0, now.Location())
	if due.Before(now) {
		due = due.AddDate(0, 1, 0)
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

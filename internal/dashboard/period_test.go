package dashboard

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		period    string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "current mid-month",
			now:       time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
			period:    PeriodCurrent,
			wantStart: "2025-03-01",
			wantEnd:   "2025-03-31",
		},
		{
			name:      "previous month",
			now:       time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
			period:    PeriodPrevious,
			wantStart: "2025-02-01",
			wantEnd:   "2025-02-28",
		},
		{
			name:      "previous month in leap year",
			now:       time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
			period:    PeriodPrevious,
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "last3 window",
			now:       time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
			period:    PeriodLast3,
			wantStart: "2025-01-01",
			wantEnd:   "2025-03-31",
		},
		{
			name:      "last3 across year boundary",
			now:       time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC),
			period:    PeriodLast3,
			wantStart: "2024-11-01",
			wantEnd:   "2025-01-31",
		},
		{
			name:      "previous across year boundary",
			now:       time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC),
			period:    PeriodPrevious,
			wantStart: "2024-12-01",
			wantEnd:   "2024-12-31",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PeriodRange(tt.period, tt.now)
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("PeriodRange(%s) = %v, want %s..%s", tt.period, r, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

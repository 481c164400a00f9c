package api

import "testing"

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name       string
		page, lim  int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults pass through", 1, 20, 1, 20, 0},
		{"zero page", 0, 20, 1, 20, 0},
		{"negative page", -5, 20, 1, 20, 0},
		{"zero limit", 3, 0, 3, 1, 2},
		{"negative limit", 2, -10, 2, 1, 1},
		{"limit above cap", 2, 5000, 2, 100, 100},
		{"normal paging", 4, 25, 4, 25, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ClampPagination(tt.page, tt.lim)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("ClampPagination(%d,%d) = %+v, want page=%d limit=%d offset=%d",
					tt.page, tt.lim, p, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

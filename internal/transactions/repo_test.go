package transactions

import (
	"reflect"
	"testing"
)

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name     string
		f        Filters
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filters",
			f:       Filters{},
			wantSQL: "",
		},
		{
			name:     "type only",
			f:        Filters{Type: "expense"},
			wantSQL:  "WHERE type = $1",
			wantArgs: []any{"expense"},
		},
		{
			name:     "category only",
			f:        Filters{Category: "Mercado"},
			wantSQL:  "WHERE category = $1",
			wantArgs: []any{"Mercado"},
		},
		{
			name:     "date range",
			f:        Filters{From: "2025-01-01", To: "2025-01-31"},
			wantSQL:  "WHERE date >= $1::date AND date <= $2::date",
			wantArgs: []any{"2025-01-01", "2025-01-31"},
		},
		{
			name:     "all filters keep argument order",
			f:        Filters{Type: "income", Category: "Entradas", From: "2025-02-01", To: "2025-02-28"},
			wantSQL:  "WHERE type = $1 AND category = $2 AND date >= $3::date AND date <= $4::date",
			wantArgs: []any{"income", "Entradas", "2025-02-01", "2025-02-28"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildWhere(tt.f)
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

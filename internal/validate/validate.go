// Package validate collects per-field validation failures for request
// payloads and coerces numeric-looking strings from query and path
// parameters. Handlers never see a partially valid payload: every rule is
// evaluated and the full field->message map is returned at once.
package validate

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Errors maps field name to the first violated constraint for that field.
type Errors map[string]string

func (e Errors) Add(field, msg string) {
	if _, dup := e[field]; !dup {
		e[field] = msg
	}
}

// Ok reports whether no rule failed.
func (e Errors) Ok() bool { return len(e) == 0 }

// Required fails when the trimmed value is empty.
func (e Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "must not be empty")
	}
}

// Amount fails on negative monetary values.
func (e Errors) Amount(field string, v decimal.Decimal) {
	if v.IsNegative() {
		e.Add(field, "must be non-negative")
	}
}

// OneOf fails unless the value is one of the allowed literals.
func (e Errors) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, "must be one of: "+strings.Join(allowed, ", "))
}

// IntRange fails when v is outside [lo, hi].
func (e Errors) IntRange(field string, v, lo, hi int) {
	if v < lo || v > hi {
		e.Add(field, "must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
	}
}

// Date fails unless the value parses as YYYY-MM-DD.
func (e Errors) Date(field, value string) {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		e.Add(field, "must be a date in YYYY-MM-DD format")
	}
}

// OptionalDate is Date for nullable fields; nil and empty pass.
func (e Errors) OptionalDate(field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	e.Date(field, *value)
}

// YearMonth fails unless the value parses as YYYY-MM.
func (e Errors) YearMonth(field, value string) {
	if _, err := time.Parse("2006-01", value); err != nil {
		e.Add(field, "must be a month in YYYY-MM format")
	}
}

// Email fails unless the value is a plausible address.
func (e Errors) Email(field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		e.Add(field, "must be a valid email address")
	}
}

// MinLen fails when the value is shorter than n bytes.
func (e Errors) MinLen(field, value string, n int) {
	if len(value) < n {
		e.Add(field, "must be at least "+strconv.Itoa(n)+" characters")
	}
}

// CoerceInt converts a query/path string into an int, falling back to def
// when the parameter is absent or not numeric.
func CoerceInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// CoerceID converts a path parameter into a positive integer id.
func CoerceID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

package reports

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/validate"
)

type Store interface {
	Monthly(ctx context.Context, from, to string) ([]MonthTotals, error)
}

type Handler struct {
	Store Store

	now func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store, now: time.Now}
}

// resolveRange turns the optional from/to year-month query params into a
// concrete date range, filling gaps from the default trailing window.
func (h *Handler) resolveRange(c *fiber.Ctx) (from, to string, errs validate.Errors) {
	qFrom := strings.TrimSpace(c.Query("from"))
	qTo := strings.TrimSpace(c.Query("to"))

	errs = validate.Errors{}
	if qFrom != "" {
		errs.YearMonth("from", qFrom)
	}
	if qTo != "" {
		errs.YearMonth("to", qTo)
	}
	if !errs.Ok() {
		return "", "", errs
	}

	from, to = DefaultRange(h.now())
	if qFrom != "" {
		from = MonthStart(qFrom)
	}
	if qTo != "" {
		to = MonthEnd(qTo)
	}
	return from, to, errs
}

func (h *Handler) Monthly(c *fiber.Ctx) error {
	from, to, errs := h.resolveRange(c)
	if !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid query", api.CodeValidation, errs)
	}

	items, err := h.Store.Monthly(c.UserContext(), from, to)
	if err != nil {
		return api.DBError(c, "could not build monthly report", err)
	}
	return api.OK(c, items)
}

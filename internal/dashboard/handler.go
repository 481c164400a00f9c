package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/validate"
)

type Store interface {
	Summarize(ctx context.Context, rng Range) (Summary, error)
}

type Handler struct {
	Store Store

	now func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store, now: time.Now}
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	period := strings.TrimSpace(c.Query("period"))
	if period == "" {
		period = PeriodCurrent
	}

	errs := validate.Errors{}
	errs.OneOf("period", period, PeriodCurrent, PeriodPrevious, PeriodLast3)
	if !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid query", api.CodeValidation, errs)
	}

	s, err := h.Store.Summarize(c.UserContext(), PeriodRange(period, h.now()))
	if err != nil {
		return api.DBError(c, "could not compute dashboard summary", err)
	}
	return api.OK(c, s)
}

package fixedexpenses

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/validate"
)

type Store interface {
	List(ctx context.Context) ([]FixedExpense, error)
	Get(ctx context.Context, id int64) (*FixedExpense, error)
	Create(ctx context.Context, req CreateRequest) error
	Update(ctx context.Context, id int64, req CreateRequest) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Store Store

	// now is injectable so dueness tests are deterministic.
	now func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store, now: time.Now}
}

func (h *Handler) List(c *fiber.Ctx) error {
	rows, err := h.Store.List(c.UserContext())
	if err != nil {
		return api.DBError(c, "could not list fixed expenses", err)
	}
	return api.OK(c, rows)
}

// Upcoming returns the fixed expenses due within the next N days (default
// 7), nearest first.
func (h *Handler) Upcoming(c *fiber.Ctx) error {
	days := validate.CoerceInt(c.Query("days"), 7)

	rows, err := h.Store.List(c.UserContext())
	if err != nil {
		return api.DBError(c, "could not list fixed expenses", err)
	}

	now := h.now()
	out := make([]Upcoming, 0, len(rows))
	for _, fe := range rows {
		due := DaysUntilDue(fe.DueDay, now)
		if due <= days {
			out = append(out, Upcoming{FixedExpense: fe, DaysUntilDue: due})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysUntilDue < out[j].DaysUntilDue
	})
	return api.OK(c, out)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	row, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load fixed expense", err)
	}
	if row == nil {
		return api.NotFound(c, "fixed expense not found")
	}
	return api.OK(c, row)
}

func validateCreate(req CreateRequest) validate.Errors {
	errs := validate.Errors{}
	errs.Required("description", req.Description)
	errs.Amount("amount", req.Amount)
	errs.Required("category", req.Category)
	errs.IntRange("due_day", req.DueDay, 1, 31)
	return errs
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return api.Fail(c, fiber.StatusBadRequest, "invalid request body", api.CodeValidation, nil)
	}
	if errs := validateCreate(req); !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid fixed expense", api.CodeValidation, errs)
	}

	if err := h.Store.Create(c.UserContext(), req); err != nil {
		return api.DBError(c, "could not create fixed expense", err)
	}
	return api.Created(c, api.Message{Message: "fixed expense created"})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return api.Fail(c, fiber.StatusBadRequest, "invalid request body", api.CodeValidation, nil)
	}
	if errs := validateCreate(req); !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid fixed expense", api.CodeValidation, errs)
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load fixed expense", err)
	}
	if existing == nil {
		return api.NotFound(c, "fixed expense not found")
	}

	if err := h.Store.Update(c.UserContext(), id, req); err != nil {
		return api.DBError(c, "could not update fixed expense", err)
	}
	return api.OK(c, api.Message{Message: "fixed expense updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load fixed expense", err)
	}
	if existing == nil {
		return api.NotFound(c, "fixed expense not found")
	}

	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return api.DBError(c, "could not delete fixed expense", err)
	}
	return api.OK(c, api.Message{Message: "fixed expense deleted"})
}

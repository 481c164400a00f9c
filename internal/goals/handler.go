package goals

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/validate"
)

type Store interface {
	List(ctx context.Context) ([]Goal, error)
	Get(ctx context.Context, id int64) (*Goal, error)
	Create(ctx context.Context, req CreateRequest) error
	Update(ctx context.Context, id int64, req CreateRequest) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) List(c *fiber.Ctx) error {
	rows, err := h.Store.List(c.UserContext())
	if err != nil {
		return api.DBError(c, "could not list goals", err)
	}

	out := make([]WithProgress, len(rows))
	for i, g := range rows {
		out[i] = WithProgress{Goal: g, Progress: g.Progress()}
	}
	return api.OK(c, out)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	row, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load goal", err)
	}
	if row == nil {
		return api.NotFound(c, "goal not found")
	}
	return api.OK(c, row)
}

func validateCreate(req CreateRequest) validate.Errors {
	errs := validate.Errors{}
	errs.Required("name", req.Name)
	errs.Amount("target_amount", req.TargetAmount)
	errs.Amount("saved_amount", req.SavedAmount)
	errs.OptionalDate("deadline", req.Deadline)
	return errs
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return api.Fail(c, fiber.StatusBadRequest, "invalid request body", api.CodeValidation, nil)
	}
	if errs := validateCreate(req); !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid goal", api.CodeValidation, errs)
	}

	if err := h.Store.Create(c.UserContext(), req); err != nil {
		return api.DBError(c, "could not create goal", err)
	}
	return api.Created(c, api.Message{Message: "goal created"})
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
		return api.Fail(c, fiber.StatusBadRequest, "invalid goal", api.CodeValidation, errs)
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load goal", err)
	}
	if existing == nil {
		return api.NotFound(c, "goal not found")
	}

	if err := h.Store.Update(c.UserContext(), id, req); err != nil {
		return api.DBError(c, "could not update goal", err)
	}
	return api.OK(c, api.Message{Message: "goal updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load goal", err)
	}
	if existing == nil {
		return api.NotFound(c, "goal not found")
	}

	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return api.DBError(c, "could not delete goal", err)
	}
	return api.OK(c, api.Message{Message: "goal deleted"})
}

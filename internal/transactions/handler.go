package transactions

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/validate"
)

// Store is the persistence surface the handler depends on.
type Store interface {
	List(ctx context.Context, f Filters, limit, offset int) ([]Transaction, int64, error)
	Get(ctx context.Context, id int64) (*Transaction, error)
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
	f := Filters{
		Type:     strings.TrimSpace(c.Query("type")),
		Category: strings.TrimSpace(c.Query("category")),
		From:     strings.TrimSpace(c.Query("from")),
		To:       strings.TrimSpace(c.Query("to")),
	}

	errs := validate.Errors{}
	if f.Type != "" {
		errs.OneOf("type", f.Type, TypeIncome, TypeExpense)
	}
	if f.From != "" {
		errs.Date("from", f.From)
	}
	if f.To != "" {
		errs.Date("to", f.To)
	}
	if !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid query", api.CodeValidation, errs)
	}

	p := api.ClampPagination(
		validate.CoerceInt(c.Query("page"), 1),
		validate.CoerceInt(c.Query("limit"), api.DefaultLimit),
	)

	items, total, err := h.Store.List(c.UserContext(), f, p.Limit, p.Offset)
	if err != nil {
		return api.DBError(c, "could not list transactions", err)
	}
	return api.OK(c, ListResponse{Items: items, Total: total, Page: p.Page, Limit: p.Limit})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	row, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load transaction", err)
	}
	if row == nil {
		return api.NotFound(c, "transaction not found")
	}
	return api.OK(c, row)
}

func validateCreate(req CreateRequest) validate.Errors {
	errs := validate.Errors{}
	errs.Required("description", req.Description)
	errs.Amount("amount", req.Amount)
	errs.Required("category", req.Category)
	errs.OneOf("type", req.Type, TypeIncome, TypeExpense)
	errs.Date("date", req.Date)
	return errs
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return api.Fail(c, fiber.StatusBadRequest, "invalid request body", api.CodeValidation, nil)
	}
	if errs := validateCreate(req); !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid transaction", api.CodeValidation, errs)
	}

	if err := h.Store.Create(c.UserContext(), req); err != nil {
		return api.DBError(c, "could not create transaction", err)
	}
	return api.Created(c, api.Message{Message: "transaction created"})
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
		return api.Fail(c, fiber.StatusBadRequest, "invalid transaction", api.CodeValidation, errs)
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load transaction", err)
	}
	if existing == nil {
		return api.NotFound(c, "transaction not found")
	}

	if err := h.Store.Update(c.UserContext(), id, req); err != nil {
		return api.DBError(c, "could not update transaction", err)
	}
	return api.OK(c, api.Message{Message: "transaction updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		return api.DBError(c, "could not load transaction", err)
	}
	if existing == nil {
		return api.NotFound(c, "transaction not found")
	}

	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		return api.DBError(c, "could not delete transaction", err)
	}
	return api.OK(c, api.Message{Message: "transaction deleted"})
}

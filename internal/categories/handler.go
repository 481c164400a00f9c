package categories

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/validate"
)

type Store interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, req CreateRequest) error
	Update(ctx context.Context, id int64, req CreateRequest) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Store Store

	// missingTable classifies repo errors; swappable in tests.
	missingTable func(error) bool
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store, missingTable: IsMissingTable}
}

func migrationRequired(c *fiber.Ctx) error {
	return api.Fail(c, fiber.StatusNotImplemented, "categories require a migration", api.CodeMigrationRequired, nil)
}

func (h *Handler) List(c *fiber.Ctx) error {
	rows, err := h.Store.List(c.UserContext())
	if err != nil {
		if h.missingTable(err) {
			return api.OK(c, fallbackList())
		}
		return api.DBError(c, "could not list categories", err)
	}
	return api.OK(c, rows)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	row, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		if h.missingTable(err) {
			for _, fc := range fallbackList() {
				if fc.ID == id {
					return api.OK(c, fc)
				}
			}
			return api.NotFound(c, "category not found")
		}
		return api.DBError(c, "could not load category", err)
	}
	if row == nil {
		return api.NotFound(c, "category not found")
	}
	return api.OK(c, row)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return api.Fail(c, fiber.StatusBadRequest, "invalid request body", api.CodeValidation, nil)
	}
	errs := validate.Errors{}
	errs.Required("name", req.Name)
	if !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid category", api.CodeValidation, errs)
	}

	if err := h.Store.Create(c.UserContext(), req); err != nil {
		if h.missingTable(err) {
			return migrationRequired(c)
		}
		return api.DBError(c, "could not create category", err)
	}
	return api.Created(c, api.Message{Message: "category created"})
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
	errs := validate.Errors{}
	errs.Required("name", req.Name)
	if !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid category", api.CodeValidation, errs)
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		if h.missingTable(err) {
			return migrationRequired(c)
		}
		return api.DBError(c, "could not load category", err)
	}
	if existing == nil {
		return api.NotFound(c, "category not found")
	}

	if err := h.Store.Update(c.UserContext(), id, req); err != nil {
		if h.missingTable(err) {
			return migrationRequired(c)
		}
		return api.DBError(c, "could not update category", err)
	}
	return api.OK(c, api.Message{Message: "category updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := validate.CoerceID(c.Params("id"))
	if !ok {
		return api.Fail(c, fiber.StatusBadRequest, "invalid id", api.CodeValidation, validate.Errors{"id": "must be a positive integer"})
	}

	existing, err := h.Store.Get(c.UserContext(), id)
	if err != nil {
		if h.missingTable(err) {
			return migrationRequired(c)
		}
		return api.DBError(c, "could not load category", err)
	}
	if existing == nil {
		return api.NotFound(c, "category not found")
	}

	if err := h.Store.Delete(c.UserContext(), id); err != nil {
		if h.missingTable(err) {
			return migrationRequired(c)
		}
		return api.DBError(c, "could not delete category", err)
	}
	return api.OK(c, api.Message{Message: "category deleted"})
}

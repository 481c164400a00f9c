package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/config"
	"github.com/LorenzoMarty/FinLovi/internal/validate"
)

type Handler struct {
	Cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{Cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken *string `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ensureConfigured short-circuits the session endpoints when the feature is
// off or missing its secrets. Returns false when a response was written.
func (h *Handler) ensureConfigured(c *fiber.Ctx) (bool, error) {
	if !h.Cfg.AuthEnabled {
		return false, api.Fail(c, fiber.StatusNotImplemented, "authentication is disabled", api.CodeAuthDisabled, nil)
	}
	if !h.Cfg.AuthConfigured() {
		return false, api.Fail(c, fiber.StatusNotImplemented, "authentication is not fully configured", api.CodeAuthConfig, nil)
	}
	return true, nil
}

func (h *Handler) Login(c *fiber.Ctx) error {
	if ok, err := h.ensureConfigured(c); !ok {
		return err
	}

	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return api.Fail(c, fiber.StatusBadRequest, "invalid request body", api.CodeValidation, nil)
	}

	errs := validate.Errors{}
	errs.Email("email", body.Email)
	errs.MinLen("password", body.Password, 4)
	if !errs.Ok() {
		return api.Fail(c, fiber.StatusBadRequest, "invalid credentials payload", api.CodeValidation, errs)
	}

	if !h.credentialsMatch(body.Email, body.Password) {
		return api.Fail(c, fiber.StatusUnauthorized, "invalid credentials", api.CodeUnauthorized, nil)
	}

	access, err := IssueToken([]byte(h.Cfg.JWTSecret), body.Email, UseAccess, AccessTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not sign token")
	}

	resp := loginResponse{AccessToken: access}
	if h.Cfg.JWTRefreshSecret != "" {
		refresh, err := IssueToken([]byte(h.Cfg.JWTRefreshSecret), body.Email, UseRefresh, RefreshTTL)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not sign token")
		}
		resp.RefreshToken = &refresh
	}
	return api.OK(c, resp)
}

// credentialsMatch compares against the single configured account. A
// configured bcrypt hash takes precedence over the plain password; the
// plain comparison is constant-time.
func (h *Handler) credentialsMatch(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(h.Cfg.AuthEmail)) == 1

	var passOK bool
	if h.Cfg.AuthPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(h.Cfg.AuthPasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.Cfg.AuthPassword)) == 1
	}
	return emailOK && passOK
}

func (h *Handler) Refresh(c *fiber.Ctx) error {
	if ok, err := h.ensureConfigured(c); !ok {
		return err
	}
	if h.Cfg.JWTRefreshSecret == "" {
		return api.Fail(c, fiber.StatusNotImplemented, "refresh tokens are disabled", api.CodeRefreshDisabled, nil)
	}

	var body refreshRequest
	if err := c.BodyParser(&body); err != nil || body.RefreshToken == "" {
		return api.Fail(c, fiber.StatusBadRequest, "refreshToken is required", api.CodeValidation, nil)
	}

	email, err := VerifyToken([]byte(h.Cfg.JWTRefreshSecret), body.RefreshToken, UseRefresh)
	if err != nil {
		return api.Fail(c, fiber.StatusUnauthorized, "invalid refresh token", api.CodeUnauthorized, nil)
	}

	access, err := IssueToken([]byte(h.Cfg.JWTSecret), email, UseAccess, AccessTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not sign token")
	}
	return api.OK(c, fiber.Map{"accessToken": access})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if !h.Cfg.AuthEnabled {
		return api.OK(c, api.Message{Message: "logout not required"})
	}
	// Tokens are stateless; the client discards them.
	return api.OK(c, api.Message{Message: "logged out"})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	if !h.Cfg.AuthEnabled {
		return api.OK(c, fiber.Map{"enabled": false})
	}
	return api.OK(c, fiber.Map{"enabled": true, "email": h.Cfg.AuthEmail})
}

package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/config"
)

func enabledConfig() *config.Config {
	return &config.Config{
		AuthEnabled:      true,
		AuthEmail:        "owner@example.com",
		AuthPassword:     "hunter22",
		JWTSecret:        "access-secret",
		JWTRefreshSecret: "refresh-secret",
	}
}

func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	h := NewHandler(cfg)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/refresh", h.Refresh)
	app.Post("/api/auth/logout", h.Logout)
	app.Get("/api/auth/me", h.Me)

	guarded := app.Group("/api", Guard(cfg))
	guarded.Get("/ping", func(c *fiber.Ctx) error {
		return api.OK(c, api.Message{Message: "pong"})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	return resp, parsed
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func TestLoginDisabled(t *testing.T) {
	app := newApp(&config.Config{AuthEnabled: false})

	resp, body := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "hunter22",
	})
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", resp.StatusCode)
	}
	if errorCode(body) != "AUTH_DISABLED" {
		t.Errorf("code = %q", errorCode(body))
	}
}

func TestLoginMissingSecrets(t *testing.T) {
	app := newApp(&config.Config{AuthEnabled: true, AuthEmail: "owner@example.com"})

	resp, body := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "hunter22",
	})
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", resp.StatusCode)
	}
	if errorCode(body) != "AUTH_CONFIG" {
		t.Errorf("code = %q", errorCode(body))
	}
}

func TestLoginSuccess(t *testing.T) {
	app := newApp(enabledConfig())

	resp, body := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["accessToken"] == "" || data["accessToken"] == nil {
		t.Error("accessToken missing")
	}
	if data["refreshToken"] == nil {
		t.Error("refreshToken missing with refresh secret configured")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newApp(enabledConfig())

	resp, body := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "wrong-pass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if errorCode(body) != "UNAUTHORIZED" {
		t.Errorf("code = %q", errorCode(body))
	}
}

func TestLoginInvalidPayload(t *testing.T) {
	app := newApp(enabledConfig())

	resp, body := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "not-an-email", "password": "x",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	details := body["error"].(map[string]any)["details"].(map[string]any)
	if details["email"] == nil || details["password"] == nil {
		t.Errorf("details = %v", details)
	}
}

func TestRefreshFlow(t *testing.T) {
	cfg := enabledConfig()
	app := newApp(cfg)

	_, login := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "hunter22",
	})
	refresh := login["data"].(map[string]any)["refreshToken"].(string)

	resp, body := postJSON(t, app, "/api/auth/refresh", map[string]string{"refreshToken": refresh})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %v", resp.StatusCode, body)
	}
	access := body["data"].(map[string]any)["accessToken"].(string)
	if access == "" {
		t.Fatal("no access token")
	}

	// The refreshed token must pass the guard like a login token.
	req := httptest.NewRequest("GET", "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	pingResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if pingResp.StatusCode != http.StatusOK {
		t.Errorf("guarded status = %d", pingResp.StatusCode)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	cfg := enabledConfig()
	app := newApp(cfg)

	_, login := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "hunter22",
	})
	access := login["data"].(map[string]any)["accessToken"].(string)

	resp, _ := postJSON(t, app, "/api/auth/refresh", map[string]string{"refreshToken": access})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRefreshDisabled(t *testing.T) {
	cfg := enabledConfig()
	cfg.JWTRefreshSecret = ""
	app := newApp(cfg)

	resp, body := postJSON(t, app, "/api/auth/refresh", map[string]string{"refreshToken": "anything"})
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", resp.StatusCode)
	}
	if errorCode(body) != "REFRESH_DISABLED" {
		t.Errorf("code = %q", errorCode(body))
	}
}

func TestGuardDisabledPassesThrough(t *testing.T) {
	app := newApp(&config.Config{AuthEnabled: false})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 without a bearer header", resp.StatusCode)
	}
}

func TestGuardRejectsMissingAndBadTokens(t *testing.T) {
	app := newApp(enabledConfig())

	for _, header := range []string{"", "Bearer", "Bearer bogus.token.here", "Basic abc"} {
		req := httptest.NewRequest("GET", "/api/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, resp.StatusCode)
		}
	}
}

func TestMe(t *testing.T) {
	app := newApp(enabledConfig())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/auth/me", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data := body["data"].(map[string]any)
	if data["enabled"] != true || data["email"] != "owner@example.com" {
		t.Errorf("data = %v", data)
	}
}

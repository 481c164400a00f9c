package goals

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type stubStore struct {
	rows    []Goal
	got     *Goal
	err     error
	updated bool
	deleted bool
}

func (s *stubStore) List(context.Context) ([]Goal, error)      { return s.rows, s.err }
func (s *stubStore) Get(context.Context, int64) (*Goal, error) { return s.got, s.err }
func (s *stubStore) Create(context.Context, CreateRequest) error {
	return s.err
}
func (s *stubStore) Update(context.Context, int64, CreateRequest) error {
	s.updated = true
	return s.err
}
func (s *stubStore) Delete(context.Context, int64) error {
	s.deleted = true
	return s.err
}

func newApp(store Store) *fiber.App {
	app := fiber.New()
	h := NewHandler(store)
	app.Get("/api/goals", h.List)
	app.Get("/api/goals/:id", h.Get)
	app.Post("/api/goals", h.Create)
	app.Put("/api/goals/:id", h.Update)
	app.Delete("/api/goals/:id", h.Delete)
	return app
}

func do(t *testing.T, app *fiber.App, method, target string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return resp, parsed
}

func TestListAddsProgress(t *testing.T) {
	deadline := "2026-01-01"
	app := newApp(&stubStore{rows: []Goal{
		{ID: 1, Name: "Notebook", TargetAmount: decimal.NewFromInt(3000), SavedAmount: decimal.NewFromInt(1500), Deadline: &deadline},
		{ID: 2, Name: "Viagem", TargetAmount: decimal.NewFromInt(0), SavedAmount: decimal.NewFromInt(500)},
	}})

	resp, body := do(t, app, "GET", "/api/goals", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	data := body["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("rows = %d", len(data))
	}
	first := data[0].(map[string]any)
	if first["progress"].(float64) != 50 {
		t.Errorf("progress = %v, want 50", first["progress"])
	}
	second := data[1].(map[string]any)
	if second["progress"].(float64) != 0 {
		t.Errorf("zero-target progress = %v, want 0", second["progress"])
	}
}

func TestGetMissing(t *testing.T) {
	app := newApp(&stubStore{})

	resp, body := do(t, app, "GET", "/api/goals/7", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if body["error"].(map[string]any)["code"] != "NOT_FOUND" {
		t.Errorf("body = %v", body)
	}
}

func TestCreateValidatesFields(t *testing.T) {
	app := newApp(&stubStore{})

	resp, body := do(t, app, "POST", "/api/goals", map[string]any{
		"name":          "",
		"target_amount": -1,
		"deadline":      "soon",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	details := body["error"].(map[string]any)["details"].(map[string]any)
	for _, field := range []string{"name", "target_amount", "deadline"} {
		if details[field] == nil {
			t.Errorf("missing detail for %q: %v", field, details)
		}
	}
}

func TestUpdateMissingSkipsMutation(t *testing.T) {
	store := &stubStore{}
	app := newApp(store)

	resp, _ := do(t, app, "PUT", "/api/goals/9", map[string]any{
		"name": "Carro", "target_amount": 50000, "saved_amount": 0,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if store.updated {
		t.Error("update issued for a missing id")
	}
}

func TestDeleteMissingSkipsMutation(t *testing.T) {
	store := &stubStore{}
	app := newApp(store)

	resp, _ := do(t, app, "DELETE", "/api/goals/9", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if store.deleted {
		t.Error("delete issued for a missing id")
	}
}

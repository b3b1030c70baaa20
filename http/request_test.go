package http_test

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	gohttp "github.com/km-arc/rule-validator/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newJSONRequest(t *testing.T, body string) *gohttp.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return gohttp.NewRequest(req)
}

// ── Bind ─────────────────────────────────────────────────────────────────────

func TestRequest_Bind(t *testing.T) {
	type body struct {
		Rule map[string]any `json:"rule"`
		Data any            `json:"data"`
	}

	req := newJSONRequest(t, `{"rule":{"field":"age"},"data":"abc"}`)

	var b body
	if err := req.Bind(&b); err != nil {
		t.Fatalf("Bind error: %v", err)
	}
	if b.Rule["field"] != "age" {
		t.Errorf("rule.field: got %v want age", b.Rule["field"])
	}
	if b.Data != "abc" {
		t.Errorf("data: got %v want abc", b.Data)
	}
}

func TestRequest_Bind_EmptyBody(t *testing.T) {
	req := newJSONRequest(t, "")

	var v any
	if err := req.Bind(&v); err == nil {
		t.Error("expected error for empty body, got nil")
	}
}

// ── BindAny ──────────────────────────────────────────────────────────────────

func TestRequest_BindAny_PreservesShape(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{"object", `{"a":1}`, map[string]any{"a": float64(1)}},
		{"array", `["a","b"]`, []any{"a", "b"}},
		{"string", `"hello"`, "hello"},
		{"number", `7`, float64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newJSONRequest(t, tt.body).BindAny()
			if err != nil {
				t.Fatalf("BindAny error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v want %#v", got, tt.want)
			}
		})
	}
}

func TestRequest_BindAny_MalformedJSON(t *testing.T) {
	if _, err := newJSONRequest(t, `'`).BindAny(); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}

// ── metadata ─────────────────────────────────────────────────────────────────

func TestRequest_IsJSON(t *testing.T) {
	if !newJSONRequest(t, `{}`).IsJSON() {
		t.Error("Content-Type application/json should report IsJSON")
	}

	raw := httptest.NewRequest(http.MethodGet, "/", nil)
	raw.Header.Set("Accept", "application/json")
	if !gohttp.NewRequest(raw).IsJSON() {
		t.Error("Accept application/json should report IsJSON")
	}

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	if gohttp.NewRequest(plain).IsJSON() {
		t.Error("request without JSON headers should not report IsJSON")
	}
}

func TestRequest_MethodAndPath(t *testing.T) {
	raw := httptest.NewRequest(http.MethodPost, "/validate-rule", nil)
	req := gohttp.NewRequest(raw)

	if req.Method() != http.MethodPost {
		t.Errorf("Method: got %q", req.Method())
	}
	if req.Path() != "/validate-rule" {
		t.Errorf("Path: got %q", req.Path())
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const massingRequest = `{
	"parcel": {
		"area": 400,
		"use_zone": "제2종일반주거지역"
	},
	"building": {
		"stories": 5,
		"story_height": 3,
		"setbacks": {"front": 3, "left": 2, "right": 2},
		"auto_stepped": true
	}
}`

func testServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	s := New(t.TempDir(), 0, nil)
	return s, s.router()
}

func TestHandleMassing(t *testing.T) {
	_, h := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/massing", strings.NewReader(massingRequest))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Massing struct {
			Floors  []map[string]any `json:"floors"`
			Stepped bool             `json:"stepped"`
		} `json:"massing"`
		Compliance map[string]any `json:"compliance"`
		Scene      struct {
			Entities []map[string]any `json:"entities"`
		} `json:"scene"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Massing.Floors) != 5 {
		t.Errorf("expected 5 floors, got %d", len(resp.Massing.Floors))
	}
	if !resp.Massing.Stepped {
		t.Error("expected stepped massing")
	}
	if len(resp.Scene.Entities) != 5 {
		t.Errorf("expected 5 scene entities, got %d", len(resp.Scene.Entities))
	}
	if _, ok := resp.Compliance["coverage_ratio"]; !ok {
		t.Error("missing compliance payload")
	}
}

func TestHandleMassingMemoizes(t *testing.T) {
	s, h := testServer(t)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/massing", strings.NewReader(massingRequest))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	if len(s.memo) != 1 {
		t.Errorf("expected one memoized response, got %d", len(s.memo))
	}
}

func TestHandleMassingInvalidProject(t *testing.T) {
	_, h := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/massing",
		strings.NewReader(`{"parcel": {}, "building": {"stories": 1, "story_height": 3}}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp struct {
		Report struct {
			Valid bool `json:"valid"`
		} `json:"report"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Report.Valid {
		t.Error("expected invalid report for a parcel without polygon or area")
	}
}

func TestHandleMassingBadJSON(t *testing.T) {
	_, h := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/massing", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleZoning(t *testing.T) {
	_, h := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/zoning/제2종일반주거지역", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp struct {
		Limits struct {
			MaxCoverage float64 `json:"max_coverage"`
			MaxFAR      float64 `json:"max_far"`
		} `json:"limits"`
		DaylightApplies bool `json:"daylight_applies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Limits.MaxCoverage != 60 || resp.Limits.MaxFAR != 250 {
		t.Errorf("wrong limits: %+v", resp.Limits)
	}
	if !resp.DaylightApplies {
		t.Error("expected daylight rule to apply")
	}
}

func TestHandleSetback(t *testing.T) {
	_, h := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/setback?height=12&zone=제2종일반주거지역", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp struct {
		Setback float64 `json:"setback"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Setback != 6 {
		t.Errorf("expected setback 6, got %f", resp.Setback)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/setback?height=abc", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad height, got %d", w.Code)
	}
}

func TestHandleProject(t *testing.T) {
	dir := t.TempDir()
	content := `
parcel:
  area: 300
  use_zone: 제1종일반주거지역
building:
  stories: 2
`
	if err := os.WriteFile(filepath.Join(dir, "parcel.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(dir, 0, nil)
	h := s.router()

	req := httptest.NewRequest(http.MethodGet, "/api/project", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	s = New(t.TempDir(), 0, nil)
	w = httptest.NewRecorder()
	s.router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/project", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a project file, got %d", w.Code)
	}
}

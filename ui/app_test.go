package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"statviz/app"
	"statviz/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Demo: config.DemoConfig{
			SampleCount:   20,
			Separation:    4,
			Spread:        1.5,
			ConfusionSum:  200,
			MaxDegree:     10,
			FFTSize:       64,
			SamplingRate:  64,
			DemoPanelSeed: 42,
		},
	}
	engine, err := app.Bootstrap(cfg)
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return NewApp(engine, cfg)
}

func TestApp_Healthz(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
}

func TestApp_RegressionEndpoint(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/regression?degree=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res app.RegressionResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res.InsufficientData {
		t.Error("seeded store should have enough points for degree 2")
	}
	if res.Model == nil || len(res.Model.Coefficients) != 3 {
		t.Errorf("expected 3 coefficients for degree 2, got %+v", res.Model)
	}
}

func TestApp_ClassifierEndpointValidation(t *testing.T) {
	a := newTestApp(t)

	body, _ := json.Marshal(app.ClassifierRequest{Seed: 1, SampleCount: 1, Separation: 2, Spread: 1})
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classifier", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400 for sample count below minimum", rec.Code)
	}
}

func TestApp_ConfusionAdjustReject(t *testing.T) {
	a := newTestApp(t)

	req := map[string]interface{}{
		"counts":    map[string]int{"tp": 70, "fp": 0, "tn": 0, "fn": 30},
		"field":     "tp",
		"new_value": 100,
		"locked":    []string{"fn"},
		"total":     100,
	}
	body, _ := json.Marshal(req)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/confusion/adjust", bytes.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422 for unsatisfiable adjustment: %s", rec.Code, rec.Body.String())
	}
}

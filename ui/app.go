package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"statviz/app"
	"statviz/internal/config"
)

// App is the headless chi-backed variant of the demo API, used by cmd/api
// when no interactive page is needed (e.g. driving the panels from notebooks
// or external chart clients).
type App struct {
	router *chi.Mux
	engine *app.Engine
	cfg    *config.Config
}

// NewApp creates the headless API application.
func NewApp(engine *app.Engine, cfg *config.Config) *App {
	a := &App{
		router: chi.NewRouter(),
		engine: engine,
		cfg:    cfg,
	}
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.routes()
	return a
}

func (a *App) routes() {
	a.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/panels", a.handlePanels)
		r.Post("/classifier", a.handleClassifier)
		r.Post("/confusion", a.handleConfusion)
		r.Post("/confusion/adjust", a.handleConfusionAdjust)
		r.Post("/spectrum", a.handleSpectrum)
		r.Get("/regression", a.handleRegression)
	})
}

// Handler exposes the router for serving and for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// ListenAndServe starts the API on the configured port.
func (a *App) ListenAndServe() error {
	return http.ListenAndServe(":"+a.cfg.Server.Port, a.router)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), newErrorBody(err))
}

func (a *App) handlePanels(w http.ResponseWriter, r *http.Request) {
	panels, err := a.engine.RefreshAll(r.Context(), a.cfg.Demo)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, panels)
}

func (a *App) handleClassifier(w http.ResponseWriter, r *http.Request) {
	var req app.ClassifierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := a.engine.Classifier.Run(r.Context(), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *App) handleConfusion(w http.ResponseWriter, r *http.Request) {
	var req app.ConfusionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := a.engine.Confusion.Run(r.Context(), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *App) handleConfusionAdjust(w http.ResponseWriter, r *http.Request) {
	var req app.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	counts, err := a.engine.Confusion.Adjust(r.Context(), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (a *App) handleSpectrum(w http.ResponseWriter, r *http.Request) {
	var req app.SpectrumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := a.engine.Spectrum.Run(r.Context(), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *App) handleRegression(w http.ResponseWriter, r *http.Request) {
	degree := 2
	if d := r.URL.Query().Get("degree"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil {
			degree = parsed
		}
	}
	res, err := a.engine.Regression.Recompute(r.Context(), degree)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

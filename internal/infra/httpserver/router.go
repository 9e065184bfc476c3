package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/sgaglani/ethiscan/internal/application/analysis"
	domain "github.com/sgaglani/ethiscan/internal/domain/analysis"
	"github.com/sgaglani/ethiscan/internal/middleware"
)

type Router struct {
	svc *appanalysis.Service
}

// NewRouter wires the HTTP surface. CORS is open to the configured origins
// so the browser frontend can call the API directly.
func NewRouter(svc *appanalysis.Service, health http.Handler, allowedOrigins []string) http.Handler {
	r := &Router{svc: svc}
	mux := chi.NewRouter()

	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	mux.Get("/status", r.handleStatus)
	mux.Post("/analyze", r.handleAnalyze)
	mux.Get("/analyses", r.wrap(r.handleAnalysesList))
	mux.Get("/metrics", middleware.MetricsHandler)
	if health != nil {
		mux.Method(http.MethodGet, "/healthz", health)
	}

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// GET /status
func (r *Router) handleStatus(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API is running!"})
}

// POST /analyze
// Body: {"url": "<product page>"}
// 400 on a missing url, 500 when extraction fails, otherwise 200 with the
// analyzer's record as-is. An analysis-stage fault still returns 200 with
// an Error-keyed body; clients discriminate on that key, not the status.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.URL == "" {
		writeJSON(w, http.StatusBadRequest, domain.ErrorRecord("Missing URL parameter"))
		return
	}

	log.Printf("received URL: %s", body.URL)
	middleware.IncrementAnalyses()

	record, err := r.svc.Analyze(req.Context(), body.URL)
	if err != nil {
		if !errors.Is(err, domain.ErrScrapeFailed) {
			log.Printf("analyze pipeline error: url=%s err=%v", body.URL, err)
		}
		middleware.IncrementScrapeFailures()
		writeJSON(w, http.StatusInternalServerError, domain.ErrorRecord("Scraping failed"))
		return
	}
	if record.IsError() {
		middleware.IncrementAnalysisErrors()
	}

	writeJSON(w, http.StatusOK, record)
}

// GET /analyses?limit=20
func (r *Router) handleAnalysesList(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	list, err := r.svc.Latest(req.Context(), limit)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, list)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode error: %v", err)
	}
}

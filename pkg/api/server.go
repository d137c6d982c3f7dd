// Package api exposes the prioritisation engine over HTTP. The server is
// stateless: every request carries its own scores and weights, and each
// (dimensions, weights) pair is evaluated independently, so unlimited
// parallel requests are safe.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dayooguns/tompri/pkg/catalog"
	"github.com/dayooguns/tompri/pkg/engine"
	"github.com/dayooguns/tompri/pkg/interfaces"
	"github.com/dayooguns/tompri/pkg/store"
)

// Server wires the engine and catalog into an HTTP handler.
type Server struct {
	engine *engine.Engine
	log    *slog.Logger
}

// NewServer creates an API server around the given engine.
func NewServer(eng *engine.Engine, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{engine: eng, log: log}
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/rank", s.handleRank)
		r.Post("/weights", s.handleWeights)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// catalogResponse bundles the reference data a client needs to render the
// assessment: the dimension catalog and the criterion documentation.
type catalogResponse struct {
	Dimensions []interfaces.Dimension    `json:"dimensions"`
	Criteria   []catalog.CriterionDetail `json:"criteria"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Dimensions: catalog.Dimensions(),
		Criteria:   catalog.Criteria(),
	})
}

// scoreInput is one dimension's raw scores in a rank request. Either ID or
// Name identifies the catalog entry; ID wins when both are set.
type scoreInput struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name,omitempty"`
	Maturity       float64 `json:"maturity"`
	BusinessImpact int     `json:"business_impact"`
	Feasibility    int     `json:"feasibility"`
	Political      int     `json:"political"`
	Foundation     int     `json:"foundation"`
}

type rankRequest struct {
	Scores  []scoreInput        `json:"scores"`
	Weights *interfaces.Weights `json:"weights,omitempty"`
}

type rankResponse struct {
	Ranking *interfaces.Ranking `json:"ranking"`
	Skipped []string            `json:"skipped,omitempty"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	weights := engine.DefaultWeights()
	if req.Weights != nil {
		if err := engine.ValidateWeights(*req.Weights); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		weights = *req.Weights
	}

	// A per-request store clamps the inputs to their domains; requests never
	// share state.
	st := store.New(catalog.Dimensions())
	var skipped []string
	for _, in := range req.Scores {
		dim, ok := s.resolve(in)
		if !ok {
			s.log.Warn("skipping unknown dimension in rank request", "id", in.ID, "name", in.Name)
			skipped = append(skipped, pick(in.Name, in.ID))
			continue
		}
		_ = st.Apply(interfaces.ScoredDimension{
			Dimension:      dim,
			CurrentScore:   in.Maturity,
			BusinessImpact: in.BusinessImpact,
			Feasibility:    in.Feasibility,
			Political:      in.Political,
			Foundation:     in.Foundation,
		})
	}

	ranking := s.engine.Rank(st.Snapshot(), weights)
	writeJSON(w, http.StatusOK, rankResponse{Ranking: ranking, Skipped: skipped})
}

func (s *Server) resolve(in scoreInput) (interfaces.Dimension, bool) {
	if in.ID != "" {
		return catalog.ByID(in.ID)
	}
	return catalog.ByName(in.Name)
}

// weightEditRequest applies one SetWeight edit to a weights value.
type weightEditRequest struct {
	Weights   interfaces.Weights   `json:"weights"`
	Criterion interfaces.Criterion `json:"criterion"`
	Value     int                  `json:"value"`
}

type weightEditResponse struct {
	Weights interfaces.Weights `json:"weights"`
	Applied bool               `json:"applied"`
}

func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	var req weightEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := engine.ValidateWeights(req.Weights); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Rejected edits return the original weights with applied=false; weight
	// edits never fail loudly.
	next, ok := engine.SetWeight(req.Weights, req.Criterion, req.Value)
	writeJSON(w, http.StatusOK, weightEditResponse{Weights: next, Applied: ok})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

package scenario

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aikawa/riskcore/internal/domain"
	"github.com/aikawa/riskcore/internal/metrics"
)

// Archiver persists portfolio-level scenario results. Satisfied by the
// history repository.
type Archiver interface {
	SaveStressResult(result PortfolioResult) error
}

// Handler handles scenario stress-test HTTP requests
type Handler struct {
	engine   *Engine
	archiver Archiver
	metrics  *metrics.Registry
	log      zerolog.Logger
}

// NewHandler creates a new scenario handler
func NewHandler(engine *Engine, archiver Archiver, m *metrics.Registry, log zerolog.Logger) *Handler {
	return &Handler{
		engine:   engine,
		archiver: archiver,
		metrics:  m,
		log:      log.With().Str("handler", "scenario").Logger(),
	}
}

// HandleListScenarios returns the scenario catalog
func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": h.engine.Catalog().Definitions(),
	})
}

type stressRequest struct {
	Scenario      string              `json:"scenario"`
	Holdings      []domain.Holding    `json:"holdings"`
	Weights       []float64           `json:"weights,omitempty"`
	Sensitivities []*SensitivityInput `json:"sensitivities,omitempty"`
}

// HandleStressTest runs a named scenario against the portfolio and
// archives the portfolio-level outcome
func (h *Handler) HandleStressTest(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req stressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.Observe("scenario", "error", time.Since(started))
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	def, err := h.engine.Resolve(req.Scenario)
	if err != nil {
		h.metrics.Observe("scenario", "not_found", time.Since(started))
		if errors.Is(err, ErrScenarioNotFound) {
			h.writeError(w, http.StatusNotFound, "Unknown scenario: "+req.Scenario)
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	weights := req.Weights
	if len(weights) == 0 {
		weights = domain.Weights(req.Holdings)
	}

	result := h.engine.AnalyzePortfolio(req.Holdings, req.Sensitivities, weights, def)

	if h.archiver != nil {
		if err := h.archiver.SaveStressResult(result); err != nil {
			h.log.Error().Err(err).Str("scenario", def.Key).Msg("Failed to archive stress result")
		}
	}

	h.metrics.Observe("scenario", "ok", time.Since(started))
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

package concentration

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aikawa/riskcore/internal/domain"
	"github.com/aikawa/riskcore/internal/metrics"
)

// Handler handles concentration HTTP requests
type Handler struct {
	analyzer *Analyzer
	metrics  *metrics.Registry
	log      zerolog.Logger
}

// NewHandler creates a new concentration handler
func NewHandler(analyzer *Analyzer, m *metrics.Registry, log zerolog.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		metrics:  m,
		log:      log.With().Str("handler", "concentration").Logger(),
	}
}

type analyzeRequest struct {
	Holdings []domain.Holding `json:"holdings"`
	Weights  []float64        `json:"weights,omitempty"`
}

// HandleAnalyze computes the portfolio's concentration profile
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.Observe("concentration", "error", time.Since(started))
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	weights := req.Weights
	if len(weights) == 0 {
		weights = domain.Weights(req.Holdings)
	}

	result := h.analyzer.Analyze(req.Holdings, weights)
	h.metrics.Observe("concentration", "ok", time.Since(started))

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

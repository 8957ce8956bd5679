package correlation

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aikawa/riskcore/internal/domain"
	"github.com/aikawa/riskcore/internal/metrics"
)

// DefaultPairThreshold flags pairs at |r| >= 0.70 unless the request
// overrides it.
const DefaultPairThreshold = 0.70

// Archiver persists portfolio-level VaR results. Satisfied by the
// history repository.
type Archiver interface {
	SaveVaRResult(result VaRResult) error
}

// Handler handles correlation, factor and VaR HTTP requests
type Handler struct {
	archiver Archiver
	metrics  *metrics.Registry
	log      zerolog.Logger
}

// NewHandler creates a new correlation handler
func NewHandler(archiver Archiver, m *metrics.Registry, log zerolog.Logger) *Handler {
	return &Handler{
		archiver: archiver,
		metrics:  m,
		log:      log.With().Str("handler", "correlation").Logger(),
	}
}

type matrixRequest struct {
	Holdings  []domain.Holding `json:"holdings"`
	Threshold *float64         `json:"threshold,omitempty"`
}

type matrixResponse struct {
	Matrix MatrixResult `json:"matrix_result"`
	Pairs  []Pair       `json:"high_correlation_pairs"`
}

// HandleMatrix computes the correlation matrix and flags high-correlation
// pairs
func (h *Handler) HandleMatrix(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req matrixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.Observe("correlation", "error", time.Since(started))
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	symbols := make([]string, len(req.Holdings))
	histories := make([][]float64, len(req.Holdings))
	for i, holding := range req.Holdings {
		symbols[i] = holding.Symbol
		histories[i] = holding.PriceHistory
	}

	result := ComputeMatrix(symbols, histories)
	threshold := domain.SafeFloat(req.Threshold, DefaultPairThreshold)
	pairs := FindHighCorrelationPairs(result, threshold)

	h.metrics.Observe("correlation", "ok", time.Since(started))
	h.writeJSON(w, http.StatusOK, matrixResponse{Matrix: result, Pairs: pairs})
}

type factorRequest struct {
	Prices  []float64      `json:"prices"`
	Factors []FactorSeries `json:"factors"`
}

// HandleFactors decomposes a return series against the macro factor set
func (h *Handler) HandleFactors(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req factorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.Observe("factors", "error", time.Since(started))
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := DecomposeReturns(req.Prices, req.Factors)

	h.metrics.Observe("factors", "ok", time.Since(started))
	h.writeJSON(w, http.StatusOK, result)
}

type varRequest struct {
	Holdings         []domain.Holding `json:"holdings"`
	Weights          []float64        `json:"weights,omitempty"`
	PortfolioValue   float64          `json:"portfolio_value,omitempty"`
	ConfidenceLevels []float64        `json:"confidence_levels,omitempty"`
}

// HandleVaR computes historical value-at-risk and archives the result
func (h *Handler) HandleVaR(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req varRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.Observe("var", "error", time.Since(started))
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	histories := make([][]float64, len(req.Holdings))
	for i, holding := range req.Holdings {
		histories[i] = holding.PriceHistory
	}

	weights := req.Weights
	if len(weights) == 0 {
		weights = domain.Weights(req.Holdings)
	}

	result := ComputeVaR(histories, weights, req.PortfolioValue, req.ConfidenceLevels)

	if h.archiver != nil && result.Observations > 0 {
		if err := h.archiver.SaveVaRResult(result); err != nil {
			h.log.Error().Err(err).Msg("Failed to archive VaR result")
		}
	}

	h.metrics.Observe("var", "ok", time.Since(started))
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

package sensitivity

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aikawa/riskcore/internal/domain"
	"github.com/aikawa/riskcore/internal/metrics"
)

// Handler handles shock-sensitivity HTTP requests
type Handler struct {
	scorer  *Scorer
	metrics *metrics.Registry
	log     zerolog.Logger
}

// NewHandler creates a new sensitivity handler
func NewHandler(scorer *Scorer, m *metrics.Registry, log zerolog.Logger) *Handler {
	return &Handler{
		scorer:  scorer,
		metrics: m,
		log:     log.With().Str("handler", "sensitivity").Logger(),
	}
}

type scoreRequest struct {
	Holdings                []domain.Holding `json:"holdings"`
	ConcentrationMultiplier *float64         `json:"concentration_multiplier,omitempty"`
	BaseShock               *float64         `json:"base_shock,omitempty"`
}

type scoreResponse struct {
	Results []Result `json:"results"`
}

// HandleScore scores each holding's shock sensitivity
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.Observe("sensitivity", "error", time.Since(started))
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	multiplier := domain.SafeFloat(req.ConcentrationMultiplier, 1.0)
	baseShock := domain.SafeFloat(req.BaseShock, DefaultBaseShock)

	results := make([]Result, 0, len(req.Holdings))
	for _, holding := range req.Holdings {
		results = append(results, h.scorer.Analyze(holding, multiplier, baseShock))
	}

	h.metrics.Observe("sensitivity", "ok", time.Since(started))
	h.writeJSON(w, http.StatusOK, scoreResponse{Results: results})
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

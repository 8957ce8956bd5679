package scenario

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikawa/riskcore/internal/metrics"
)

type recordingArchiver struct {
	saved []PortfolioResult
}

func (a *recordingArchiver) SaveStressResult(result PortfolioResult) error {
	a.saved = append(a.saved, result)
	return nil
}

func TestHandleStressTest(t *testing.T) {
	engine := NewEngine(DefaultCatalog(), "JPY", zerolog.Nop())
	archiver := &recordingArchiver{}
	handler := NewHandler(engine, archiver, metrics.New(), zerolog.Nop())

	body := `{
		"scenario": "tech crash",
		"holdings": [
			{"symbol": "AAPL", "sector": "Technology", "country": "United States", "currency": "USD", "beta": 1.2, "weight": 1.0}
		]
	}`

	req := httptest.NewRequest("POST", "/api/risk/scenario", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleStressTest(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result PortfolioResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "tech_crash", result.ScenarioKey)
	assert.Negative(t, result.PortfolioImpact)

	// The portfolio-level outcome was archived.
	require.Len(t, archiver.saved, 1)
	assert.Equal(t, "tech_crash", archiver.saved[0].ScenarioKey)
}

func TestHandleStressTestUnknownScenario(t *testing.T) {
	engine := NewEngine(DefaultCatalog(), "JPY", zerolog.Nop())
	handler := NewHandler(engine, nil, metrics.New(), zerolog.Nop())

	body := `{"scenario": "asteroid impact", "holdings": []}`

	req := httptest.NewRequest("POST", "/api/risk/scenario", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleStressTest(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListScenarios(t *testing.T) {
	engine := NewEngine(DefaultCatalog(), "JPY", zerolog.Nop())
	handler := NewHandler(engine, nil, metrics.New(), zerolog.Nop())

	req := httptest.NewRequest("GET", "/api/risk/scenarios", nil)
	w := httptest.NewRecorder()
	handler.HandleListScenarios(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Scenarios []Definition `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Scenarios, 8)
}

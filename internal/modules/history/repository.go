package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aikawa/riskcore/internal/modules/correlation"
	"github.com/aikawa/riskcore/internal/modules/scenario"
)

const timeLayout = "2006-01-02 15:04:05"

// StressRun is one archived stress-test result.
type StressRun struct {
	ID              int                      `json:"id"`
	RunAt           time.Time                `json:"run_at"`
	ScenarioKey     string                   `json:"scenario_key"`
	ScenarioName    string                   `json:"scenario_name"`
	PortfolioImpact float64                  `json:"portfolio_impact"`
	Judgment        string                   `json:"judgment"`
	Detail          scenario.PortfolioResult `json:"detail"`
}

// VaRRun is one archived value-at-risk result.
type VaRRun struct {
	ID             int                   `json:"id"`
	RunAt          time.Time             `json:"run_at"`
	PortfolioValue float64               `json:"portfolio_value"`
	AnnualizedVol  float64               `json:"annualized_volatility"`
	Observations   int                   `json:"observations"`
	Detail         correlation.VaRResult `json:"detail"`
}

// Repository archives portfolio-level stress and VaR results.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new history repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "history").Logger(),
	}
}

// SaveStressResult archives a portfolio-level scenario result.
func (r *Repository) SaveStressResult(result scenario.PortfolioResult) (*StressRun, error) {
	detail, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stress result: %w", err)
	}

	runAt := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO stress_runs (run_at, scenario_key, scenario_name, portfolio_impact, judgment, detail_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runAt.Format(timeLayout), result.ScenarioKey, result.ScenarioName, result.PortfolioImpact, result.Judgment, string(detail))
	if err != nil {
		return nil, fmt.Errorf("failed to insert stress run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return &StressRun{
		ID:              int(id),
		RunAt:           runAt,
		ScenarioKey:     result.ScenarioKey,
		ScenarioName:    result.ScenarioName,
		PortfolioImpact: result.PortfolioImpact,
		Judgment:        result.Judgment,
		Detail:          result,
	}, nil
}

// ListStressResults returns archived stress runs, newest first.
func (r *Repository) ListStressResults(limit int) ([]StressRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT id, run_at, scenario_key, scenario_name, portfolio_impact, judgment, detail_json
		FROM stress_runs
		ORDER BY run_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stress runs: %w", err)
	}
	defer rows.Close()

	var runs []StressRun
	for rows.Next() {
		var run StressRun
		var runAt, detail string

		if err := rows.Scan(&run.ID, &runAt, &run.ScenarioKey, &run.ScenarioName, &run.PortfolioImpact, &run.Judgment, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan stress run: %w", err)
		}

		run.RunAt, _ = time.Parse(timeLayout, runAt)
		if err := json.Unmarshal([]byte(detail), &run.Detail); err != nil {
			r.log.Warn().Err(err).Int("id", run.ID).Msg("Skipping malformed stress detail")
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// SaveVaRResult archives a portfolio-level VaR result.
func (r *Repository) SaveVaRResult(result correlation.VaRResult) (*VaRRun, error) {
	detail, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal VaR result: %w", err)
	}

	runAt := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO var_runs (run_at, portfolio_value, annualized_volatility, observations, detail_json)
		VALUES (?, ?, ?, ?, ?)
	`, runAt.Format(timeLayout), result.PortfolioValue, result.AnnualizedVol, result.Observations, string(detail))
	if err != nil {
		return nil, fmt.Errorf("failed to insert VaR run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return &VaRRun{
		ID:             int(id),
		RunAt:          runAt,
		PortfolioValue: result.PortfolioValue,
		AnnualizedVol:  result.AnnualizedVol,
		Observations:   result.Observations,
		Detail:         result,
	}, nil
}

// ListVaRResults returns archived VaR runs, newest first.
func (r *Repository) ListVaRResults(limit int) ([]VaRRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT id, run_at, portfolio_value, annualized_volatility, observations, detail_json
		FROM var_runs
		ORDER BY run_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query VaR runs: %w", err)
	}
	defer rows.Close()

	var runs []VaRRun
	for rows.Next() {
		var run VaRRun
		var runAt, detail string

		if err := rows.Scan(&run.ID, &runAt, &run.PortfolioValue, &run.AnnualizedVol, &run.Observations, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan VaR run: %w", err)
		}

		run.RunAt, _ = time.Parse(timeLayout, runAt)
		if err := json.Unmarshal([]byte(detail), &run.Detail); err != nil {
			r.log.Warn().Err(err).Int("id", run.ID).Msg("Skipping malformed VaR detail")
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Prune deletes archived runs older than the retention window.
func (r *Repository) Prune(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Format(timeLayout)

	var deleted int64
	for _, table := range []string{"stress_runs", "var_runs"} {
		res, err := r.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE run_at < ?", table), cutoff)
		if err != nil {
			return deleted, fmt.Errorf("failed to prune %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		deleted += n
	}

	if deleted > 0 {
		r.log.Info().Int64("deleted", deleted).Str("cutoff", cutoff).Msg("Pruned history")
	}

	return deleted, nil
}

package history

import "database/sql"

// Schema holds the stress-test and VaR run archives.
const Schema = `
CREATE TABLE IF NOT EXISTS stress_runs (
    id INTEGER PRIMARY KEY,
    run_at TEXT NOT NULL,
    scenario_key TEXT NOT NULL,
    scenario_name TEXT NOT NULL,
    portfolio_impact REAL NOT NULL,
    judgment TEXT NOT NULL,
    detail_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stress_runs_run_at ON stress_runs(run_at);
CREATE INDEX IF NOT EXISTS idx_stress_runs_scenario ON stress_runs(scenario_key);

CREATE TABLE IF NOT EXISTS var_runs (
    id INTEGER PRIMARY KEY,
    run_at TEXT NOT NULL,
    portfolio_value REAL NOT NULL,
    annualized_volatility REAL NOT NULL,
    observations INTEGER NOT NULL,
    detail_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_var_runs_run_at ON var_runs(run_at);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}

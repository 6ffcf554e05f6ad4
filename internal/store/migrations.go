package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 2

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	steps := []func() []string{migrateV1, migrateV2}
	for i := version; i < len(steps); i++ {
		if err := db.apply(i+1, steps[i]()); err != nil {
			return fmt.Errorf("migration v%d: %w", i+1, err)
		}
	}

	return nil
}

// migrateV1 creates the submissions table and its indexes.
func migrateV1() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS submissions (
			id               TEXT PRIMARY KEY,
			created_at       TEXT NOT NULL,
			company_name     TEXT NOT NULL,
			respondent_name  TEXT NOT NULL,
			respondent_email TEXT,
			industry         TEXT,
			revenue_scale    TEXT,
			business_phase   TEXT,
			memo             TEXT,
			q1  INTEGER NOT NULL, q2  INTEGER NOT NULL, q3  INTEGER NOT NULL,
			q4  INTEGER NOT NULL, q5  INTEGER NOT NULL, q6  INTEGER NOT NULL,
			q7  INTEGER NOT NULL, q8  INTEGER NOT NULL, q9  INTEGER NOT NULL,
			q10 INTEGER NOT NULL, q11 INTEGER NOT NULL, q12 INTEGER NOT NULL,
			avg_score        REAL NOT NULL,
			edited_report    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_company ON submissions(company_name)`,
	}
}

// migrateV2 adds storage for AI-generated reports.
func migrateV2() []string {
	return []string{
		`ALTER TABLE submissions ADD COLUMN ai_report TEXT`,
		`ALTER TABLE submissions ADD COLUMN ai_model TEXT`,
		`ALTER TABLE submissions ADD COLUMN ai_generated_at TEXT`,
	}
}

func (db *DB) apply(version int, statements []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:min(len(stmt), 40)], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return err
	}

	return tx.Commit()
}

// SchemaVersion returns the schema version recorded in the database.
func (db *DB) SchemaVersion() (int, error) {
	var v int
	if err := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Position table
		CREATE TABLE IF NOT EXISTS positions (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			ticker VARCHAR(10) NOT NULL UNIQUE,
			shares_owned INTEGER DEFAULT 0 NOT NULL,
			cost_basis FLOAT DEFAULT 0.0 NOT NULL,
			current_price FLOAT DEFAULT 0.0 NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Trade ledger table
		CREATE TABLE IF NOT EXISTS trades (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			position_id VARCHAR(36),
			type VARCHAR(10) NOT NULL CHECK(type IN ('CSP', 'CC', 'ASSIGNMENT', 'CLOSE', 'ROLL', 'BUY', 'SELL')),
			ticker VARCHAR(10) NOT NULL,
			strike FLOAT,
			expiration DATE,
			premium FLOAT DEFAULT 0.0 NOT NULL,
			quantity INTEGER DEFAULT 1 NOT NULL,
			delta FLOAT,
			status VARCHAR(10) DEFAULT 'OPEN' NOT NULL CHECK(status IN ('OPEN', 'CLOSED', 'EXPIRED', 'ASSIGNED')),
			notes TEXT,
			opened_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			closed_at DATETIME,
			FOREIGN KEY(position_id) REFERENCES positions(id)
		);

		-- Settings table
		CREATE TABLE IF NOT EXISTS settings (
			"key" VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		);

		-- Snapshots table
		CREATE TABLE IF NOT EXISTS snapshots (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			snapshot_date DATE NOT NULL UNIQUE,
			portfolio_value FLOAT DEFAULT 0.0 NOT NULL,
			options_pnl FLOAT DEFAULT 0.0 NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Portfolio info table
		CREATE TABLE IF NOT EXISTS portfolio_info (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			started_investing TEXT,
			philosophy TEXT,
			options_strategy TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Portfolio milestones table
		CREATE TABLE IF NOT EXISTS portfolio_milestones (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			amount FLOAT NOT NULL,
			date_reached TEXT,
			time_to_reach TEXT,
			sort_order INTEGER DEFAULT 0 NOT NULL
		);

		-- Indexes for the premium aggregation queries
		CREATE INDEX IF NOT EXISTS ix_trades_position_id ON trades(position_id);
		CREATE INDEX IF NOT EXISTS ix_trades_opened_at ON trades(opened_at);
		CREATE INDEX IF NOT EXISTS ix_trades_type_status ON trades(type, status);
		CREATE INDEX IF NOT EXISTS ix_snapshots_date ON snapshots(snapshot_date);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"trades",
		"positions",
		"snapshots",
		"settings",
		"portfolio_info",
		"portfolio_milestones",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}

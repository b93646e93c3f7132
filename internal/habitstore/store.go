// Package habitstore persists habit definitions and completion history
// across SQLite, MySQL and PostgreSQL backends.
package habitstore

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver (cgo-free)

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// StoreImpl handles durable habit storage using various database backends.
type StoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.HabitStore = &StoreImpl{} // Compile-time check

// NewStore opens a connection for the backend, verifies it and applies any
// pending migrations. A NoneBackend store accepts writes and drops them,
// which keeps the analysis commands usable without persistence.
func NewStore(backend schema.DatabaseBackend, connStr string) (contract.HabitStore, error) {
	if backend == schema.NoneBackend {
		return &StoreImpl{backend: backend}, nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if err := migrateDB(db, backend, latestVersion); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate %s schema: %w", backend, err)
	}

	return &StoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// openDB opens the sql.DB handle for a backend without pinging it.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// rebind converts ?-style placeholders to the $N style PostgreSQL expects.
// SQLite and MySQL both accept ? natively.
func (s *StoreImpl) rebind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

// disabled reports whether this store is the no-op NoneBackend variant.
func (s *StoreImpl) disabled() bool {
	return s.db == nil
}

// GetStatus reports connection state and record counts.
func (s *StoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{Backend: string(s.backend)}
	if s.disabled() {
		return status, nil
	}

	if err := s.db.Ping(); err != nil {
		return status, nil
	}
	status.Connected = true

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&status.TotalHabits); err != nil {
		return status, fmt.Errorf("failed to count habits: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM completions`).Scan(&status.TotalCompletions); err != nil {
		return status, fmt.Errorf("failed to count completions: %w", err)
	}

	if status.TotalCompletions > 0 {
		var oldest, newest int64
		err := s.db.QueryRow(`SELECT MIN(day_unix), MAX(day_unix) FROM completions`).Scan(&oldest, &newest)
		if err != nil {
			return status, fmt.Errorf("failed to read completion range: %w", err)
		}
		status.OldestRecord = unixDay(oldest)
		status.NewestRecord = unixDay(newest)
	}

	return status, nil
}

// Clear removes all habits and completions.
func (s *StoreImpl) Clear() error {
	if s.disabled() {
		return nil
	}
	if _, err := s.db.Exec(`DELETE FROM completions`); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *StoreImpl) Close() error {
	if s.disabled() {
		return nil
	}
	return s.db.Close()
}

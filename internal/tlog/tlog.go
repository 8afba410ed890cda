// Package tlog is a package-level zerolog logger, optionally backed by
// a SQLite-persisted writer, used for the library's diagnostic
// messages; the only one logged is an algorithm-name parse failure in
// tlsh.NewFromName. Nothing on the per-byte Update hot path logs
// anything -- no digester Update method calls into this package.
package tlog

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop()
	writer    *sqliteWriter
)

type sqliteWriter struct {
	db   *sql.DB
	stmt *sql.Stmt
	mu   sync.Mutex
}

func newSQLiteWriter(dbPath string) (*sqliteWriter, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("tlog: opening sqlite db %s: %w", dbPath, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("tlog: pinging sqlite db %s: %w", dbPath, err)
	}

	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		inserted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		log_data TEXT NOT NULL
	);`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("tlog: creating logs table: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO logs (log_data) VALUES (?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("tlog: preparing insert statement: %w", err)
	}

	return &sqliteWriter{db: db, stmt: stmt}, nil
}

func (w *sqliteWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.stmt.Exec(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *sqliteWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.stmt.Close(); err != nil {
		return err
	}
	return w.db.Close()
}

// SetStd switches the package logger to a human-readable console
// writer on stderr. This is the default demo-CLI configuration.
func SetStd() {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// Init switches the package logger to write JSON log records into a
// SQLite database at dbPath, creating it if necessary. Calling Init
// twice without an intervening Close is an error.
func Init(dbPath string) error {
	if dbPath == "" {
		return fmt.Errorf("tlog: Init needs a non-empty dbPath")
	}

	mu.Lock()
	defer mu.Unlock()
	if writer != nil {
		return fmt.Errorf("tlog: already initialized")
	}

	w, err := newSQLiteWriter(dbPath)
	if err != nil {
		return err
	}
	writer = w
	pkgLogger = zerolog.New(writer).With().Timestamp().Logger()
	return nil
}

// Close releases the SQLite-backed writer, if one was set up by Init,
// and reverts the package logger to a no-op.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if writer == nil {
		return nil
	}
	err := writer.close()
	writer = nil
	pkgLogger = zerolog.Nop()
	return err
}

func Debug() *zerolog.Event { l := get(); return l.Debug() }
func Warn() *zerolog.Event  { l := get(); return l.Warn() }
func Error() *zerolog.Event { l := get(); return l.Error() }

func get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return pkgLogger
}

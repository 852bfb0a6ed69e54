package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

// SQLiteConfig holds configuration for the SQLite backend
type SQLiteConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns default configuration
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		Path:        "./data/programs.db",
		BusyTimeout: 5 * time.Second,
	}
}

// ProgramInfo describes a saved program
type ProgramInfo struct {
	Name      string
	LineCount int
	UpdatedAt time.Time
}

// SQLiteStorage keeps programs in a single SQLite database
type SQLiteStorage struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *tblog.Logger
}

// NewSQLiteStorage opens or creates the database at cfg.Path
func NewSQLiteStorage(cfg SQLiteConfig, logger *tblog.Logger) (*SQLiteStorage, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultSQLiteConfig().Path
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = DefaultSQLiteConfig().BusyTimeout
	}
	if logger == nil {
		logger = tblog.GetDefault()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, tberror.Wrap(err, "failed to create directory").WithCode(tberror.CodeStorage)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=%d",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, tberror.Wrap(err, "failed to open database").WithCode(tberror.CodeStorage)
	}

	s := &SQLiteStorage{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, tberror.Wrap(err, "failed to initialize schema").
			WithCode(tberror.CodeStorage).
			WithDetail("path", cfg.Path)
	}

	logger.Debug("program database opened", tblog.Fields{"path": cfg.Path})
	return s, nil
}

// initSchema creates the programs table
func (s *SQLiteStorage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS programs (
		name TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		line_count INTEGER NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_programs_updated_at ON programs(updated_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Load implements Storage
func (s *SQLiteStorage) Load(ctx context.Context, name string) (string, error) {
	name, err := checkName("load", name)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var source string
	err = s.db.QueryRowContext(ctx, `SELECT source FROM programs WHERE name = ?`, name).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return "", notFound("load", name)
	}
	if err != nil {
		return "", tberror.Wrap(err, "failed to load program").
			WithCode(tberror.CodeStorage).
			WithOperation("load")
	}
	return source, nil
}

// Save implements Storage with an upsert
func (s *SQLiteStorage) Save(ctx context.Context, name, source string) error {
	name, err := checkName("save", name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := CountLines(source)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO programs (name, source, line_count, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			source = excluded.source,
			line_count = excluded.line_count,
			updated_at = excluded.updated_at
	`, name, source, lines, time.Now().UTC())
	if err != nil {
		return tberror.Wrap(err, "failed to save program").
			WithCode(tberror.CodeStorage).
			WithOperation("save")
	}

	s.logger.Debug("program saved", tblog.Fields{"name": name, "lines": lines})
	return nil
}

// List implements Storage
func (s *SQLiteStorage) List(ctx context.Context) ([]string, error) {
	infos, err := s.Programs(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names, nil
}

// Programs returns the saved programs ordered by name
func (s *SQLiteStorage) Programs(ctx context.Context) ([]ProgramInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, line_count, updated_at FROM programs ORDER BY name
	`)
	if err != nil {
		return nil, tberror.Wrap(err, "failed to list programs").
			WithCode(tberror.CodeStorage).
			WithOperation("list")
	}
	defer rows.Close()

	var infos []ProgramInfo
	for rows.Next() {
		var info ProgramInfo
		if err := rows.Scan(&info.Name, &info.LineCount, &info.UpdatedAt); err != nil {
			return nil, tberror.Wrap(err, "failed to scan program").WithCode(tberror.CodeStorage)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, tberror.Wrap(err, "failed to list programs").WithCode(tberror.CodeStorage)
	}
	return infos, nil
}

// Close closes the database
func (s *SQLiteStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

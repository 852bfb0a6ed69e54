// ============================================================================
// tinyBASIC - Line-numbered BASIC interpreter
// ============================================================================
//
// Package:     storage
// Description: Persistence for program sources used by LOAD, SAVE and DIR
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package storage

import (
	"context"
	"strings"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
	"github.com/msto63/tinybasic/pkg/core/config"
)

// Storage keeps program sources by name
type Storage interface {
	// Load returns the source saved under name. A missing program is a
	// NOT_FOUND error.
	Load(ctx context.Context, name string) (string, error)

	// Save stores source under name, replacing any previous version
	Save(ctx context.Context, name, source string) error

	// List returns the saved program names in ascending order
	List(ctx context.Context) ([]string, error)

	// Close releases the backend
	Close() error
}

// Open creates the backend selected by cfg.Backend
func Open(cfg config.StorageConfig, logger *tblog.Logger) (Storage, error) {
	if logger == nil {
		logger = tblog.GetDefault()
	}
	logger = logger.WithField("component", "storage")

	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStorage(cfg.Dir, logger)
	case config.BackendSQLite:
		return NewSQLiteStorage(SQLiteConfig{Path: cfg.Path, BusyTimeout: cfg.BusyTimeout.Duration}, logger)
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, tberror.Newf("unknown storage backend %q", cfg.Backend).WithCode(tberror.CodeConfig)
	}
}

// CleanName trims whitespace and one pair of surrounding double quotes
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		name = name[1 : len(name)-1]
	}
	return strings.TrimSpace(name)
}

func checkName(op, name string) (string, error) {
	name = CleanName(name)
	if name == "" {
		return "", tberror.New("program name is empty").
			WithCode(tberror.CodeInvalidInput).
			WithOperation(op)
	}
	return name, nil
}

func notFound(op, name string) error {
	return tberror.Newf("program %s not found", name).
		WithCode(tberror.CodeNotFound).
		WithOperation(op).
		WithDetail("name", name)
}

// CountLines returns the number of non-blank lines in source
func CountLines(source string) int {
	n := 0
	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
	"github.com/msto63/tinybasic/pkg/core/config"
)

var testLogger = tblog.NewWithConfig(tblog.Config{Level: tblog.LevelDebug, Output: io.Discard})

func newBackends(t *testing.T) map[string]Storage {
	t.Helper()
	dir := t.TempDir()

	files, err := NewFileStorage(filepath.Join(dir, "files"), testLogger)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(files.Dir, 0755); err != nil {
		t.Fatal(err)
	}
	db, err := NewSQLiteStorage(SQLiteConfig{Path: filepath.Join(dir, "db", "programs.db")}, testLogger)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return map[string]Storage{
		"file":   files,
		"sqlite": db,
		"memory": NewMemoryStorage(),
	}
}

func TestStorage_SaveLoad(t *testing.T) {
	ctx := context.Background()
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			source := "10 PRINT \"HI\"\n20 END\n"
			if err := s.Save(ctx, "hello.bas", source); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := s.Load(ctx, "hello.bas")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != source {
				t.Errorf("Load() = %q, want %q", got, source)
			}

			// overwrite
			if err := s.Save(ctx, `"hello.bas"`, "10 END\n"); err != nil {
				t.Fatal(err)
			}
			if got, _ := s.Load(ctx, "hello.bas"); got != "10 END\n" {
				t.Errorf("after overwrite Load() = %q", got)
			}
		})
	}
}

func TestStorage_NotFound(t *testing.T) {
	ctx := context.Background()
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx, "missing.bas")
			if !tberror.HasCode(err, tberror.CodeNotFound) {
				t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
			}
		})
	}
}

func TestStorage_EmptyName(t *testing.T) {
	ctx := context.Background()
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(ctx, `  ""  `, "10 END"); !tberror.HasCode(err, tberror.CodeInvalidInput) {
				t.Errorf("Save(empty) error = %v", err)
			}
			if _, err := s.Load(ctx, ""); !tberror.HasCode(err, tberror.CodeInvalidInput) {
				t.Errorf("Load(empty) error = %v", err)
			}
		})
	}
}

func TestStorage_List(t *testing.T) {
	ctx := context.Background()
	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"b.bas", "a.bas"} {
				if err := s.Save(ctx, n, "10 END\n"); err != nil {
					t.Fatal(err)
				}
			}
			names, err := s.List(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Join(names, ",") != "a.bas,b.bas" {
				t.Errorf("List() = %v", names)
			}
		})
	}
}

func TestFileStorage_Details(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, _ := NewFileStorage(dir, testLogger)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "loop.bas", "10 GOTO 10\n"); err != nil {
		t.Fatal(err)
	}

	names, _ := s.List(ctx)
	if len(names) != 1 || names[0] != "loop.bas" {
		t.Errorf("List() = %v, want only .bas files", names)
	}

	if got, err := s.Load(ctx, "loop"); err != nil || got != "10 GOTO 10\n" {
		t.Errorf("Load without extension = %q, %v", got, err)
	}

	abs := filepath.Join(t.TempDir(), "nested", "abs.bas")
	if err := s.Save(ctx, abs, "10 END\n"); err != nil {
		t.Fatalf("Save(absolute) error = %v", err)
	}
	if _, err := os.Stat(abs); err != nil {
		t.Errorf("absolute path not written: %v", err)
	}
}

func TestSQLiteStorage_Programs(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStorage(SQLiteConfig{Path: filepath.Join(t.TempDir(), "p.db")}, testLogger)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Save(ctx, "count.bas", "10 LET A = 1\n\n20 PRINT A\n"); err != nil {
		t.Fatal(err)
	}
	infos, err := s.Programs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].LineCount != 2 || infos[0].UpdatedAt.IsZero() {
		t.Errorf("Programs() = %+v", infos)
	}
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "p.db")

	s, err := NewSQLiteStorage(SQLiteConfig{Path: path}, testLogger)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "keep.bas", "10 END\n"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = NewSQLiteStorage(SQLiteConfig{Path: path}, testLogger)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got, err := s.Load(ctx, "keep.bas"); err != nil || got != "10 END\n" {
		t.Errorf("Load after reopen = %q, %v", got, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		want    string
	}{
		{config.BackendFile, "*storage.FileStorage"},
		{config.BackendSQLite, "*storage.SQLiteStorage"},
		{config.BackendMemory, "*storage.MemoryStorage"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := config.Default().Storage
			cfg.Backend = tt.backend
			cfg.Dir = dir
			cfg.Path = filepath.Join(dir, "open.db")

			s, err := Open(cfg, testLogger)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer s.Close()
			if got := fmt.Sprintf("%T", s); got != tt.want {
				t.Errorf("Open(%s) returned %s, want %s", tt.backend, got, tt.want)
			}
		})
	}

	if _, err := Open(config.StorageConfig{Backend: "tape"}, testLogger); !tberror.HasCode(err, tberror.CodeConfig) {
		t.Errorf("Open(tape) error = %v", err)
	}
}

func TestCleanName(t *testing.T) {
	tests := map[string]string{
		"prog.bas":      "prog.bas",
		`"prog.bas"`:    "prog.bas",
		`  "my prog"  `: "my prog",
		`"`:             `"`,
		"":              "",
	}
	for in, want := range tests {
		if got := CleanName(in); got != want {
			t.Errorf("CleanName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCountLines(t *testing.T) {
	if n := CountLines("10 END\n\n  \n20 END"); n != 2 {
		t.Errorf("CountLines() = %d, want 2", n)
	}
}

package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

// Extension is the file extension listed by FileStorage
const Extension = ".bas"

// FileStorage keeps each program in its own file. Relative names resolve
// against Dir; absolute names are used as they are.
type FileStorage struct {
	Dir    string
	logger *tblog.Logger
}

// NewFileStorage creates a file backend rooted at dir
func NewFileStorage(dir string, logger *tblog.Logger) (*FileStorage, error) {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = tblog.GetDefault()
	}
	return &FileStorage{Dir: dir, logger: logger}, nil
}

func (s *FileStorage) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// Load reads a program file. A name without extension also matches the
// same name with .bas appended.
func (s *FileStorage) Load(ctx context.Context, name string) (string, error) {
	name, err := checkName("load", name)
	if err != nil {
		return "", err
	}

	candidates := []string{s.path(name)}
	if filepath.Ext(name) == "" {
		candidates = append(candidates, s.path(name+Extension))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", tberror.Wrap(err, "failed to read program").
				WithCode(tberror.CodeStorage).
				WithOperation("load").
				WithDetail("path", path)
		}
		s.logger.Debug("program loaded", tblog.Fields{"path": path, "bytes": len(data)})
		return string(data), nil
	}
	return "", notFound("load", name)
}

// Save writes a program file, creating parent directories
func (s *FileStorage) Save(ctx context.Context, name, source string) error {
	name, err := checkName("save", name)
	if err != nil {
		return err
	}
	path := s.path(name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return tberror.Wrap(err, "failed to create directory").
			WithCode(tberror.CodeStorage).
			WithOperation("save")
	}
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		return tberror.Wrap(err, "failed to write program").
			WithCode(tberror.CodeStorage).
			WithOperation("save").
			WithDetail("path", path)
	}
	s.logger.Debug("program saved", tblog.Fields{"path": path, "lines": CountLines(source)})
	return nil
}

// List returns the .bas files in Dir
func (s *FileStorage) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, tberror.Wrap(err, "failed to list programs").
			WithCode(tberror.CodeStorage).
			WithOperation("list")
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Close implements Storage
func (s *FileStorage) Close() error {
	return nil
}

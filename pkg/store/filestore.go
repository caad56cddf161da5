package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"malama_health_backend/pkg/monitoring"
)

// FileStore persists each collection as an indented JSON array under a
// single data directory. Writes replace the whole file via a temp file and
// rename, so readers never observe a torn document. Serialization of
// concurrent read-modify-write cycles is the caller's job (the
// repositories lock per collection).
type FileStore struct {
	dir string
	log *zap.Logger
}

func NewFileStore(dir string, log *zap.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

// Initialize creates the data directory and an empty array file for every
// known collection that does not exist yet. Existing files are left alone.
func (s *FileStore) Initialize() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", s.dir, err)
	}

	for _, name := range Collections {
		path := s.path(name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return fmt.Errorf("initialize %s: %w", path, err)
		}
		s.log.Info("initialized collection file", zap.String("collection", name))
	}

	return nil
}

// ReadAll loads the named collection. A missing file means an empty
// collection; any other read or parse failure is returned to the caller.
func (s *FileStore) ReadAll(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read collection %s: %w", name, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse collection %s: %w", name, err)
	}
	return nil
}

// WriteAll overwrites the named collection with records.
func (s *FileStore) WriteAll(name string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection %s: %w", name, err)
	}

	monitoring.CollectionWrites.WithLabelValues(name).Inc()
	return nil
}

func (s *FileStore) GenerateID() string {
	return NewID()
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

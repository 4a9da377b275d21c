package storage

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/alex-pricope/hackathon-voting/logging"
	"io/fs"
	"os"
	"path/filepath"
)

// FileDocumentStorage keeps one <key>.json file per document inside Dir.
type FileDocumentStorage struct {
	Dir string
}

func NewFileDocumentStorage(dir string) (*FileDocumentStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileDocumentStorage{Dir: dir}, nil
}

func (s *FileDocumentStorage) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

func (s *FileDocumentStorage) Load(ctx context.Context, key string, into interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrDocumentNotFound
		}
		logging.Log.Errorf("STORAGE: failed to read %s: %v", s.path(key), err)
		return err
	}
	if err := json.Unmarshal(data, into); err != nil {
		logging.Log.Errorf("STORAGE: %s is not valid JSON: %v", s.path(key), err)
		return err
	}
	return nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers see either the old or the new document.
func (s *FileDocumentStorage) Save(ctx context.Context, key string, doc interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to encode document %s: %v", key, err)
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to create temp file for %s: %v", key, err)
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		logging.Log.Errorf("STORAGE: failed to write %s: %v", tmpName, err)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		logging.Log.Errorf("STORAGE: failed to replace %s: %v", s.path(key), err)
		return err
	}
	return nil
}

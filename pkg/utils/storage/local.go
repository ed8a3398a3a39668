package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appconfig "bdgaraj_backend/pkg/config"
)

type localStorage struct {
	dir       string
	publicURL string
}

func newLocalStorage(cfg appconfig.StorageConfig) (Storage, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %v", err)
	}
	return &localStorage{dir: cfg.LocalDir, publicURL: strings.TrimSuffix(cfg.PublicURL, "/")}, nil
}

func (l *localStorage) Save(key string, body *bytes.Buffer, contentType string) (string, error) {
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("could not create directory: %v", err)
	}
	if err := os.WriteFile(path, body.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("could not save file: %v", err)
	}
	return l.publicURL + "/" + key, nil
}

func (l *localStorage) Delete(url string) error {
	key := strings.TrimPrefix(url, l.publicURL+"/")
	return os.Remove(filepath.Join(l.dir, filepath.FromSlash(key)))
}

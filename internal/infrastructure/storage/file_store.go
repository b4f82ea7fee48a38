package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gcp-tts-cli/internal/domain/audio"
)

// FileStore saves audio bytes to local files.
type FileStore struct {
	// Dir is prepended to relative destinations. Empty means the working directory.
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Save writes data to dest in binary form, truncating an existing file.
// Missing parent directories are created.
func (fs *FileStore) Save(data []byte, dest string) (audio.Path, error) {
	if dest == "" {
		return "", fmt.Errorf("empty output path")
	}
	path := dest
	if fs.Dir != "" && !filepath.IsAbs(dest) {
		path = filepath.Join(fs.Dir, dest)
	}
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return audio.Path(path), nil
}

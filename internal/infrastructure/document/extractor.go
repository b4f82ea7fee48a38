package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"gcp-tts-cli/internal/domain/document"
)

// Extractor implements document.Source for plain text and PDF files.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger.With(zap.String("component", "document"))}
}

// Extract returns the text of the file at path. The extension decides the
// format and is checked before the file is opened.
func (e *Extractor) Extract(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		text, err = e.readPlainText(path)
	case ".pdf":
		text, err = e.readPDF(path)
	default:
		return "", fmt.Errorf("%w '%s' (expected .txt or .pdf)", document.ErrUnsupportedFormat, path)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w from '%s'", document.ErrNoText, path)
	}
	return text, nil
}

func (e *Extractor) readPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", openError(path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w '%s': content is not valid UTF-8", document.ErrUnreadable, path)
	}
	e.logger.Debug("read text file", zap.String("path", path), zap.Int("bytes", len(data)))
	return string(data), nil
}

// openError maps a failed open/read to the input error taxonomy.
func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: '%s': %w", document.ErrNotFound, path, err)
	}
	return fmt.Errorf("%w '%s': %w", document.ErrUnreadable, path, err)
}

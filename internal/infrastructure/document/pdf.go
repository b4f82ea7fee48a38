package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"gcp-tts-cli/internal/domain/document"
)

// pageSource is the slice of a PDF reader the extractor needs.
// Pages are numbered from 1.
type pageSource interface {
	NumPage() int
	PageText(num int) (string, error)
}

type pdfPages struct {
	r *pdf.Reader
}

func (p pdfPages) NumPage() int {
	return p.r.NumPage()
}

func (p pdfPages) PageText(num int) (string, error) {
	page := p.r.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func (e *Extractor) readPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", openError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", openError(path, err)
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w '%s': %w", document.ErrUnreadable, path, err)
	}

	text, kept, err := joinPages(pdfPages{r: r})
	if err != nil {
		return "", fmt.Errorf("%w '%s': %w", document.ErrUnreadable, path, err)
	}
	e.logger.Debug("extracted pdf text",
		zap.String("path", path),
		zap.Int("pages", r.NumPage()),
		zap.Int("pages_with_text", kept),
		zap.Int("chars", len(text)))
	return text, nil
}

// joinPages concatenates page texts in page order with a single newline
// between them. Pages without text (e.g. scanned images) are skipped
// silently and leave no blank line behind.
func joinPages(src pageSource) (string, int, error) {
	var texts []string
	for i := 1; i <= src.NumPage(); i++ {
		t, err := src.PageText(i)
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", i, err)
		}
		if strings.TrimSpace(t) == "" {
			continue
		}
		texts = append(texts, t)
	}
	return strings.Join(texts, "\n"), len(texts), nil
}

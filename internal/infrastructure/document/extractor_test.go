package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gcp-tts-cli/internal/domain/document"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// buildPDF renders a minimal PDF with one Helvetica text line per page.
// An empty string produces a page with an empty content stream.
func buildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(s string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(s)
	}

	buf.WriteString("%PDF-1.4\n")
	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}
	obj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	obj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), len(pages)))
	obj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n")
	for i, text := range pages {
		content := ""
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		}
		obj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n", 4+2*i, 5+2*i))
		obj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", 5+2*i, len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func TestExtract_PlainText(t *testing.T) {
	content := "Hello, world.\nSecond line — with UTF-8 ✓\n"
	path := writeFile(t, "input.txt", []byte(content))

	text, err := NewExtractor(zap.NewNop()).Extract(path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtract_UppercaseExtension(t *testing.T) {
	path := writeFile(t, "INPUT.TXT", []byte("shout"))

	text, err := NewExtractor(zap.NewNop()).Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "shout", text)
}

func TestExtract_Errors(t *testing.T) {
	dir := t.TempDir()
	blank := filepath.Join(dir, "blank.txt")
	require.NoError(t, os.WriteFile(blank, []byte(" \n\t \n"), 0o644))
	latin1 := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(latin1, []byte{0x63, 0x61, 0x66, 0xe9}, 0o644))
	emptyPDF := filepath.Join(dir, "scanned.pdf")
	require.NoError(t, os.WriteFile(emptyPDF, buildPDF("", ""), 0o644))
	garbage := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a pdf at all"), 0o644))
	folder := filepath.Join(dir, "folder.txt")
	require.NoError(t, os.Mkdir(folder, 0o755))

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing text file", path: filepath.Join(dir, "nope.txt"), want: document.ErrNotFound},
		{name: "missing pdf file", path: filepath.Join(dir, "nope.pdf"), want: document.ErrNotFound},
		// the file does not exist either: the extension check must come first
		{name: "unsupported extension", path: filepath.Join(dir, "notes.docx"), want: document.ErrUnsupportedFormat},
		{name: "no extension", path: filepath.Join(dir, "README"), want: document.ErrUnsupportedFormat},
		{name: "whitespace only text", path: blank, want: document.ErrNoText},
		{name: "invalid utf-8", path: latin1, want: document.ErrUnreadable},
		{name: "pdf without text", path: emptyPDF, want: document.ErrNoText},
		{name: "corrupt pdf", path: garbage, want: document.ErrUnreadable},
		{name: "directory", path: folder, want: document.ErrUnreadable},
	}

	e := NewExtractor(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestExtract_PDF(t *testing.T) {
	path := writeFile(t, "doc.pdf", buildPDF("First page text", "", "Third page text"))

	text, err := NewExtractor(zap.NewNop()).Extract(path)
	require.NoError(t, err)

	first := strings.Index(text, "First page text")
	third := strings.Index(text, "Third page text")
	require.NotEqual(t, -1, first, text)
	require.NotEqual(t, -1, third, text)
	assert.Less(t, first, third)
}

type fakePages []string

func (f fakePages) NumPage() int { return len(f) }

func (f fakePages) PageText(num int) (string, error) {
	if f[num-1] == "<error>" {
		return "", errors.New("bad content stream")
	}
	return f[num-1], nil
}

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name  string
		pages fakePages
		want  string
		kept  int
	}{
		{name: "single page", pages: fakePages{"only"}, want: "only", kept: 1},
		{name: "pages in order", pages: fakePages{"one", "two", "three"}, want: "one\ntwo\nthree", kept: 3},
		{name: "empty pages skipped", pages: fakePages{"", "one", "", "", "two", ""}, want: "one\ntwo", kept: 2},
		{name: "whitespace page skipped", pages: fakePages{"one", "  \n", "two"}, want: "one\ntwo", kept: 2},
		{name: "no pages", pages: fakePages{}, want: "", kept: 0},
		{name: "all empty", pages: fakePages{"", ""}, want: "", kept: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kept, err := joinPages(tt.pages)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kept, kept)
		})
	}
}

func TestJoinPages_PageError(t *testing.T) {
	_, _, err := joinPages(fakePages{"ok", "<error>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")
}

package document

import "errors"

var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrUnreadable covers every other failure to read the input file.
	ErrUnreadable = errors.New("error reading input file")
	// ErrUnsupportedFormat is returned for extensions other than .txt and .pdf.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrNoText is returned when extraction yields only whitespace.
	ErrNoText = errors.New("no text extracted")
)

// Source turns a file into the text that will be spoken.
type Source interface {
	Extract(path string) (string, error)
}

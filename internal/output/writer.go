package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/quantmind-br/sitenav-go/internal/domain"
	"github.com/quantmind-br/sitenav-go/internal/utils"
)

// Writer serializes the manifest and writes it to its output path
type Writer struct {
	path   string
	dryRun bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Path   string
	DryRun bool
}

// NewWriter creates a new manifest writer
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{
		path:   opts.Path,
		dryRun: opts.DryRun,
	}
}

// Render serializes the manifest as pretty-printed UTF-8 JSON with 2-space
// indentation and a trailing newline. HTML characters are not escaped, so
// extracted labels round-trip readably.
func Render(m *domain.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders the manifest and replaces the output file in a single
// write. In dry-run mode the manifest is rendered but nothing is written.
func (w *Writer) Write(m *domain.Manifest) error {
	data, err := Render(m)
	if err != nil {
		return domain.NewWriteError(w.path, err)
	}

	if w.dryRun {
		return nil
	}

	if err := utils.EnsureDir(w.path); err != nil {
		return domain.NewWriteError(w.path, err)
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return domain.NewWriteError(w.path, err)
	}

	return nil
}

// Path returns the configured output path
func (w *Writer) Path() string {
	return w.path
}

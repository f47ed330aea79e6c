// internal/document/document.go
//
// Documents are optional: a base or module file that went missing between
// startup and read time degrades to empty content with a warning instead of
// aborting the run.

package document

import (
	"os"

	"github.com/charmbracelet/log"
)

// Reader loads instruction documents from disk.
type Reader struct {
	logger *log.Logger
}

// NewReader builds a Reader that reports missing documents on logger.
func NewReader(logger *log.Logger) *Reader {
	return &Reader{logger: logger}
}

// Read returns the contents of the file at path, or an empty string when the
// file cannot be read. Missing content is never fatal here; the assembler
// skips empty documents.
func (r *Reader) Read(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Warn("could not read document, treating as empty", "path", path, "err", err)
		return ""
	}
	return string(data)
}

// internal/output/writer.go
//
// Persists the assembled instructions. Any previously generated file is
// copied to a sibling backup path first, so exactly one prior generation
// stays recoverable.

package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Result reports where the writer put things. BackupPath is empty when no
// previous output existed.
type Result struct {
	OutputPath string
	BackupPath string
}

// Writer saves assembled content to disk.
type Writer struct {
	logger *log.Logger
}

// NewWriter builds a Writer that reports backups on logger.
func NewWriter(logger *log.Logger) *Writer {
	return &Writer{logger: logger}
}

// Save writes content to outputPath, backing up any existing file to
// backupPath first. The backup keeps the original's permissions and
// modification time. IO failures propagate; there is no partial-write
// recovery.
func (w *Writer) Save(content, outputPath, backupPath string) (Result, error) {
	res := Result{OutputPath: outputPath}

	info, err := os.Stat(outputPath)
	switch {
	case err == nil && !info.IsDir():
		if err := copyFile(outputPath, backupPath, info); err != nil {
			return Result{}, fmt.Errorf("output: back up %s: %w", outputPath, err)
		}
		res.BackupPath = backupPath
		w.logger.Info("backed up existing file", "path", backupPath)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return Result{}, fmt.Errorf("output: stat %s: %w", outputPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("output: ensure output dir: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return Result{}, fmt.Errorf("output: write %s: %w", outputPath, err)
	}
	return res, nil
}

// copyFile mirrors src to dst, carrying over the mode and mtime so the
// backup is indistinguishable from the file it replaced.
func copyFile(src, dst string, info os.FileInfo) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}

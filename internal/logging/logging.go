// internal/logging/logging.go
//
// Console logger shared by every copygen command. Prompt text goes straight
// to stdout; anything informational or diagnostic goes through here.

package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns the logger used across copygen. Timestamps are noise for a
// one-shot tool, so they stay off.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "copygen",
	})
}

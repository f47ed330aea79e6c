package selector

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"copygen/internal/catalog"
	"copygen/internal/tui"
)

const checklistTitle = "Select modules to include (space to toggle, enter to confirm):"

// Interactive runs the checklist TUI. When the terminal program itself fails
// it falls back to the text strategy instead of surfacing the error.
type Interactive struct {
	Fallback Selector
	Logger   *log.Logger
	Out      io.Writer

	// run is swappable for tests; defaults to the real checklist program.
	run func(title string, items []string) ([]string, error)
}

// Select implements Selector.
func (s *Interactive) Select(available []catalog.Module) ([]catalog.Module, error) {
	if len(available) == 0 {
		out := s.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintln(out, noModulesMessage)
		return nil, nil
	}

	run := s.run
	if run == nil {
		run = tui.RunChecklist
	}
	selected, err := run(checklistTitle, catalog.Names(available))
	if err != nil {
		s.Logger.Warn("interactive selection failed, falling back to text prompt", "err", err)
		if s.Fallback == nil {
			return nil, err
		}
		return s.Fallback.Select(available)
	}
	return catalog.FromNames(selected), nil
}

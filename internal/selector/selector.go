// internal/selector/selector.go
//
// A Selector turns the available module catalog into the user's chosen
// subset. Two interchangeable strategies exist: an interactive checklist for
// real terminals and a numbered text prompt for everything else. The
// interactive strategy degrades to the text one when the terminal program
// fails.

package selector

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"copygen/internal/catalog"
)

// Selector picks a subset of the available modules.
type Selector interface {
	Select(available []catalog.Module) ([]catalog.Module, error)
}

// New returns the best strategy for the current environment: the checklist
// when stdin and stdout are terminals, the text prompt otherwise. Pass
// forceText to skip the capability probe (the --no-input flag).
func New(in io.Reader, out io.Writer, logger *log.Logger, forceText bool) Selector {
	text := &Text{In: in, Out: out}
	if forceText || !interactiveCapable() {
		return text
	}
	return &Interactive{Fallback: text, Logger: logger, Out: out}
}

// interactiveCapable probes whether a checklist can actually be drawn.
func interactiveCapable() bool {
	return terminalFile(os.Stdin) && terminalFile(os.Stdout)
}

func terminalFile(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

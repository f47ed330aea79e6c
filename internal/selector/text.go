package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"copygen/internal/catalog"
)

const noModulesMessage = "No module instruction files found. Only base instructions will be included."

// Text prompts with a numbered list and reads one line from In. Accepted
// answers are "all", "none", or comma-separated 1-based indices. Unparseable
// input re-prompts until a valid answer arrives.
type Text struct {
	In  io.Reader
	Out io.Writer
}

// Select implements Selector.
func (t *Text) Select(available []catalog.Module) ([]catalog.Module, error) {
	if len(available) == 0 {
		fmt.Fprintln(t.Out, noModulesMessage)
		return nil, nil
	}

	fmt.Fprintln(t.Out, "\nAvailable modules:")
	for i, mod := range available {
		fmt.Fprintf(t.Out, "%d. %s\n", i+1, mod)
	}
	fmt.Fprintln(t.Out, "\nSelect modules to include (comma-separated numbers, 'all' for all, or 'none' for none):")

	scanner := bufio.NewScanner(t.In)
	for {
		fmt.Fprint(t.Out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("selector: read input: %w", err)
			}
			return nil, fmt.Errorf("selector: input closed before a selection was made")
		}
		selection, err := ParseSelection(scanner.Text(), available)
		if err != nil {
			fmt.Fprintln(t.Out, "Invalid selection. Please enter numbers separated by commas.")
			continue
		}
		return selection, nil
	}
}

// ParseSelection interprets a selection answer against the available
// modules. Indices outside [1, len(available)] are discarded silently; a
// token that is not a number at all makes the whole answer invalid.
func ParseSelection(answer string, available []catalog.Module) ([]catalog.Module, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch answer {
	case "all":
		return append([]catalog.Module(nil), available...), nil
	case "none":
		return nil, nil
	}

	var selected []catalog.Module
	for _, token := range strings.Split(answer, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		idx, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("selector: %q is not a number", token)
		}
		if idx < 1 || idx > len(available) {
			continue
		}
		selected = append(selected, available[idx-1])
	}
	return selected, nil
}

package selector

import (
	"fmt"
	"strings"

	"copygen/internal/catalog"
)

// Scripted resolves a selection from a flag value instead of prompting. The
// grammar is the text prompt's ("all", "none", indices) extended with module
// names, so scripts can say --select "pandas,numpy" or --select "1,3".
type Scripted struct {
	Spec string
}

// Select implements Selector.
func (s *Scripted) Select(available []catalog.Module) ([]catalog.Module, error) {
	if len(available) == 0 {
		return nil, nil
	}
	byName := make(map[catalog.Module]struct{}, len(available))
	for _, mod := range available {
		byName[mod] = struct{}{}
	}

	answer := strings.TrimSpace(s.Spec)
	switch strings.ToLower(answer) {
	case "", "none":
		return nil, nil
	case "all":
		return append([]catalog.Module(nil), available...), nil
	}

	// Try the numeric grammar first; fall through to names.
	if selected, err := ParseSelection(answer, available); err == nil {
		return selected, nil
	}

	var selected []catalog.Module
	for _, token := range strings.Split(answer, ",") {
		name := catalog.Module(strings.TrimSpace(token))
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("selector: unknown module %q", name)
		}
		selected = append(selected, name)
	}
	return selected, nil
}

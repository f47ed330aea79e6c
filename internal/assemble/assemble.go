// internal/assemble/assemble.go
//
// Pure text composition: base documents first, then the selected module
// documents in catalog order. No IO happens here; all contents are resolved
// by the caller.

package assemble

import (
	"strings"

	"copygen/internal/catalog"
)

// SectionHeader introduces the optional module section of the output.
const SectionHeader = "## Library-Specific Instructions"

// Input carries everything the assembler needs. Catalog fixes the emission
// order; Selected is treated as a set, so neither its order nor duplicates
// affect the output.
type Input struct {
	Universal string
	Core      string
	Catalog   []catalog.Module
	Selected  []catalog.Module
	Content   map[catalog.Module]string
}

// Assemble combines the base documents with the selected module documents.
// The module section (header included) is omitted entirely when nothing is
// selected. Selected modules whose content is empty are skipped without a
// placeholder.
func Assemble(in Input) string {
	var b strings.Builder
	b.WriteString(in.Universal)
	b.WriteString("\n\n")
	b.WriteString(in.Core)
	b.WriteString("\n")

	if len(in.Selected) == 0 {
		return b.String()
	}

	selected := make(map[catalog.Module]struct{}, len(in.Selected))
	for _, mod := range in.Selected {
		selected[mod] = struct{}{}
	}

	b.WriteString("\n")
	b.WriteString(SectionHeader)
	b.WriteString("\n\n")

	for _, mod := range in.Catalog {
		if _, ok := selected[mod]; !ok {
			continue
		}
		content := in.Content[mod]
		if content == "" {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}

	return b.String()
}

// internal/generate/generate.go
//
// The generator wires catalog scan, selection, assembly and output into one
// sequential run. It is the only place that knows the whole flow.

package generate

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"copygen/internal/assemble"
	"copygen/internal/catalog"
	"copygen/internal/config"
	"copygen/internal/document"
	"copygen/internal/output"
	"copygen/internal/selector"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Border(lipgloss.NormalBorder()).
			Padding(0, 2)
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// Generator holds the collaborators for one generation run.
type Generator struct {
	Config   *config.Config
	Selector selector.Selector
	Reader   *document.Reader
	Writer   *output.Writer
	Logger   *log.Logger
	Out      io.Writer
}

// Run executes the full flow: banner, catalog scan, selection, assembly,
// save, closing hints. A missing modules directory or a failed write
// surfaces as an error; everything else degrades with a warning.
func (g *Generator) Run() error {
	g.printBanner()

	mods, err := catalog.Scan(g.Config.ModulesDir, g.Config.Extension)
	if err != nil {
		return err
	}

	selected, err := g.Selector.Select(mods)
	if err != nil {
		return fmt.Errorf("generate: module selection: %w", err)
	}

	if len(selected) > 0 {
		g.Logger.Info("generating instructions", "modules", strings.Join(catalog.Names(selected), ", "))
	} else {
		g.Logger.Info("generating instructions with base content only")
	}

	in := assemble.Input{
		Universal: g.Reader.Read(g.Config.UniversalPath()),
		Core:      g.Reader.Read(g.Config.CorePath()),
		Catalog:   mods,
		Selected:  selected,
		Content:   make(map[catalog.Module]string, len(selected)),
	}
	for _, mod := range selected {
		in.Content[mod] = g.Reader.Read(g.Config.ModulePath(string(mod)))
	}

	res, err := g.Writer.Save(assemble.Assemble(in), g.Config.OutputPath(), g.Config.BackupPath())
	if err != nil {
		return err
	}

	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, successStyle.Render("Successfully generated instructions at "+res.OutputPath))
	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, hintStyle.Render("Done! Copy the contents of "+g.Config.OutputName+" into your project,"))
	fmt.Fprintln(g.Out, hintStyle.Render("or reference it from your .vscode/settings.json file."))
	return nil
}

func (g *Generator) printBanner() {
	fmt.Fprintln(g.Out, bannerStyle.Render("copygen · Copilot Instructions Generator"))
	fmt.Fprintln(g.Out, taglineStyle.Render("Generate personalized GitHub Copilot instruction files for Python projects."))
	fmt.Fprintln(g.Out)
}

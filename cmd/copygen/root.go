// cmd/copygen/root.go
//
// Cobra command surface. The root command runs the generator; `list` shows
// the available modules without generating anything.

package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"copygen/internal/config"
	"copygen/internal/document"
	"copygen/internal/generate"
	"copygen/internal/logging"
	"copygen/internal/output"
	"copygen/internal/selector"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	flagRoot       string
	flagBaseDir    string
	flagModulesDir string
	flagOutputDir  string
	flagSelect     string
	flagNoInput    bool

	rootCmd = &cobra.Command{
		Use:   "copygen",
		Short: "Generate personalized GitHub Copilot instruction files",
		Long: titleStyle.Render("copygen") + subtitleStyle.Render(" - Copilot instructions generator") + `

copygen assembles a copilot-instructions.md file from always-included base
instructions plus the module instructions you pick, either through an
interactive checklist or a plain text prompt.

` + subtitleStyle.Render("Examples:") + `
  copygen                      Pick modules interactively and generate
  copygen list                 Show the available modules
  copygen --select all         Generate with every module, no prompt
  copygen --select "1,3"       Generate with modules 1 and 3
  copygen --select pandas      Generate with the pandas module`,
		RunE: runGenerate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "root directory (default: $COPYGEN_ROOT or the executable's directory)")
	rootCmd.PersistentFlags().StringVar(&flagBaseDir, "base-dir", "", "base instructions directory (default: <root>/base)")
	rootCmd.PersistentFlags().StringVar(&flagModulesDir, "modules-dir", "", "module instructions directory (default: <root>/modules)")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "output directory (default: <root>)")
	rootCmd.Flags().StringVar(&flagSelect, "select", "", "skip prompting: 'all', 'none', indices like '1,3', or module names")
	rootCmd.Flags().BoolVar(&flagNoInput, "no-input", false, "never open the interactive checklist")

	rootCmd.AddCommand(newListCommand())
}

func resolveConfig() (*config.Config, error) {
	return config.New(config.Options{
		Root:       flagRoot,
		BaseDir:    flagBaseDir,
		ModulesDir: flagModulesDir,
		OutputDir:  flagOutputDir,
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr())

	var sel selector.Selector
	if flagSelect != "" {
		sel = &selector.Scripted{Spec: flagSelect}
	} else {
		sel = selector.New(cmd.InOrStdin(), cmd.OutOrStdout(), logger, flagNoInput)
	}

	gen := &generate.Generator{
		Config:   cfg,
		Selector: sel,
		Reader:   document.NewReader(logger),
		Writer:   output.NewWriter(logger),
		Logger:   logger,
		Out:      cmd.OutOrStdout(),
	}
	return gen.Run()
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"copygen/internal/catalog"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available instruction modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			mods, err := catalog.Scan(cfg.ModulesDir, cfg.Extension)
			if err != nil {
				return err
			}
			if len(mods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), subtitleStyle.Render("no modules found in "+cfg.ModulesDir))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Available modules:"))
			for _, mod := range mods {
				fmt.Fprintln(cmd.OutOrStdout(), itemStyle.Render("  "+string(mod)))
			}
			return nil
		},
	}
}

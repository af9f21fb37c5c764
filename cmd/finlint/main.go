package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"finlint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "finlint",
	Short: "Lint rule catalog for declaration-style analysis",
	Long:  `finlint documents the declaration-style lint rules and their diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	cobra.OnInitialize(configureColor)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configureColor() {
	mode, err := rootCmd.PersistentFlags().GetString("color")
	if err != nil {
		return
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown --color mode %q, using auto\n", mode)
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"finlint/internal/lint/rules"
)

var explainCmd = &cobra.Command{
	Use:   "explain <rule>",
	Short: "Show one rule's full documentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		rule, ok := rules.ByName(name)
		if !ok {
			return fmt.Errorf("unknown rule %q (see 'finlint rules')", name)
		}

		info := rule.Info()
		out := cmd.OutOrStdout()

		titleColor := color.New(color.FgCyan, color.Bold)
		groupColor := color.New(color.Faint)

		fmt.Fprintf(out, "%s %s\n", titleColor.Sprint(info.Name), groupColor.Sprintf("[%s]", info.Group))
		fmt.Fprintln(out, info.Description)
		if len(info.IncompatibleWith) > 0 {
			fmt.Fprintf(out, "incompatible with: %s\n", strings.Join(info.IncompatibleWith, ", "))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.TrimRight(info.Details, "\n"))
		return nil
	},
}

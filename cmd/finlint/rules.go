package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"finlint/internal/lint"
	"finlint/internal/lint/rules"
)

var (
	rulesFormat string
	rulesGroup  string
)

type rulePayload struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Group            string   `json:"group"`
	IncompatibleWith []string `json:"incompatible_with,omitempty"`
}

func init() {
	rulesCmd.Flags().StringVar(&rulesFormat, "format", "pretty", "output format (pretty|json)")
	rulesCmd.Flags().StringVar(&rulesGroup, "group", "", "only rules of this group (style|correctness)")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := selectRules(rules.All(), rulesGroup)
		sort.Slice(catalog, func(i, j int) bool {
			return catalog[i].Info().Name < catalog[j].Info().Name
		})

		switch strings.ToLower(rulesFormat) {
		case "pretty":
			renderRulesPretty(cmd.OutOrStdout(), catalog)
			return nil
		case "json":
			return renderRulesJSON(cmd.OutOrStdout(), catalog)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", rulesFormat)
		}
	},
}

func selectRules(catalog []lint.Rule, group string) []lint.Rule {
	if group == "" {
		return catalog
	}
	selected := make([]lint.Rule, 0, len(catalog))
	for _, r := range catalog {
		if r.Info().Group.String() == group {
			selected = append(selected, r)
		}
	}
	return selected
}

func renderRulesPretty(out io.Writer, catalog []lint.Rule) {
	if len(catalog) == 0 {
		fmt.Fprintln(out, "no rules match")
		return
	}

	nameColor := color.New(color.FgCyan, color.Bold)
	groupColor := color.New(color.Faint)

	width := 0
	for _, r := range catalog {
		if w := runewidth.StringWidth(r.Info().Name); w > width {
			width = w
		}
	}

	for _, r := range catalog {
		info := r.Info()
		pad := strings.Repeat(" ", width-runewidth.StringWidth(info.Name))
		fmt.Fprintf(out, "%s%s  %s %s\n",
			nameColor.Sprint(info.Name), pad,
			groupColor.Sprintf("[%s]", info.Group),
			info.Description)
		if len(info.IncompatibleWith) > 0 {
			indent := strings.Repeat(" ", width+2)
			fmt.Fprintf(out, "%sincompatible with: %s\n", indent, strings.Join(info.IncompatibleWith, ", "))
		}
	}
}

func renderRulesJSON(out io.Writer, catalog []lint.Rule) error {
	payload := make([]rulePayload, 0, len(catalog))
	for _, r := range catalog {
		info := r.Info()
		payload = append(payload, rulePayload{
			Name:             info.Name,
			Description:      info.Description,
			Group:            info.Group.String(),
			IncompatibleWith: info.IncompatibleWith,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

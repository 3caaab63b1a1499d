package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/tracedecode/fixture"
)

var (
	subsystemStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))
)

var codesCmd = &cobra.Command{
	Use:   "codes [subsystem]",
	Short: "List the operation codes the decoder knows.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := fixture.DefaultRegistry()
		names := make([]string, 0, len(reg))
		for name := range reg {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(args) == 1 {
			if _, ok := reg[args[0]]; !ok {
				return fmt.Errorf("unknown subsystem %q", args[0])
			}
			names = args
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintln(out, subsystemStyle.Render(name))
			tbl := reg[name]
			for _, c := range tbl.Codes() {
				e, _ := tbl.Lookup(c.Value)
				fmt.Fprintf(out, "  %#010x  %s %s\n", c.Value, codeStyle.Render(fmt.Sprintf("%-26s", c.Name)), e.Tag)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the cells and markers of the braille table",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	_, table, err := setup()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	cells, fill := table.Stats()
	fmt.Fprintf(out, "%s, %d cells (%.0f%% of all cells)\n", table.Identifier, cells, fill*100)
	for _, e := range table.Entries() {
		fmt.Fprintf(out, "%c  %-12s %s\n", e.Glyph, e.Dots, e.Character)
	}
	for _, m := range table.Markers() {
		bases := make([]string, 0, len(m.Remap))
		for base := range m.Remap {
			bases = append(bases, base+"→"+m.Remap[base])
		}
		sort.Strings(bases)
		fmt.Fprintf(out, "%c  %-12s %s [%s] %s\n", m.Glyph(), m.Dots(), m.Label, m.Mode,
			strings.Join(bases, " "))
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocketmod/pkg/types"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [name]",
	Short: "Print the imposition tables",
	Long: `Layout prints the fixed panel tables that map source pages onto the
output grid. With no argument both tables are printed; with a name
("bottom" or "top") only that table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	layouts := []types.Layout{types.LayoutBottom, types.LayoutTop}
	if len(args) == 1 {
		l, ok := types.LayoutByName(args[0])
		if !ok {
			return fmt.Errorf("unknown layout %q: valid layouts are %s",
				args[0], strings.Join(types.LayoutNames(), ", "))
		}
		layouts = []types.Layout{l}
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "text" {
		for i, l := range layouts {
			if i > 0 {
				fmt.Println()
			}
			printLayoutTable(l)
		}
		return nil
	}
	return writeFormatted(format, layouts)
}

func printLayoutTable(l types.Layout) {
	fmt.Printf("Layout %q\n", l.Name)
	fmt.Printf("%-6s  %-4s  %-4s  %-12s  %s\n", "Panel", "Row", "Col", "Source page", "Rotation")
	fmt.Println(strings.Repeat("-", 44))
	for i, p := range l.Panels {
		fmt.Printf("%-6d  %-4d  %-4d  %-12d  %s\n", i, p.Pos.Row, p.Pos.Col, p.Source, p.Rotation)
	}
}

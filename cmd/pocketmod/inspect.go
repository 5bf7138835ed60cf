package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocketmod/internal/impose"
	"github.com/pdiddy/pocketmod/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Check whether a PDF is ready for conversion",
	Long: `Inspect reports a PDF's page count, page sizes, and strict-validation
outcome, and whether the file is ready for PocketMod conversion (exactly
8 pages). Inspection never writes anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	report, err := inspect.File(args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "text" {
		printReport(report)
		return nil
	}
	return writeFormatted(format, report)
}

func printReport(r *inspect.Report) {
	fmt.Printf("%s: %d page(s)\n", r.Path, r.PageCount)
	if len(r.Pages) > 0 {
		if r.UniformSize {
			fmt.Printf("Page size: %.1f x %.1f pt\n", r.Pages[0].Width, r.Pages[0].Height)
		} else {
			for i, p := range r.Pages {
				fmt.Printf("Page %d: %.1f x %.1f pt\n", i+1, p.Width, p.Height)
			}
		}
	}
	if r.Conforming {
		fmt.Println("Validation: ok")
	} else {
		fmt.Printf("Validation: %s\n", r.ValidationError)
	}
	if r.Ready {
		fmt.Println("Ready for conversion: yes")
	} else {
		fmt.Printf("Ready for conversion: no (needs exactly %d pages)\n", impose.RequiredPages)
	}
}

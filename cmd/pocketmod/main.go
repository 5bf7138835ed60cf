// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pocketmod CLI.
// Implements: prd001-impose (CLI surface).
// See docs/ARCHITECTURE § CLI Surface, § Project Structure.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pocketmod/internal/impose"
	"github.com/pdiddy/pocketmod/internal/pdfdoc"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultLayout applies when neither the flag, the environment, nor a
// config file selects a layout.
const defaultLayout = "bottom"

// rootCmd is the base command; invoked with an input file it performs the
// conversion itself.
var rootCmd = &cobra.Command{
	Use:   "pocketmod <input.pdf>",
	Short: "Fold an 8-page PDF into a single-sheet PocketMod booklet",
	Long: `pocketmod rearranges the 8 pages of a PDF onto one landscape A4 sheet so
that printing, cutting, and folding the sheet produces a pocket-sized
booklet.

The sheet carries a 2-row by 4-column panel grid; which panel, in which
orientation, receives which page is fixed by the chosen layout table
("bottom" or "top"). Inputs must have exactly 8 pages; use the inspect
subcommand to check a candidate file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pocketmod.yaml or ~/.config/pocketmod/config.yaml)")
	rootCmd.Flags().StringP("layout", "l", "", "layout table: bottom or top (default \"bottom\")")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pocketmod")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pocketmod"))
		}
	}

	viper.SetDefault("layout", defaultLayout)
	viper.SetEnvPrefix("POCKETMOD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// writeFormatted renders v to stdout as yaml or json. Text rendering is
// command-specific and stays with each subcommand.
func writeFormatted(format string, v any) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q: use text, yaml, or json", format)
}

func runConvert(cmd *cobra.Command, args []string) error {
	layout, _ := cmd.Flags().GetString("layout")
	if layout == "" {
		layout = viper.GetString("layout")
	}

	_, err := impose.Convert(pdfdoc.New(), args[0], layout, os.Stdout)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Conversion failures already explained themselves on stdout;
		// everything else (flag misuse, bad arguments) is reported here.
		if !impose.IsConvertError(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			fmt.Fprintln(os.Stderr, "Run 'pocketmod --help' for usage.")
		}
		os.Exit(1)
	}
}

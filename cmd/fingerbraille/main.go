// Command fingerbraille decodes, encodes and replays six-key finger braille.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/fingerbraille"
	"github.com/npillmayer/fingerbraille/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var (
	configPath string
	tableFile  string
	verbose    bool
)

var traceKeys = []string{
	"fingerbraille",
	"fingerbraille.tabfile",
	"fingerbraille.transcribe",
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "fingerbraille",
	Short:         "Six-key finger braille (指点字) to kana",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVarP(&tableFile, "table", "t", "", "Braille table file (overrides the configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug tracing")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fingerbraille:", err)
		os.Exit(1)
	}
}

// setup loads the configuration, sets trace levels and loads the table.
func setup() (*config.Config, *fingerbraille.Table, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if tableFile != "" {
		cfg.TableFile = tableFile
	}
	level := cfg.TraceLevel
	if verbose {
		level = "debug"
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(level))
	}
	table, err := cfg.Table()
	if err != nil {
		return nil, nil, err
	}
	return cfg, table, nil
}

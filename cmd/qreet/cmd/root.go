package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/qreet/internal/config"
	"github.com/rezonia/qreet/internal/logger"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	configFile   string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qreet",
	Short: "Encode and decode EET receipt lottery codes",
	Long: `qreet builds and reads the numeric code printed as a QR symbol on
Czech EET receipts for the receipt lottery.

The code carries:
  - Proof code: FIK, or BKP when the receipt was issued offline
  - Taxpayer id (DIC), optional
  - Sales mode: normal or simplified
  - Sale time to the minute
  - Amount in hellers

Examples:
  # Encode a receipt
  qreet encode --bkp 6455B192-D697186A --tax-id CZ7900110063 --amount 34113 --time "2017-05-06 14:01"

  # Decode codes
  qreet decode 24017050614017900110063168333761836002264103411300 -f table

  # Draw a code as a QR symbol
  qreet render 2101705061401168333761836002264103411300 -o receipt.png

  # Start the HTTP API
  qreet serve`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./qreet.yaml or ./config/qreet.yaml)")
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	level := cfg.App.LogLevel
	if verbose {
		level = "debug"
	}
	log = logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})

	switch outputFormat {
	case "json", "table":
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	return nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(rootCmd.ErrOrStderr(), format, args...)
	}
}

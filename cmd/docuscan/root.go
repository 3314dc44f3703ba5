package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "docuscan",
	Short: "Classify and extract structured fields from scanned documents",
	Long: `docuscan takes OCR output from scanned documents, identifies the
document type and extracts its fields with per-field confidence scores.

Features:
  - Classify Aadhaar, PAN, payment cards, passports, invoices and more
  - Checksum validation (Luhn, Verhoeff) for extracted identifiers
  - Masked output for sensitive numbers
  - Tesseract OCR for image inputs
  - HTTP API for service deployments`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.docuscan.yaml)")
	rootCmd.PersistentFlags().Float64("confidence-threshold", 0.8, "minimum extraction confidence for a success result")
	rootCmd.PersistentFlags().String("languages", "eng", "OCR languages (e.g. eng, eng+hin)")
	rootCmd.PersistentFlags().StringSlice("types", []string{}, "restrict classification to these document type ids (comma-separated)")
	rootCmd.PersistentFlags().String("format", "json", "output format (json, yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	// Bind flags to viper
	_ = viper.BindPFlag("confidence-threshold", rootCmd.PersistentFlags().Lookup("confidence-threshold"))
	_ = viper.BindPFlag("ocr-languages", rootCmd.PersistentFlags().Lookup("languages"))
	_ = viper.BindPFlag("allowed-types", rootCmd.PersistentFlags().Lookup("types"))
	_ = viper.BindPFlag("output-format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".docuscan" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".docuscan")
	}

	// Read environment variables with DOCUSCAN prefix
	viper.SetEnvPrefix("DOCUSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}


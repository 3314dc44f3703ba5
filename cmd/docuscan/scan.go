package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/platinummonkey/docuscan/internal/config"
	"github.com/platinummonkey/docuscan/internal/logger"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/pipeline"
	"github.com/platinummonkey/docuscan/internal/render"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [fragments.json]",
	Short: "Scan a document and extract its fields",
	Long: `Classify a document and extract its fields from recognized text.

Input is either a JSON file of OCR fragments (an array of objects with
"text", "confidence" and optional box coordinates) or an image file via
--image, which is run through Tesseract first.

The result is one of:
  success  - document type detected, fields extracted above the threshold
  unclear  - low-confidence input or extraction; raw text is included
  error    - no usable text reached the pipeline

Examples:
  # Scan pre-recognized fragments
  docuscan scan fragments.json

  # Scan an image with Tesseract
  docuscan scan --image card.png

  # Restrict the type search and emit YAML
  docuscan scan fragments.json --types aadhaar,pan --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("image", "", "image file to OCR before scanning")
}

func runScan(cmd *cobra.Command, args []string) error {
	log, err := logger.New(&logger.Config{
		Level:  viper.GetString("log-level"),
		Format: "console",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	imagePath, _ := cmd.Flags().GetString("image")
	if imagePath == "" && len(args) == 0 {
		return fmt.Errorf("either a fragments file or --image is required")
	}

	var fragments []ocr.Fragment
	if imagePath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		engine := ocr.NewTesseractEngine(log)
		fragments, err = engine.Recognize(ctx, imagePath, strings.Split(cfg.OCRLanguages, "+"))
		if errors.Is(err, ocr.ErrNoText) {
			report := render.FromResult(pipeline.Error{
				Kind:   pipeline.OcrProcessingFailed,
				Detail: "no text recognized in " + imagePath,
			})
			return writeReport(report, cfg.OutputFormat)
		}
		if err != nil {
			return fmt.Errorf("OCR failed: %w", err)
		}
	} else {
		fragments, err = readFragments(args[0])
		if err != nil {
			return fmt.Errorf("failed to read fragments: %w", err)
		}
	}

	scanner := pipeline.New(pipeline.Config{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		AllowedLanguages:    strings.Split(cfg.OCRLanguages, "+"),
	}, log)

	report := render.FromResult(scanner.Scan(fragments, cfg.AllowedDocTypes()))
	return writeReport(report, cfg.OutputFormat)
}

// fragmentFile is the on-disk fragment shape accepted by scan.
type fragmentFile struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
}

func readFragments(path string) ([]ocr.Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []fragmentFile
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid fragments file %s: %w", path, err)
	}

	fragments := make([]ocr.Fragment, len(entries))
	for i, e := range entries {
		fragments[i] = ocr.Fragment{
			Text:       e.Text,
			Confidence: e.Confidence,
			Box:        ocr.Box{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height},
		}
	}
	return fragments, nil
}

func writeReport(report render.Report, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = yaml.Marshal(report)
	default:
		data, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg := &config.Config{
		ConfidenceThreshold: viper.GetFloat64("confidence-threshold"),
		OCRLanguages:        viper.GetString("ocr-languages"),
		AllowedTypes:        viper.GetStringSlice("allowed-types"),
		OutputFormat:        viper.GetString("output-format"),
		LogLevel:            viper.GetString("log-level"),
		LogFormat:           "console",
		ListenAddr:          viper.GetString("listen-addr"),
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

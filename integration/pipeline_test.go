package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/platinummonkey/docuscan/internal/config"
	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/extract"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/pipeline"
)

// TestConfigPipelineIntegration drives the pipeline with a
// file-loaded configuration
func TestConfigPipelineIntegration(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
confidence-threshold: 0.85
ocr-languages: "eng"
allowed-types:
  - aadhaar
  - pan
log-level: info
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ConfidenceThreshold != 0.85 {
		t.Errorf("Expected confidence threshold 0.85, got %f", cfg.ConfidenceThreshold)
	}

	allowed := cfg.AllowedDocTypes()
	if len(allowed) != 2 {
		t.Fatalf("Expected 2 allowed types, got %d", len(allowed))
	}

	scanner := pipeline.New(pipeline.Config{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
	}, nil)

	// An Aadhaar scan is allowed by this config and should succeed.
	fragments := []ocr.Fragment{
		{Text: "Government of India", Confidence: 0.9},
		{Text: "2341 2341 2346", Confidence: 0.95},
		{Text: "John Doe", Confidence: 0.9},
	}
	result := scanner.Scan(fragments, allowed)
	success, ok := result.(pipeline.Success)
	if !ok {
		t.Fatalf("Expected success, got %#v", result)
	}
	if success.Document.DocType() != doctype.Aadhaar {
		t.Errorf("Expected aadhaar, got %s", success.Document.DocType().ID())
	}

	// A card is valid input but excluded by the allowed set, so the
	// pipeline must not report it as a credit card.
	cardResult := scanner.Scan([]ocr.Fragment{{Text: "4111111111111111", Confidence: 0.95}}, allowed)
	if s, ok := cardResult.(pipeline.Success); ok {
		if s.Document.DocType() == doctype.CreditCard {
			t.Error("Excluded type must not be detected")
		}
	}
}

// TestHOCRPipelineIntegration feeds parsed hOCR straight into the
// pipeline
func TestHOCRPipelineIntegration(t *testing.T) {
	hocr := `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<body>
<div class="ocr_page" title="bbox 0 0 800 600">
<div class="ocr_carea" title="bbox 10 10 790 590">
<p class="ocr_par" title="bbox 10 10 790 100">
<span class="ocr_line" title="bbox 10 10 400 40">
<span class="ocrx_word" title="bbox 10 10 120 40; x_wconf 92">Government</span>
<span class="ocrx_word" title="bbox 130 10 160 40; x_wconf 95">of</span>
<span class="ocrx_word" title="bbox 170 10 250 40; x_wconf 93">India</span>
</span>
<span class="ocr_line" title="bbox 10 50 400 80">
<span class="ocrx_word" title="bbox 10 50 110 80; x_wconf 96">2341</span>
<span class="ocrx_word" title="bbox 120 50 220 80; x_wconf 95">2341</span>
<span class="ocrx_word" title="bbox 230 50 330 80; x_wconf 94">2346</span>
</span>
<span class="ocr_line" title="bbox 10 90 400 120">
<span class="ocrx_word" title="bbox 10 90 110 120; x_wconf 91">John</span>
<span class="ocrx_word" title="bbox 120 90 200 120; x_wconf 90">Doe</span>
</span>
</p>
</div>
</div>
</body>
</html>`

	fragments, err := ocr.ParseHOCR(hocr, []string{"eng"})
	if err != nil {
		t.Fatalf("Failed to parse hOCR: %v", err)
	}
	if len(fragments) != 3 {
		t.Fatalf("Expected 3 line fragments, got %d", len(fragments))
	}

	scanner := pipeline.New(pipeline.Config{}, nil)
	result := scanner.Scan(fragments, nil)

	success, ok := result.(pipeline.Success)
	if !ok {
		t.Fatalf("Expected success, got %#v", result)
	}

	aadhaar, ok := success.Document.(*extract.Aadhaar)
	if !ok {
		t.Fatalf("Expected aadhaar document, got %T", success.Document)
	}
	if aadhaar.Number.Value != "234123412346" {
		t.Errorf("Expected number 234123412346, got %q", aadhaar.Number.Value)
	}
	if aadhaar.MaskedNumber() != "XXXX-XXXX-2346" {
		t.Errorf("Expected masked XXXX-XXXX-2346, got %q", aadhaar.MaskedNumber())
	}
}

// TestCustomValidatorIntegration wires a custom validator through the
// whole pipeline
func TestCustomValidatorIntegration(t *testing.T) {
	seen := ""
	scanner := pipeline.New(pipeline.Config{
		CustomValidators: map[string]func(string) bool{
			"pan": func(id string) bool {
				seen = id
				return id == "ABCDE1234F"
			},
		},
	}, nil)

	result := scanner.Scan([]ocr.Fragment{{Text: "ABCDE1234F", Confidence: 0.95}}, nil)
	if _, ok := result.(pipeline.Success); !ok {
		t.Fatalf("Expected success, got %#v", result)
	}
	if seen != "ABCDE1234F" {
		t.Errorf("Validator saw %q, expected the extracted PAN", seen)
	}
}

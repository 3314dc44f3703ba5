package ocr

import (
	"context"
	"fmt"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/platinummonkey/docuscan/internal/logger"
)

// TesseractEngine implements Engine using a local Tesseract installation
// via gosseract. Each Recognize call creates its own client, so the
// engine is safe for concurrent use.
type TesseractEngine struct {
	logger *logger.Logger
}

// NewTesseractEngine creates a Tesseract-backed OCR engine.
func NewTesseractEngine(log *logger.Logger) *TesseractEngine {
	if log == nil {
		log = logger.Get()
	}
	return &TesseractEngine{logger: log}
}

// Recognize runs Tesseract over the image and parses its hOCR output
// into positioned fragments with per-word confidence.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string, languages []string) ([]Fragment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		languages = []string{"eng"}
	}

	start := time.Now()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(languages...); err != nil {
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	hocrText, err := client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("failed to get hOCR text: %w", err)
	}

	fragments, err := ParseHOCR(hocrText, languages)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}
	if len(fragments) == 0 {
		return nil, ErrNoText
	}

	e.logger.WithFields(
		"image", imagePath,
		"fragments", len(fragments),
		"mean_confidence", MeanConfidence(fragments),
		"duration", time.Since(start),
	).Info("OCR recognition completed")

	return fragments, nil
}

package ocr

import (
	"context"
	"errors"
)

// ErrNoText indicates that the engine produced no usable text for the
// image. The pipeline maps this to its OCR-processing-failed error kind
// instead of treating it as an internal failure.
var ErrNoText = errors.New("ocr: no text recognized")

// Engine produces text fragments from an image reference. Implementations
// must be safe for concurrent use with distinct inputs.
type Engine interface {
	// Recognize runs OCR over the image at path using the given language
	// codes (e.g. "eng") and returns the recognized fragments. An image
	// with no recognizable text returns ErrNoText.
	Recognize(ctx context.Context, imagePath string, languages []string) ([]Fragment, error)
}

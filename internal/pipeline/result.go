package pipeline

import "github.com/platinummonkey/docuscan/internal/extract"

// ErrorKind enumerates the terminal error outcomes of a scan.
type ErrorKind string

// Scan error kinds.
const (
	// OcrProcessingFailed means no usable text reached the pipeline.
	OcrProcessingFailed ErrorKind = "ocr_processing_failed"

	// GenericError is an unexpected internal failure, always carrying a
	// message.
	GenericError ErrorKind = "generic_error"
)

// Result is the tagged outcome of one pipeline run: exactly one of the
// three variants. Unclear is a first-class low-confidence outcome, not
// an error.
type Result interface {
	isResult()
}

// Success carries a fully-populated document record.
type Success struct {
	Document extract.Document
}

func (Success) isResult() {}

// Unclear carries the joined raw text and the confidence that fell
// short of the gate. Callers decide whether to retry or surface the
// raw text.
type Unclear struct {
	RawText    string
	Confidence float64
}

func (Unclear) isResult() {}

// Error is a terminal failure with a kind and optional detail.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (Error) isResult() {}

// Package pipeline orchestrates one document scan: classification,
// type-specific field extraction, confidence gating and tagged result
// construction. The pipeline is stateless and deterministic; every run
// works on its own inputs and a Scanner is safe for concurrent use.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/platinummonkey/docuscan/internal/classify"
	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/extract"
	"github.com/platinummonkey/docuscan/internal/logger"
	"github.com/platinummonkey/docuscan/internal/ocr"
)

// DefaultConfidenceThreshold gates extractions when the caller does not
// configure one.
const DefaultConfidenceThreshold = 0.8

// Config is the per-scanner configuration surface.
type Config struct {
	// ConfidenceThreshold demotes extractions below it to Unclear.
	ConfidenceThreshold float64

	// AllowedLanguages are the OCR language codes requested from the
	// engine when the caller scans an image rather than fragments.
	AllowedLanguages []string

	// CustomValidators maps a document-type machine id to an extra
	// predicate run against the extracted primary identifier. A failing
	// predicate demotes the result to Unclear.
	CustomValidators map[string]func(string) bool
}

// Scanner runs the scan pipeline. The zero value is not usable; create
// one with New.
type Scanner struct {
	cfg    Config
	logger *logger.Logger
}

// New creates a Scanner with the given configuration, applying
// defaults for unset fields.
func New(cfg Config, log *logger.Logger) *Scanner {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if len(cfg.AllowedLanguages) == 0 {
		cfg.AllowedLanguages = []string{"eng"}
	}
	if log == nil {
		log = logger.Get()
	}
	return &Scanner{cfg: cfg, logger: log}
}

// Scan classifies the fragments against the allowed types, extracts a
// document record of the detected type and gates it on confidence. A
// nil or empty allowed set means all types.
func (s *Scanner) Scan(fragments []ocr.Fragment, allowed []doctype.Type) Result {
	scanID := uuid.NewString()
	log := s.logger.WithScanID(scanID)

	if len(fragments) == 0 {
		log.Warn("scan received no fragments")
		return Error{Kind: OcrProcessingFailed, Detail: "no text fragments"}
	}

	detected, classified := s.Classify(fragments, allowed)
	meanConf := ocr.MeanConfidence(fragments)

	if !classified {
		// Unclassified and weak input: do not attempt extraction.
		if meanConf < s.cfg.ConfidenceThreshold {
			log.WithFields("mean_confidence", meanConf).Info("unclassified low-confidence input")
			return Unclear{RawText: ocr.JoinText(fragments), Confidence: meanConf}
		}
		detected = doctype.Generic
	}

	log = log.WithDocumentType(detected.ID())

	doc := extract.Extract(detected, fragments)
	if doc == nil {
		log.Info("extraction found no mandatory anchor field")
		return Unclear{RawText: ocr.JoinText(fragments), Confidence: meanConf}
	}

	if !s.customValid(doc) {
		log.Info("custom validator rejected extracted identifier")
		return Unclear{RawText: ocr.JoinText(fragments), Confidence: doc.OverallConfidence()}
	}

	if doc.OverallConfidence() < s.cfg.ConfidenceThreshold {
		log.WithFields(
			"confidence", doc.OverallConfidence(),
			"threshold", s.cfg.ConfidenceThreshold,
		).Info("extraction below confidence threshold")
		return Unclear{RawText: ocr.JoinText(fragments), Confidence: doc.OverallConfidence()}
	}

	log.WithFields("confidence", doc.OverallConfidence()).Info("scan succeeded")
	return Success{Document: doc}
}

// Classify exposes the classification stage for callers that want the
// detected type without extraction.
func (s *Scanner) Classify(fragments []ocr.Fragment, allowed []doctype.Type) (doctype.Type, bool) {
	return classify.Classify(fragments, allowed)
}

// Extract exposes the extraction stage for callers that already know
// the document type. Returns nil when the type's mandatory anchor
// field is missing.
func (s *Scanner) Extract(dt doctype.Type, fragments []ocr.Fragment) extract.Document {
	return extract.Extract(dt, fragments)
}

// customValid applies a configured custom validator for the document's
// type, if any, to its primary identifier.
func (s *Scanner) customValid(doc extract.Document) bool {
	if len(s.cfg.CustomValidators) == 0 {
		return true
	}
	pred, ok := s.cfg.CustomValidators[doc.DocType().ID()]
	if !ok {
		return true
	}
	id := doc.Identifier()
	if id == "" {
		return true
	}
	return pred(id)
}

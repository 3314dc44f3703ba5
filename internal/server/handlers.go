package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/render"
	"github.com/platinummonkey/docuscan/internal/validate"
)

// maxBodyBytes bounds request bodies; OCR fragment payloads for a
// single page stay well under this.
const maxBodyBytes = 4 << 20

// scanRequest is the POST /v1/scan body.
type scanRequest struct {
	Fragments    []fragmentPayload `json:"fragments"`
	AllowedTypes []string          `json:"allowed_types,omitempty"`
}

// fragmentPayload is one recognized text fragment with layout info.
type fragmentPayload struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
}

// validateRequest is the POST /v1/validate body.
type validateRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// validateResponse reports a single identifier check. Brand and Masked
// are set for card numbers only when the number is valid.
type validateResponse struct {
	Kind   string `json:"kind"`
	Valid  bool   `json:"valid"`
	Brand  string `json:"brand,omitempty"`
	Masked string `json:"masked,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "docuscan"})
}

// handleScan runs the full pipeline on posted fragments.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	allowed, err := resolveTypes(req.AllowedTypes)
	if err != "" {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fragments := make([]ocr.Fragment, len(req.Fragments))
	for i, f := range req.Fragments {
		fragments[i] = ocr.Fragment{
			Text:       f.Text,
			Confidence: f.Confidence,
			Box:        ocr.Box{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
		}
	}

	report := render.FromResult(s.scanner.Scan(fragments, allowed))

	status := http.StatusOK
	if report.Status == render.StatusError {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, report)
}

// handleValidate checks a single identifier without running the
// pipeline.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := validateResponse{Kind: strings.ToLower(req.Kind)}
	switch resp.Kind {
	case "aadhaar":
		resp.Valid = validate.IsAadhaar(req.Value)
		if resp.Valid {
			resp.Masked = validate.MaskAadhaar(req.Value)
		}
	case "pan":
		resp.Valid = validate.IsPAN(req.Value)
		if resp.Valid {
			resp.Masked = validate.MaskPAN(req.Value)
		}
	case "card":
		resp.Valid = validate.IsCardNumber(req.Value)
		if resp.Valid {
			resp.Brand = string(validate.CardBrand(req.Value))
			resp.Masked = validate.MaskCard(req.Value)
		}
	case "passport":
		resp.Valid = validate.IsPassportNumber(req.Value)
	default:
		writeError(w, http.StatusBadRequest, "unknown kind, must be one of: aadhaar, pan, card, passport")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleTypes lists the classifiable document types.
func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	type typeInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	types := doctype.Classifiable()
	out := make([]typeInfo, 0, len(types))
	for _, dt := range types {
		out = append(out, typeInfo{ID: dt.ID(), Name: dt.Name()})
	}
	writeJSON(w, http.StatusOK, out)
}

// requestLogger tags each request with an id and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		log := s.logger.WithFields(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		log.Debug("request received")
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// resolveTypes maps type ids to document types; the second return is a
// non-empty error message on an unknown id.
func resolveTypes(ids []string) ([]doctype.Type, string) {
	if len(ids) == 0 {
		return nil, ""
	}
	types := make([]doctype.Type, 0, len(ids))
	for _, id := range ids {
		dt, ok := doctype.FromID(strings.ToLower(strings.TrimSpace(id)))
		if !ok {
			return nil, "unknown document type: " + id
		}
		types = append(types, dt)
	}
	return types, ""
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeJSON writes a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

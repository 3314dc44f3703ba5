package ocr

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	bboxRe  = regexp.MustCompile(`bbox\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)`)
	wconfRe = regexp.MustCompile(`x_wconf\s+(\d+)`)
)

// ParseHOCR parses Tesseract hOCR XML into text fragments. Each emitted
// fragment corresponds to one ocr_line span: line granularity keeps
// multi-word values (numbers with separators, names, addresses) inside a
// single fragment, which is what the downstream pattern matchers expect.
func ParseHOCR(hocrText string, languages []string) ([]Fragment, error) {
	var page hocrPage
	if err := xml.Unmarshal([]byte(hocrText), &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hOCR XML: %w", err)
	}

	language := strings.Join(languages, "+")
	var fragments []Fragment

	lineIdx := 0
	for _, pageDiv := range page.Body.Pages {
		paraIdx := 0
		for _, area := range pageDiv.Areas {
			for _, par := range area.Pars {
				for _, line := range par.Lines {
					frag, ok := lineFragment(line)
					if !ok {
						continue
					}
					frag.Line = lineIdx
					frag.Paragraph = paraIdx
					frag.Language = language
					fragments = append(fragments, frag)
					lineIdx++
				}
				paraIdx++
			}
		}
	}

	return fragments, nil
}

// lineFragment folds the words of one hOCR line into a single fragment
// with a union bounding box and mean word confidence.
func lineFragment(line hocrLine) (Fragment, bool) {
	var (
		texts   []string
		box     Box
		confSum float64
		words   int
	)

	for _, word := range line.Words {
		text := strings.TrimSpace(word.Text)
		if text == "" {
			continue
		}
		bbox := extractBBox(word.Title)
		if len(bbox) < 4 {
			continue
		}
		wb := Box{
			X:      float64(bbox[0]),
			Y:      float64(bbox[1]),
			Width:  float64(bbox[2] - bbox[0]),
			Height: float64(bbox[3] - bbox[1]),
		}
		if words == 0 {
			box = wb
		} else {
			box = box.Union(wb)
		}
		texts = append(texts, text)
		confSum += extractConfidence(word.Title)
		words++
	}

	if words == 0 {
		return Fragment{}, false
	}

	return Fragment{
		Text: strings.Join(texts, " "),
		Box:  box,
		// Tesseract reports x_wconf on a 0-100 scale.
		Confidence: confSum / float64(words) / 100.0,
	}, true
}

// extractBBox extracts bounding box coordinates from an hOCR title
// attribute. Format: "bbox x0 y0 x1 y1" or "bbox x0 y0 x1 y1; x_wconf 95"
func extractBBox(title string) []int {
	matches := bboxRe.FindStringSubmatch(title)
	if len(matches) != 5 {
		return nil
	}

	bbox := make([]int, 4)
	for i := 0; i < 4; i++ {
		val, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return nil
		}
		bbox[i] = val
	}
	return bbox
}

// extractConfidence extracts the x_wconf score from an hOCR title
// attribute.
func extractConfidence(title string) float64 {
	matches := wconfRe.FindStringSubmatch(title)
	if len(matches) != 2 {
		return 0.0
	}
	conf, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0.0
	}
	return conf
}

// hocrPage represents the hOCR XML document structure.
type hocrPage struct {
	XMLName xml.Name `xml:"html"`
	Title   string   `xml:"head>title"`
	Body    hocrBody `xml:"body"`
}

type hocrBody struct {
	Pages []hocrPageDiv `xml:"div"`
}

// hocrPageDiv represents an ocr_page div (page container).
type hocrPageDiv struct {
	Class string     `xml:"class,attr"`
	Title string     `xml:"title,attr"`
	Areas []hocrArea `xml:"div"`
}

// hocrArea represents an ocr_carea (content area).
type hocrArea struct {
	Class string    `xml:"class,attr"`
	Title string    `xml:"title,attr"`
	Pars  []hocrPar `xml:"p"`
}

// hocrPar represents an ocr_par (paragraph).
type hocrPar struct {
	Class string     `xml:"class,attr"`
	Title string     `xml:"title,attr"`
	Lines []hocrLine `xml:"span"`
}

// hocrLine represents an ocr_line (text line).
type hocrLine struct {
	Class string     `xml:"class,attr"`
	Title string     `xml:"title,attr"`
	Words []hocrWord `xml:"span"`
}

// hocrWord represents an ocrx_word (individual word).
type hocrWord struct {
	Class string `xml:"class,attr"`
	Title string `xml:"title,attr"`
	Text  string `xml:",chardata"`
}

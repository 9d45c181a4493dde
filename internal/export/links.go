package export

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/pdf"
)

// LinkRect is one captured anchor: its target URL and bounding box in CSS
// pixels relative to the preview node's top-left corner.
type LinkRect struct {
	URL string  `json:"url"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	W   float64 `json:"w"`
	H   float64 `json:"h"`
}

// Scale converts CSS pixels to millimeters for a capture whose preview node
// was domWidth pixels wide and is drawn at full page width.
func Scale(domWidth float64) float64 {
	if domWidth <= 0 {
		return 0
	}
	return pdf.PageWidth / domWidth
}

// PageCount returns the number of A4 pages needed for an image of the given
// height in millimeters. An image exactly k pages tall yields k pages, never
// a trailing blank one.
func PageCount(imageHeight float64) int {
	n := 0
	for offset := 0.0; offset < imageHeight; offset += pdf.PageHeight {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

// Project scales a captured rectangle from CSS pixels into millimeters.
func (l LinkRect) Project(scale float64) LinkRect {
	return LinkRect{
		URL: l.URL,
		X:   l.X * scale,
		Y:   l.Y * scale,
		W:   l.W * scale,
		H:   l.H * scale,
	}
}

// OnPage reports the rectangle's Y position within page n (zero-based) and
// whether the annotation belongs on that page. A link is attached only to the
// page its top edge lands on; a rectangle straddling a page break is not split.
func (l LinkRect) OnPage(n int) (float64, bool) {
	y := l.Y - float64(n)*pdf.PageHeight
	return y, y >= 0 && y < pdf.PageHeight
}

// annotatable filters out anchors that cannot become PDF annotations: empty
// targets and zero-area rectangles contribute nothing.
func (l LinkRect) annotatable() bool {
	return strings.TrimSpace(l.URL) != "" && l.W > 0 && l.H > 0
}

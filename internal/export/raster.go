package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/resume-builder/internal/pdf"
)

// BuildPDF paginates a capture across A4 pages. The bitmap is drawn at full
// page width on every page with a negative vertical offset, and each captured
// anchor becomes a link annotation on the page its top edge lands on.
func BuildPDF(snap *Snapshot) ([]byte, error) {
	if snap == nil || len(snap.PNG) == 0 {
		return nil, fmt.Errorf("capture snapshot is empty")
	}

	scale := Scale(snap.Width)
	if scale <= 0 {
		return nil, fmt.Errorf("capture has invalid width %.2f", snap.Width)
	}
	imageHeight := snap.Height * scale

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("capture", opts, bytes.NewReader(snap.PNG))
	if doc.Err() {
		return nil, fmt.Errorf("failed to decode capture image: %w", doc.Error())
	}

	for page := 0; page < PageCount(imageHeight); page++ {
		doc.AddPage()
		doc.ImageOptions("capture", 0, -float64(page)*pdf.PageHeight, pdf.PageWidth, imageHeight, false, opts, 0, "")

		for _, link := range snap.Links {
			if !link.annotatable() {
				continue
			}
			rect := link.Project(scale)
			if y, ok := rect.OnPage(page); ok {
				doc.LinkString(rect.X, y, rect.W, rect.H, rect.URL)
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to assemble paginated PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the raster download filename from the candidate's full
// name, replacing spaces with underscores.
func Filename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "Resume_Download1.pdf"
	}
	return strings.ReplaceAll(name, " ", "_") + "_Resume_Download1.pdf"
}

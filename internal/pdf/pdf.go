package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// A4 page geometry in millimeters.
const (
	PageWidth  = 210.0
	PageHeight = 297.0
	margin     = 15.0
)

// Generate renders resume data into a vector PDF using the drawing template
// for templateID, with the classic fallback applied for unknown ids. A nil
// style falls back to the default palette. The returned bytes are a complete
// PDF document; no partial output is ever returned on failure.
func Generate(data *types.ResumeData, templateID string, style *types.StyleSettings) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("resume data is required")
	}

	settings := types.DefaultStyleSettings()
	if style != nil {
		settings = style.WithDefaults()
	}

	doc := newDocument(data, settings)

	switch templates.Resolve(templateID) {
	case templates.Modern:
		doc.drawModern()
	case templates.Minimal:
		doc.drawMinimal()
	case templates.Professional:
		doc.drawProfessional()
	case templates.Emerald:
		doc.drawEmerald()
	case templates.Elegant:
		doc.drawElegant()
	case templates.Slate:
		doc.drawSlate()
	default:
		doc.drawClassic()
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the download filename from the candidate's full name,
// replacing spaces with underscores.
func Filename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "Resume.pdf"
	}
	return strings.ReplaceAll(name, " ", "_") + "_Resume.pdf"
}

package pdf

import "strings"

// Section title styles used by the drawing templates.

// ruledTitle draws an uppercase accent title over a soft rule.
func (d *document) ruledTitle(label string) {
	d.pdf.SetFont(d.font, "B", 11)
	d.setTextColor(d.accent)
	d.pdf.SetX(d.left)
	d.pdf.CellFormat(d.width(), 6, d.tr(strings.ToUpper(label)), "", 1, "L", false, 0, "")

	soft := BlendTowardWhite(d.accent, 0.6)
	d.pdf.SetDrawColor(soft.R, soft.G, soft.B)
	d.pdf.SetLineWidth(0.3)
	y := d.pdf.GetY()
	d.pdf.Line(d.left, y, d.right, y)
	d.pdf.Ln(2.5)
}

// plainTitle draws a small letter-spaced accent title with no rule.
func (d *document) plainTitle(label string) {
	spaced := strings.Join(strings.Split(strings.ToUpper(label), ""), " ")
	d.pdf.SetFont(d.font, "", 9)
	d.setTextColor(d.accent)
	d.pdf.SetX(d.left)
	d.pdf.CellFormat(d.width(), 5, d.tr(spaced), "", 1, "L", false, 0, "")
	d.pdf.Ln(1.5)
}

// chipTitle draws the label as white text on a filled accent chip.
func (d *document) chipTitle(label string) {
	text := d.tr(strings.ToUpper(label))
	d.pdf.SetFont(d.font, "B", 9)
	chipWidth := d.pdf.GetStringWidth(text) + 8

	d.pdf.SetFillColor(d.accent.R, d.accent.G, d.accent.B)
	y := d.pdf.GetY()
	d.pdf.Rect(d.left, y, chipWidth, 6, "F")
	d.pdf.SetXY(d.left, y)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.CellFormat(chipWidth, 6, text, "", 1, "C", false, 0, "")
	d.pdf.Ln(2)
}

// sideTitle draws a white sidebar title over a translucent rule, for the
// sidebar compositions.
func (d *document) sideTitle(label string) {
	d.pdf.SetFont(d.font, "B", 9)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetX(d.left)
	d.pdf.CellFormat(d.width(), 5, d.tr(strings.ToUpper(label)), "", 1, "L", false, 0, "")

	light := BlendTowardWhite(d.accent, 0.5)
	d.pdf.SetDrawColor(light.R, light.G, light.B)
	d.pdf.SetLineWidth(0.2)
	y := d.pdf.GetY()
	d.pdf.Line(d.left, y, d.right, y)
	d.pdf.Ln(2)
}

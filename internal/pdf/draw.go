package pdf

import (
	"bytes"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// document carries the PDF engine, the resolved palette, and the current
// column bounds for one render. All drawing templates build on its helpers so
// the section decisions stay identical; only composition differs.
type document struct {
	pdf  *gofpdf.Fpdf
	tr   func(string) string
	data *types.ResumeData

	font   string
	accent RGB
	text   RGB
	bg     RGB
	muted  RGB
	faint  RGB

	left  float64
	right float64
}

func newDocument(data *types.ResumeData, style types.StyleSettings) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(data.FullName+" — Resume", true)
	pdf.SetAutoPageBreak(true, margin)

	text := ParseHexOr(style.TextColor, RGB{31, 41, 55})
	d := &document{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		data:   data,
		font:   FontFamily(style.FontFamily),
		accent: ParseHexOr(style.AccentColor, RGB{37, 99, 235}),
		text:   text,
		bg:     ParseHexOr(style.BackgroundColor, RGB{255, 255, 255}),
		muted:  Muted(text),
		faint:  Faint(text),
		left:   margin,
		right:  PageWidth - margin,
	}

	pdf.AddPage()
	if d.bg != (RGB{255, 255, 255}) {
		pdf.SetFillColor(d.bg.R, d.bg.G, d.bg.B)
		pdf.Rect(0, 0, PageWidth, PageHeight, "F")
	}
	return d
}

func (d *document) width() float64 { return d.right - d.left }

// setColumn confines subsequent flowing output to [left, right].
func (d *document) setColumn(left, right float64) {
	d.left = left
	d.right = right
	d.pdf.SetLeftMargin(left)
	d.pdf.SetRightMargin(PageWidth - right)
	d.pdf.SetX(left)
}

func (d *document) setTextColor(c RGB) {
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

// line writes a single full-width text line in the current column.
func (d *document) line(text string, size float64, style string, c RGB) {
	d.pdf.SetFont(d.font, style, size)
	d.setTextColor(c)
	d.pdf.CellFormat(d.width(), size*0.55, d.tr(text), "", 1, "L", false, 0, "")
}

// lineCentered writes a centered text line in the current column.
func (d *document) lineCentered(text string, size float64, style string, c RGB) {
	d.pdf.SetFont(d.font, style, size)
	d.setTextColor(c)
	d.pdf.CellFormat(d.width(), size*0.55, d.tr(text), "", 1, "C", false, 0, "")
}

// paragraph wraps free text across lines in the current column.
func (d *document) paragraph(text string, size float64, c RGB) {
	d.pdf.SetFont(d.font, "", size)
	d.setTextColor(c)
	d.pdf.SetX(d.left)
	d.pdf.MultiCell(d.width(), size*0.5, d.tr(text), "", "L", false)
}

// entryHead writes a bold title with a right-aligned date label on one row.
func (d *document) entryHead(title, dates string) {
	const size = 10.5
	d.pdf.SetFont(d.font, "B", size)
	d.setTextColor(d.text)
	d.pdf.SetX(d.left)

	dateWidth := 0.0
	if dates != "" {
		d.pdf.SetFont(d.font, "", 9)
		dateWidth = d.pdf.GetStringWidth(d.tr(dates)) + 2
		d.pdf.SetFont(d.font, "B", size)
	}

	d.pdf.CellFormat(d.width()-dateWidth, 5.5, d.tr(title), "", 0, "L", false, 0, "")
	if dates != "" {
		d.pdf.SetFont(d.font, "", 9)
		d.setTextColor(d.faint)
		d.pdf.CellFormat(dateWidth, 5.5, d.tr(dates), "", 0, "R", false, 0, "")
	}
	d.pdf.Ln(5.5)
}

// linkedEntryHead is entryHead with the title as a hyperlink.
func (d *document) linkedEntryHead(title, url, dates string) {
	if url == "" {
		d.entryHead(title, dates)
		return
	}
	const size = 10.5
	d.pdf.SetFont(d.font, "B", size)
	d.setTextColor(d.accent)
	d.pdf.SetX(d.left)

	dateWidth := 0.0
	if dates != "" {
		d.pdf.SetFont(d.font, "", 9)
		dateWidth = d.pdf.GetStringWidth(d.tr(dates)) + 2
		d.pdf.SetFont(d.font, "B", size)
	}

	d.pdf.CellFormat(d.width()-dateWidth, 5.5, d.tr(title), "", 0, "L", false, 0, url)
	if dates != "" {
		d.pdf.SetFont(d.font, "", 9)
		d.setTextColor(d.faint)
		d.pdf.CellFormat(dateWidth, 5.5, d.tr(dates), "", 0, "R", false, 0, "")
	}
	d.pdf.Ln(5.5)
}

// bullets renders a bulleted list in the current column.
func (d *document) bullets(items []string, size float64, c RGB) {
	d.pdf.SetFont(d.font, "", size)
	d.setTextColor(c)
	for _, item := range items {
		d.pdf.SetX(d.left)
		d.pdf.CellFormat(4, size*0.5, d.tr("•"), "", 0, "L", false, 0, "")
		d.pdf.MultiCell(d.width()-4, size*0.5, d.tr(item), "", "L", false)
	}
}

// contactRow writes the contact and social links on one centered or
// left-aligned row, separated by dots. Email and phone become live
// annotations; plain labels stay text.
func (d *document) contactRow(links []templates.Link, size float64, c RGB, centered bool) {
	if len(links) == 0 {
		return
	}
	d.pdf.SetFont(d.font, "", size)
	d.setTextColor(c)

	const sep = "  ·  "
	total := 0.0
	for i, l := range links {
		total += d.pdf.GetStringWidth(d.tr(l.Label))
		if i > 0 {
			total += d.pdf.GetStringWidth(d.tr(sep))
		}
	}

	x := d.left
	if centered {
		x = d.left + (d.width()-total)/2
	}
	d.pdf.SetX(x)
	for i, l := range links {
		if i > 0 {
			d.pdf.CellFormat(d.pdf.GetStringWidth(d.tr(sep)), size*0.55, d.tr(sep), "", 0, "L", false, 0, "")
		}
		d.pdf.CellFormat(d.pdf.GetStringWidth(d.tr(l.Label)), size*0.55, d.tr(l.Label), "", 0, "L", false, 0, l.URL)
	}
	d.pdf.Ln(size * 0.55)
}

// avatar draws the profile image as a circle-ish inset when the URL can be
// fetched; failures skip the image rather than failing the export.
func (d *document) avatar(url string, x, y, size float64) {
	if url == "" {
		return
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return
	}

	imageType := strings.TrimPrefix(path.Ext(url), ".")
	switch strings.ToLower(imageType) {
	case "jpg", "jpeg":
		imageType = "JPG"
	case "png":
		imageType = "PNG"
	default:
		imageType = "" // let gofpdf sniff from content type registration
	}

	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	name := "avatar-" + url
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(body))
	if d.pdf.Err() {
		// undecodable image must not fail the whole export
		d.pdf.ClearError()
		return
	}
	d.pdf.ImageOptions(name, x, y, size, size, false, opts, 0, "")
}

// sectionGap advances the cursor between sections.
func (d *document) sectionGap(h float64) {
	d.pdf.Ln(h)
}

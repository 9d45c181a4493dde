package pdf

import (
	"github.com/jonathan/resume-builder/internal/templates"
)

// drawSlate renders every section as a bordered card with a shaded title bar.
func (d *document) drawSlate() {
	data := d.data

	headX := d.left
	if data.ProfileImage != "" {
		d.avatar(data.ProfileImage, d.left, margin, 22)
		headX = d.left + 28
	}
	d.pdf.SetY(margin + 2)
	d.setColumn(headX, d.right)
	d.line(data.FullName, 18, "B", d.text)
	d.contactRow(templates.ContactLinks(data), 8.5, d.muted, false)
	d.contactRow(templates.SocialLinks(data), 8.5, d.accent, false)
	d.setColumn(margin, PageWidth-margin)
	if data.ProfileImage != "" && d.pdf.GetY() < margin+26 {
		d.pdf.SetY(margin + 26)
	}
	d.pdf.Ln(4)

	if templates.HasSummary(data) {
		d.card("Summary", func() {
			d.paragraph(data.Summary, 9.5, d.text)
		})
	}
	if templates.HasExperience(data) {
		d.card("Experience", func() { d.experienceBody(false) })
	}
	if templates.HasProjects(data) {
		d.card("Projects", func() { d.projectsBody(false) })
	}
	if templates.HasEducation(data) {
		d.card("Education", func() { d.educationBody() })
	}
	if templates.HasSkills(data) {
		d.card("Skills", func() { d.skillsBody(d.text) })
	}
	if templates.HasAwards(data) {
		d.card("Awards", func() { d.awardsBody() })
	}
	if templates.HasAchievements(data) {
		d.card("Achievements", func() { d.achievementsBody() })
	}
	if templates.HasCertificates(data) {
		d.card("Certificates", func() { d.listBody(data.Certificates, d.text) })
	}
	if templates.HasLanguages(data) {
		d.card("Languages", func() { d.listBody(data.Languages, d.text) })
	}
	if templates.HasHobbies(data) {
		d.card("Hobbies", func() { d.listBody(data.Hobbies, d.text) })
	}
}

// card draws a shaded title bar, runs body inside an inset column, then
// strokes the border around whatever the body produced. The border is only
// drawn when the card stayed on one page; a card that broke across pages
// keeps its title bar and content but skips the outline.
func (d *document) card(label string, body func()) {
	const inset = 4.0
	const barHeight = 7.0

	pageBefore := d.pdf.PageNo()
	startY := d.pdf.GetY()
	shade := BlendTowardWhite(d.accent, 0.85)
	d.pdf.SetFillColor(shade.R, shade.G, shade.B)
	d.pdf.Rect(d.left, startY, d.width(), barHeight, "F")
	d.pdf.SetXY(d.left+inset, startY)
	d.pdf.SetFont(d.font, "B", 10)
	d.setTextColor(d.accent)
	d.pdf.CellFormat(d.width()-2*inset, barHeight, d.tr(label), "", 1, "L", false, 0, "")
	d.pdf.Ln(1.5)

	outerLeft, outerRight := d.left, d.right
	d.setColumn(outerLeft+inset, outerRight-inset)
	body()
	d.setColumn(outerLeft, outerRight)

	if d.pdf.PageNo() == pageBefore {
		endY := d.pdf.GetY() + 1.5
		border := BlendTowardWhite(d.accent, 0.6)
		d.pdf.SetDrawColor(border.R, border.G, border.B)
		d.pdf.SetLineWidth(0.3)
		d.pdf.Rect(d.left, startY, d.width(), endY-startY, "D")
		d.pdf.SetY(endY)
	}
	d.pdf.Ln(4)
}

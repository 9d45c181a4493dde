package pdf

import (
	"github.com/jonathan/resume-builder/internal/templates"
)

// drawProfessional renders the fixed-width accent sidebar (contact, links,
// skills, languages, hobbies) beside the wide main column.
func (d *document) drawProfessional() {
	data := d.data
	const sidebarWidth = 66.0
	const pad = 8.0

	d.pdf.SetFillColor(d.accent.R, d.accent.G, d.accent.B)
	d.pdf.Rect(0, 0, sidebarWidth, PageHeight, "F")
	// sidebar never flows onto a second page
	d.pdf.SetAutoPageBreak(false, 0)

	d.setColumn(pad, sidebarWidth-pad)
	top := margin
	if data.ProfileImage != "" {
		d.avatar(data.ProfileImage, (sidebarWidth-30)/2, top, 30)
		top += 36
	}
	d.pdf.SetY(top)
	d.line(data.FullName, 15, "B", RGB{255, 255, 255})
	d.pdf.Ln(4)

	if templates.HasContactLine(data) {
		d.sideTitle("Contact")
		for _, l := range templates.ContactLinks(data) {
			d.sideLink(l)
		}
		d.pdf.Ln(2)
	}
	if links := templates.SocialLinks(data); len(links) > 0 {
		d.sideTitle("Links")
		for _, l := range links {
			d.sideLink(l)
		}
		d.pdf.Ln(2)
	}
	if templates.HasSkills(data) {
		d.sideTitle("Skills")
		d.skillsBody(RGB{255, 255, 255})
		d.pdf.Ln(2)
	}
	if templates.HasLanguages(data) {
		d.sideTitle("Languages")
		d.listBody(data.Languages, RGB{255, 255, 255})
		d.pdf.Ln(2)
	}
	if templates.HasHobbies(data) {
		d.sideTitle("Hobbies")
		d.listBody(data.Hobbies, RGB{255, 255, 255})
	}

	// main column
	d.pdf.SetAutoPageBreak(true, margin)
	d.setColumn(sidebarWidth+pad, PageWidth-margin)
	d.pdf.SetY(margin)

	if templates.HasSummary(data) {
		d.ruledTitle("Summary")
		d.paragraph(data.Summary, 9.5, d.text)
		d.sectionGap(4)
	}
	if templates.HasExperience(data) {
		d.ruledTitle("Experience")
		d.experienceBody(false)
		d.sectionGap(2)
	}
	if templates.HasEducation(data) {
		d.ruledTitle("Education")
		d.educationBody()
		d.sectionGap(2)
	}
	if templates.HasProjects(data) {
		d.ruledTitle("Projects")
		d.projectsBody(false)
		d.sectionGap(2)
	}
	if templates.HasAwards(data) {
		d.ruledTitle("Awards")
		d.awardsBody()
		d.sectionGap(2)
	}
	if templates.HasAchievements(data) {
		d.ruledTitle("Achievements")
		d.achievementsBody()
		d.sectionGap(4)
	}
	if templates.HasCertificates(data) {
		d.ruledTitle("Certificates")
		d.listBody(data.Certificates, d.text)
	}

	d.setColumn(margin, PageWidth-margin)
}

// sideLink writes one white sidebar link line; plain labels stay text.
func (d *document) sideLink(l templates.Link) {
	d.pdf.SetFont(d.font, "", 8.5)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetX(d.left)
	d.pdf.CellFormat(d.width(), 4.5, d.tr(l.Label), "", 1, "L", false, 0, l.URL)
}

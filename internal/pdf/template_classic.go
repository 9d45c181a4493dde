package pdf

import (
	"github.com/jonathan/resume-builder/internal/templates"
)

// drawClassic renders the single-column layout: header with contact line and
// optional avatar, then sequential sections.
func (d *document) drawClassic() {
	data := d.data

	headX := d.left
	if data.ProfileImage != "" {
		d.avatar(data.ProfileImage, d.left, margin, 24)
		headX = d.left + 30
	}

	d.pdf.SetY(margin + 2)
	d.setColumn(headX, d.right)
	d.line(data.FullName, 20, "B", d.accent)
	d.contactRow(templates.ContactLinks(data), 9, d.muted, false)
	d.contactRow(templates.SocialLinks(data), 9, d.accent, false)
	d.setColumn(margin, PageWidth-margin)

	if data.ProfileImage != "" && d.pdf.GetY() < margin+28 {
		d.pdf.SetY(margin + 28)
	}
	d.pdf.SetDrawColor(d.accent.R, d.accent.G, d.accent.B)
	d.pdf.SetLineWidth(0.5)
	y := d.pdf.GetY() + 1
	d.pdf.Line(d.left, y, d.right, y)
	d.pdf.Ln(5)

	if templates.HasSummary(data) {
		d.ruledTitle("Professional Summary")
		d.paragraph(data.Summary, 9.5, d.text)
		d.sectionGap(4)
	}
	if templates.HasExperience(data) {
		d.ruledTitle("Experience")
		d.experienceBody(false)
		d.sectionGap(2)
	}
	if templates.HasProjects(data) {
		d.ruledTitle("Projects")
		d.projectsBody(false)
		d.sectionGap(2)
	}
	if templates.HasEducation(data) {
		d.ruledTitle("Education")
		d.educationBody()
		d.sectionGap(2)
	}
	if templates.HasSkills(data) {
		d.ruledTitle("Skills")
		d.skillsBody(d.text)
		d.sectionGap(4)
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
		d.sectionGap(4)
	}
	if templates.HasLanguages(data) {
		d.ruledTitle("Languages")
		d.listBody(data.Languages, d.text)
		d.sectionGap(4)
	}
	if templates.HasHobbies(data) {
		d.ruledTitle("Hobbies")
		d.listBody(data.Hobbies, d.text)
	}
}

package pdf

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/templates"
)

// drawEmerald renders the centered uppercase header with chip section titles,
// merged bullet bodies, and a three-swatch footer strip.
func (d *document) drawEmerald() {
	data := d.data

	d.pdf.SetY(margin + 4)
	if data.ProfileImage != "" {
		d.avatar(data.ProfileImage, (PageWidth-26)/2, d.pdf.GetY(), 26)
		d.pdf.SetY(d.pdf.GetY() + 30)
	}
	d.lineCentered(strings.ToUpper(data.FullName), 17, "B", d.text)
	d.pdf.Ln(1)
	d.contactRow(templates.ContactLinks(data), 8.5, d.muted, true)
	d.contactRow(templates.SocialLinks(data), 8.5, d.accent, true)
	d.pdf.Ln(6)

	if templates.HasSummary(data) {
		d.chipTitle("Summary")
		d.paragraph(data.Summary, 9.5, d.text)
		d.sectionGap(4)
	}
	if templates.HasExperience(data) {
		d.chipTitle("Experience")
		d.experienceBody(true)
		d.sectionGap(2)
	}
	if templates.HasProjects(data) {
		d.chipTitle("Projects")
		d.projectsBody(true)
		d.sectionGap(2)
	}
	if templates.HasEducation(data) {
		d.chipTitle("Education")
		d.educationBody()
		d.sectionGap(2)
	}
	if templates.HasSkills(data) {
		d.chipTitle("Skills")
		d.skillsBody(d.text)
		d.sectionGap(4)
	}
	if templates.HasAwards(data) {
		d.chipTitle("Awards")
		d.awardsBody()
		d.sectionGap(2)
	}
	if templates.HasAchievements(data) {
		d.chipTitle("Achievements")
		d.achievementsBody()
		d.sectionGap(4)
	}
	if templates.HasCertificates(data) {
		d.chipTitle("Certificates")
		d.listBody(data.Certificates, d.text)
		d.sectionGap(4)
	}
	if templates.HasLanguages(data) {
		d.chipTitle("Languages")
		d.listBody(data.Languages, d.text)
		d.sectionGap(4)
	}
	if templates.HasHobbies(data) {
		d.chipTitle("Hobbies")
		d.listBody(data.Hobbies, d.text)
	}

	// footer strip: three accent swatches, full to faint
	swatches := []RGB{d.accent, BlendTowardWhite(d.accent, 0.35), BlendTowardWhite(d.accent, 0.65)}
	const sw, sh = 12.0, 2.5
	x := (PageWidth - 3*sw - 2*3) / 2
	y := PageHeight - margin + 6
	for _, c := range swatches {
		d.pdf.SetFillColor(c.R, c.G, c.B)
		d.pdf.Rect(x, y, sw, sh, "F")
		x += sw + 3
	}
}

package pdf

import (
	"github.com/jonathan/resume-builder/internal/templates"
)

// drawMinimal renders the centered-header single column with generous
// whitespace and a two-column footer grid for languages and hobbies.
func (d *document) drawMinimal() {
	data := d.data
	wide := 24.0

	d.setColumn(wide, PageWidth-wide)
	d.pdf.SetY(margin + 10)
	d.lineCentered(data.FullName, 18, "", d.text)
	d.pdf.Ln(2)
	d.contactRow(templates.ContactLinks(data), 8.5, d.faint, true)
	d.contactRow(templates.SocialLinks(data), 8.5, d.faint, true)
	d.pdf.Ln(10)

	if templates.HasSummary(data) {
		d.plainTitle("Summary")
		d.paragraph(data.Summary, 9.5, d.text)
		d.sectionGap(8)
	}
	if templates.HasExperience(data) {
		d.plainTitle("Experience")
		d.experienceBody(false)
		d.sectionGap(6)
	}
	if templates.HasProjects(data) {
		d.plainTitle("Projects")
		d.projectsBody(false)
		d.sectionGap(6)
	}
	if templates.HasEducation(data) {
		d.plainTitle("Education")
		d.educationBody()
		d.sectionGap(6)
	}
	if templates.HasSkills(data) {
		d.plainTitle("Skills")
		d.skillsBody(d.text)
		d.sectionGap(8)
	}
	if templates.HasAwards(data) {
		d.plainTitle("Awards")
		d.awardsBody()
		d.sectionGap(6)
	}
	if templates.HasAchievements(data) {
		d.plainTitle("Achievements")
		d.achievementsBody()
		d.sectionGap(8)
	}
	if templates.HasCertificates(data) {
		d.plainTitle("Certificates")
		d.listBody(data.Certificates, d.text)
		d.sectionGap(8)
	}

	// footer grid: languages left, hobbies right, at the same baseline
	if templates.HasLanguages(data) || templates.HasHobbies(data) {
		y := d.pdf.GetY()
		half := (PageWidth - 2*wide - 10) / 2
		if templates.HasLanguages(data) {
			d.setColumn(wide, wide+half)
			d.pdf.SetY(y)
			d.plainTitle("Languages")
			d.listBody(data.Languages, d.text)
		}
		if templates.HasHobbies(data) {
			d.setColumn(wide+half+10, PageWidth-wide)
			d.pdf.SetY(y)
			d.plainTitle("Hobbies")
			d.listBody(data.Hobbies, d.text)
		}
		d.setColumn(wide, PageWidth-wide)
	}
}

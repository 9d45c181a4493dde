package pdf

import (
	"github.com/jonathan/resume-builder/internal/templates"
)

// drawModern renders the dark hero header with a two-column body: experience
// and projects on the left, education, skills, and the extras on the right.
func (d *document) drawModern() {
	data := d.data

	// hero band; height grows with the summary
	heroHeight := 42.0
	if templates.HasSummary(data) {
		heroHeight += 16
	}
	d.pdf.SetFillColor(17, 24, 39)
	d.pdf.Rect(0, 0, PageWidth, heroHeight, "F")

	headX := margin
	if data.ProfileImage != "" {
		d.avatar(data.ProfileImage, margin, 8, 26)
		headX = margin + 32
	}

	d.pdf.SetY(10)
	d.setColumn(headX, d.right)
	d.line(data.FullName, 20, "B", RGB{249, 250, 251})
	d.contactRow(templates.ContactLinks(data), 8.5, RGB{209, 213, 219}, false)
	d.contactRow(templates.SocialLinks(data), 8.5, BlendTowardWhite(d.accent, 0.4), false)

	if templates.HasSummary(data) {
		d.setColumn(margin, PageWidth-margin)
		d.pdf.SetY(heroHeight - 18)
		d.paragraph(data.Summary, 9, RGB{229, 231, 235})
	}

	const gutter = 8.0
	mainRight := margin + (PageWidth-2*margin)*0.58
	bodyTop := heroHeight + 8

	// left column
	d.setColumn(margin, mainRight)
	d.pdf.SetY(bodyTop)
	if templates.HasExperience(data) {
		d.ruledTitle("Experience")
		d.experienceBody(false)
		d.sectionGap(2)
	}
	if templates.HasProjects(data) {
		d.ruledTitle("Projects")
		d.projectsBody(false)
	}

	// right column restarts at the body top
	d.setColumn(mainRight+gutter, PageWidth-margin)
	d.pdf.SetY(bodyTop)
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

	d.setColumn(margin, PageWidth-margin)
}

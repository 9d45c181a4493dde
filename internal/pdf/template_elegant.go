package pdf

import (
	"github.com/jonathan/resume-builder/internal/templates"
)

// drawElegant renders the gradient sidebar with skill pills beside a serif-
// leaning main column.
func (d *document) drawElegant() {
	data := d.data
	const sidebarWidth = 72.0
	const pad = 8.0

	deep := RGB{
		R: int(float64(d.accent.R) * 0.55),
		G: int(float64(d.accent.G) * 0.55),
		B: int(float64(d.accent.B) * 0.55),
	}
	d.pdf.LinearGradient(0, 0, sidebarWidth, PageHeight,
		d.accent.R, d.accent.G, d.accent.B,
		deep.R, deep.G, deep.B,
		0, 0, 0, 1)
	d.pdf.SetAutoPageBreak(false, 0)

	d.setColumn(pad, sidebarWidth-pad)
	top := margin + 2
	if data.ProfileImage != "" {
		d.avatar(data.ProfileImage, (sidebarWidth-32)/2, top, 32)
		top += 38
	}
	d.pdf.SetY(top)
	d.lineCentered(data.FullName, 14, "B", RGB{255, 255, 255})
	d.pdf.Ln(5)

	if templates.HasContactLine(data) {
		d.sideTitle("Contact")
		for _, l := range templates.ContactLinks(data) {
			d.sideLink(l)
		}
		d.pdf.Ln(3)
	}
	if links := templates.SocialLinks(data); len(links) > 0 {
		d.sideTitle("Links")
		for _, l := range links {
			d.sideLink(l)
		}
		d.pdf.Ln(3)
	}
	if templates.HasSkills(data) {
		d.sideTitle("Skills")
		d.skillPills()
		d.pdf.Ln(3)
	}
	if templates.HasLanguages(data) {
		d.sideTitle("Languages")
		d.listBody(data.Languages, RGB{255, 255, 255})
		d.pdf.Ln(3)
	}
	if templates.HasHobbies(data) {
		d.sideTitle("Hobbies")
		d.listBody(data.Hobbies, RGB{255, 255, 255})
	}

	d.pdf.SetAutoPageBreak(true, margin)
	d.setColumn(sidebarWidth+pad, PageWidth-margin)
	d.pdf.SetY(margin)

	if templates.HasSummary(data) {
		d.ruledTitle("Profile")
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

// skillPills lays skills out as rounded white-on-translucent chips, wrapping
// within the sidebar column.
func (d *document) skillPills() {
	var skills []string
	if d.data.Skills.IsCategorized() {
		for _, cat := range d.data.Skills.Categories {
			skills = append(skills, cat.Skills...)
		}
	} else {
		skills = d.data.Skills.Flat
	}

	const h = 5.5
	const padX = 2.5
	const gap = 1.8
	d.pdf.SetFont(d.font, "", 7.5)

	light := BlendTowardWhite(d.accent, 0.25)
	x := d.left
	y := d.pdf.GetY()
	for _, s := range skills {
		w := d.pdf.GetStringWidth(d.tr(s)) + 2*padX
		if w > d.width() {
			w = d.width()
		}
		if x+w > d.right {
			x = d.left
			y += h + gap
		}
		d.pdf.SetFillColor(light.R, light.G, light.B)
		d.pdf.RoundedRect(x, y, w, h, 1.5, "1234", "F")
		d.pdf.SetXY(x, y)
		d.pdf.SetTextColor(255, 255, 255)
		d.pdf.CellFormat(w, h, d.tr(s), "", 0, "C", false, 0, "")
		x += w + gap
	}
	d.pdf.SetXY(d.left, y+h+gap)
}

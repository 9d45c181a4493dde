package pdf

import (
	"github.com/jonathan/resume-builder/internal/templates"
)

// Section bodies shared by the drawing templates. Titles are drawn by the
// templates themselves since their styling is part of each composition.

func (d *document) experienceBody(mergeBullets bool) {
	for _, e := range d.data.Experience {
		d.entryHead(e.Position, templates.ExperienceDateRange(e))
		d.line(templates.CompanyLine(e), 9.5, "I", d.muted)
		if mergeBullets {
			var items []string
			if e.Description != "" {
				items = append(items, e.Description)
			}
			items = append(items, e.Achievements...)
			d.bullets(items, 9.5, d.text)
		} else {
			if e.Description != "" {
				d.paragraph(e.Description, 9.5, d.text)
			}
			d.bullets(e.Achievements, 9.5, d.text)
		}
		d.pdf.Ln(2)
	}
}

func (d *document) projectsBody(mergeBullets bool) {
	for _, p := range d.data.Projects {
		d.linkedEntryHead(p.Title, p.URL, templates.ProjectDateRange(p))
		if mergeBullets {
			var items []string
			if p.Description != "" {
				items = append(items, p.Description)
			}
			items = append(items, p.Highlights...)
			d.bullets(items, 9.5, d.text)
		} else {
			if p.Description != "" {
				d.paragraph(p.Description, 9.5, d.text)
			}
			d.bullets(p.Highlights, 9.5, d.text)
		}
		if len(p.Technologies) > 0 {
			d.line(templates.JoinSkills(p.Technologies), 8.5, "I", d.muted)
		}
		d.pdf.Ln(2)
	}
}

func (d *document) educationBody() {
	for _, e := range d.data.Education {
		d.entryHead(templates.DegreeLine(e), templates.EducationDateRange(e))
		institution := e.Institution
		if e.Location != "" {
			institution += " · " + e.Location
		}
		d.line(institution, 9.5, "I", d.muted)
		if e.GPA != "" {
			d.line("GPA: "+e.GPA, 9, "", d.muted)
		}
		if e.Description != "" {
			d.paragraph(e.Description, 9.5, d.text)
		}
		d.pdf.Ln(2)
	}
}

func (d *document) skillsBody(c RGB) {
	if d.data.Skills.IsCategorized() {
		for _, cat := range d.data.Skills.Categories {
			d.line(cat.Category, 9.5, "B", c)
			d.paragraph(templates.JoinSkills(cat.Skills), 9.5, c)
			d.pdf.Ln(1)
		}
		return
	}
	d.paragraph(templates.JoinSkills(d.data.Skills.Flat), 9.5, c)
}

func (d *document) awardsBody() {
	for _, a := range d.data.Awards {
		title := a.Title
		if a.Issuer != "" {
			title += " — " + a.Issuer
		}
		d.entryHead(title, a.Date)
		if a.Description != "" {
			d.paragraph(a.Description, 9.5, d.text)
		}
		d.pdf.Ln(1)
	}
}

func (d *document) achievementsBody() {
	var items []string
	for _, a := range d.data.Achievements {
		item := a.Title
		if a.Description != "" {
			item += " — " + a.Description
		}
		if a.Date != "" {
			item += " (" + a.Date + ")"
		}
		items = append(items, item)
	}
	d.bullets(items, 9.5, d.text)
}

// listBody renders a flat string section as one joined paragraph.
func (d *document) listBody(items []string, c RGB) {
	d.paragraph(templates.JoinSkills(items), 9.5, c)
}

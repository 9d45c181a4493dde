package templates

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section-inclusion predicates. Visibility is never a stored flag: a section
// renders iff its backing data is non-empty, and every backend must consult
// these same predicates.

// HasSummary reports whether the professional summary section renders.
func HasSummary(d *types.ResumeData) bool {
	return strings.TrimSpace(d.Summary) != ""
}

// HasEducation reports whether the education section renders.
func HasEducation(d *types.ResumeData) bool {
	return len(d.Education) > 0
}

// HasSkills reports whether the skills section renders, in either shape.
func HasSkills(d *types.ResumeData) bool {
	return !d.Skills.IsEmpty()
}

// HasExperience reports whether the experience section renders.
func HasExperience(d *types.ResumeData) bool {
	return len(d.Experience) > 0
}

// HasProjects reports whether the projects section renders.
func HasProjects(d *types.ResumeData) bool {
	return len(d.Projects) > 0
}

// HasAwards reports whether the awards section renders.
func HasAwards(d *types.ResumeData) bool {
	return len(d.Awards) > 0
}

// HasAchievements reports whether the achievements section renders.
func HasAchievements(d *types.ResumeData) bool {
	return len(d.Achievements) > 0
}

// HasCertificates reports whether the certificates section renders.
func HasCertificates(d *types.ResumeData) bool {
	return len(d.Certificates) > 0
}

// HasHobbies reports whether the hobbies section renders.
func HasHobbies(d *types.ResumeData) bool {
	return len(d.Hobbies) > 0
}

// HasLanguages reports whether the languages section renders.
func HasLanguages(d *types.ResumeData) bool {
	return len(d.Languages) > 0
}

// HasContactLine reports whether any of email, phone, or address is present.
func HasContactLine(d *types.ResumeData) bool {
	return d.Email != "" || d.Phone != "" || d.Address != ""
}

// Link is a labeled hyperlink derived from the contact block.
type Link struct {
	Label string
	URL   string
}

// ContactLinks returns the contact row entries in fixed order. Email becomes a
// mailto link and phone a tel link; address is carried with an empty URL and
// renders as plain text. Absent values are skipped individually.
func ContactLinks(d *types.ResumeData) []Link {
	var links []Link
	if d.Email != "" {
		links = append(links, Link{Label: d.Email, URL: "mailto:" + d.Email})
	}
	if d.Phone != "" {
		links = append(links, Link{Label: d.Phone, URL: "tel:" + d.Phone})
	}
	if d.Address != "" {
		links = append(links, Link{Label: d.Address})
	}
	return links
}

// SocialLinks returns the social row entries in fixed order, skipping absent
// URLs individually.
func SocialLinks(d *types.ResumeData) []Link {
	var links []Link
	if d.LinkedIn != "" {
		links = append(links, Link{Label: "LinkedIn", URL: d.LinkedIn})
	}
	if d.GitHub != "" {
		links = append(links, Link{Label: "GitHub", URL: d.GitHub})
	}
	if d.Portfolio != "" {
		links = append(links, Link{Label: "Portfolio", URL: d.Portfolio})
	}
	return links
}

// JoinSkills renders a flat skill list as a ", "-joined line.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// DegreeLine renders "Degree in Field" for an education entry, omitting the
// field part when absent.
func DegreeLine(e types.Education) string {
	if e.Field == "" {
		return e.Degree
	}
	if e.Degree == "" {
		return e.Field
	}
	return e.Degree + " in " + e.Field
}

// EducationDateRange returns the date label for an education entry; currently
// enrolled entries end at "Present".
func EducationDateRange(e types.Education) string {
	return FormatDateRange(e.StartDate, e.EndDate, e.CurrentlyEnrolled)
}

// ExperienceDateRange returns the date label for an experience entry; the
// current flag forces "Present".
func ExperienceDateRange(e types.Experience) string {
	return FormatDateRange(e.StartDate, e.EndDate, e.Current)
}

// ProjectDateRange returns the date label for a project entry.
func ProjectDateRange(p types.Project) string {
	return FormatDateRange(p.StartDate, p.EndDate, false)
}

// CompanyLine renders "Company · Location" for an experience entry, omitting
// the location when absent.
func CompanyLine(e types.Experience) string {
	if e.Location == "" {
		return e.Company
	}
	return e.Company + " · " + e.Location
}

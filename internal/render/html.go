package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

// ViewData is the data structure passed to every screen template.
type ViewData struct {
	Data  *types.ResumeData
	Style types.StyleSettings
}

// Renderer renders resume data through the screen templates. One parsed
// template exists per registered template id; Render resolves unknown ids to
// classic before dispatching, so preview and export always agree on layout.
type Renderer struct {
	parsed map[templates.TemplateID]*template.Template
}

// funcMap exposes the shared derivation layer to the templates. Templates
// never re-derive inclusion rules themselves.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"hasSummary":      templates.HasSummary,
		"hasEducation":    templates.HasEducation,
		"hasSkills":       templates.HasSkills,
		"hasExperience":   templates.HasExperience,
		"hasProjects":     templates.HasProjects,
		"hasAwards":       templates.HasAwards,
		"hasAchievements": templates.HasAchievements,
		"hasCertificates": templates.HasCertificates,
		"hasHobbies":      templates.HasHobbies,
		"hasLanguages":    templates.HasLanguages,
		"hasContactLine":  templates.HasContactLine,
		"contactLinks":    templates.ContactLinks,
		"socialLinks":     templates.SocialLinks,
		"joinSkills":      templates.JoinSkills,
		"degreeLine":      templates.DegreeLine,
		"companyLine":     templates.CompanyLine,
		"eduRange":        templates.EducationDateRange,
		"expRange":        templates.ExperienceDateRange,
		"projRange":       templates.ProjectDateRange,
		"upper":           strings.ToUpper,
		"safeURL":         func(u string) template.URL { return template.URL(u) },
	}
}

// NewRenderer parses the embedded screen templates.
func NewRenderer() (*Renderer, error) {
	parsed := make(map[templates.TemplateID]*template.Template, len(templates.All()))
	for _, id := range templates.All() {
		name := fmt.Sprintf("templates/%s.gohtml", id)
		tmpl, err := template.New(string(id) + ".gohtml").Funcs(funcMap()).ParseFS(templateFiles, name)
		if err != nil {
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to parse template %s", id),
				Cause:   err,
			}
		}
		parsed[id] = tmpl
	}
	return &Renderer{parsed: parsed}, nil
}

// Render projects resume data and style settings through the template
// identified by templateID, applying the classic fallback for unknown ids.
// The result is a complete standalone HTML document.
func (r *Renderer) Render(data *types.ResumeData, templateID string, style types.StyleSettings) (string, error) {
	if data == nil {
		return "", &RenderError{Message: "resume data is nil"}
	}

	id := templates.Resolve(templateID)
	tmpl, ok := r.parsed[id]
	if !ok {
		// Resolve guarantees a registered id; a miss means the embed set and
		// the registry drifted apart.
		return "", &RenderError{Message: fmt.Sprintf("no parsed template for %s", id)}
	}

	view := ViewData{
		Data:  data,
		Style: style.WithDefaults(),
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, view); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute template %s", id),
			Cause:   err,
		}
	}
	return result.String(), nil
}

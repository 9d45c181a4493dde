package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

func fixtureData() *types.ResumeData {
	return &types.ResumeData{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Address:  "Berlin, Germany",
		LinkedIn: "https://linkedin.com/in/janedoe",
		GitHub:   "https://github.com/janedoe",
		Summary:  "Backend engineer with a focus on data-heavy services.",
		Education: []types.Education{
			{
				Institution: "TU Berlin",
				Degree:      "BSc",
				Field:       "Computer Science",
				StartDate:   "2015-10-01",
				EndDate:     "2019-09-30",
				GPA:         "1.3",
			},
		},
		Experience: []types.Experience{
			{
				Company:      "Acme GmbH",
				Position:     "Senior Engineer",
				Location:     "Berlin",
				StartDate:    "2021-03-01",
				Current:      true,
				Description:  "Owns the billing platform.",
				Achievements: []string{"Cut invoice latency by 40%", "Led the v2 migration"},
			},
		},
		Projects: []types.Project{
			{
				Title:        "resume-builder",
				Description:  "Structured resume rendering service.",
				URL:          "https://github.com/janedoe/resume-builder",
				Technologies: []string{"Go", "PostgreSQL"},
				StartDate:    "2022-01-01",
				EndDate:      "2022-06-01",
			},
		},
		Awards:       []types.Award{{Title: "Engineer of the Year", Issuer: "Acme", Date: "2023"}},
		Achievements: []types.Achievement{{Title: "Conference talk", Date: "2024"}},
		Skills: types.SkillList{Categories: []types.SkillCategory{
			{Category: "Languages", Skills: []string{"Go", "SQL"}},
			{Category: "Infrastructure", Skills: []string{"Kubernetes", "Terraform"}},
		}},
		Certificates: []string{"CKA"},
		Languages:    []string{"English", "German"},
		Hobbies:      []string{"Climbing"},
	}
}

func TestGenerateAllTemplates(t *testing.T) {
	data := fixtureData()

	for _, id := range templates.All() {
		t.Run(string(id), func(t *testing.T) {
			out, err := Generate(data, string(id), nil)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output must be a PDF document")
		})
	}
}

func TestGenerateNilData(t *testing.T) {
	out, err := Generate(nil, string(templates.Classic), nil)
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestGenerateUnknownTemplateFallsBack(t *testing.T) {
	data := fixtureData()

	out, err := Generate(data, "holographic", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenerateWithCustomStyle(t *testing.T) {
	data := fixtureData()
	style := &types.StyleSettings{
		FontFamily:      "Georgia",
		AccentColor:     "#ff6600",
		BackgroundColor: "#fafaf5",
		TextColor:       "#222222",
		AccentStrength:  60,
	}

	out, err := Generate(data, string(templates.Elegant), style)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenerateSparseData(t *testing.T) {
	// name only; every section predicate is false
	data := &types.ResumeData{FullName: "Jane Doe"}

	for _, id := range templates.All() {
		t.Run(string(id), func(t *testing.T) {
			out, err := Generate(data, string(id), nil)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{name: "two words", fullName: "Jane Doe", want: "Jane_Doe_Resume.pdf"},
		{name: "three words", fullName: "Jane van Doe", want: "Jane_van_Doe_Resume.pdf"},
		{name: "empty", fullName: "", want: "Resume.pdf"},
		{name: "whitespace only", fullName: "   ", want: "Resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.fullName))
		})
	}
}

package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestSectionPredicates_EmptyData(t *testing.T) {
	d := &types.ResumeData{FullName: "Jane Doe"}

	assert.False(t, HasSummary(d))
	assert.False(t, HasEducation(d))
	assert.False(t, HasSkills(d))
	assert.False(t, HasExperience(d))
	assert.False(t, HasProjects(d))
	assert.False(t, HasAwards(d))
	assert.False(t, HasAchievements(d))
	assert.False(t, HasCertificates(d))
	assert.False(t, HasHobbies(d))
	assert.False(t, HasLanguages(d))
	assert.False(t, HasContactLine(d))
}

func TestSectionPredicates_PopulatedData(t *testing.T) {
	d := &types.ResumeData{
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Summary:      "Engineer.",
		Education:    []types.Education{{Institution: "State U"}},
		Skills:       types.SkillList{Flat: []string{"Go"}},
		Experience:   []types.Experience{{Company: "Acme", Position: "Dev"}},
		Projects:     []types.Project{{Title: "Widget"}},
		Awards:       []types.Award{{Title: "Best"}},
		Achievements: []types.Achievement{{Title: "Did it"}},
		Certificates: []string{"AWS SA"},
		Hobbies:      []string{"Chess"},
		Languages:    []string{"English"},
	}

	assert.True(t, HasSummary(d))
	assert.True(t, HasEducation(d))
	assert.True(t, HasSkills(d))
	assert.True(t, HasExperience(d))
	assert.True(t, HasProjects(d))
	assert.True(t, HasAwards(d))
	assert.True(t, HasAchievements(d))
	assert.True(t, HasCertificates(d))
	assert.True(t, HasHobbies(d))
	assert.True(t, HasLanguages(d))
	assert.True(t, HasContactLine(d))
}

func TestHasSummary_WhitespaceOnly(t *testing.T) {
	d := &types.ResumeData{Summary: "   \n"}
	assert.False(t, HasSummary(d))
}

func TestHasSkills_CategorizedShape(t *testing.T) {
	d := &types.ResumeData{
		Skills: types.SkillList{Categories: []types.SkillCategory{{Category: "Cloud", Skills: []string{"AWS"}}}},
	}
	assert.True(t, HasSkills(d))
}

func TestContactLinks(t *testing.T) {
	d := &types.ResumeData{Email: "jane@example.com", Address: "Springfield"}
	links := ContactLinks(d)

	require.Len(t, links, 2)
	assert.Equal(t, "mailto:jane@example.com", links[0].URL)
	assert.Equal(t, "Springfield", links[1].Label)
	assert.Empty(t, links[1].URL)
}

func TestSocialLinks_SkipsAbsentIndividually(t *testing.T) {
	d := &types.ResumeData{GitHub: "https://github.com/janedoe"}
	links := SocialLinks(d)

	require.Len(t, links, 1)
	assert.Equal(t, "GitHub", links[0].Label)
	assert.Equal(t, "https://github.com/janedoe", links[0].URL)
}

func TestDegreeLine(t *testing.T) {
	assert.Equal(t, "BSc in Computer Science", DegreeLine(types.Education{Degree: "BSc", Field: "Computer Science"}))
	assert.Equal(t, "BSc", DegreeLine(types.Education{Degree: "BSc"}))
	assert.Equal(t, "Computer Science", DegreeLine(types.Education{Field: "Computer Science"}))
}

func TestCompanyLine(t *testing.T) {
	assert.Equal(t, "Acme · Springfield", CompanyLine(types.Experience{Company: "Acme", Location: "Springfield"}))
	assert.Equal(t, "Acme", CompanyLine(types.Experience{Company: "Acme"}))
}

func TestJoinSkills(t *testing.T) {
	assert.Equal(t, "Go, SQL, Docker", JoinSkills([]string{"Go", "SQL", "Docker"}))
	assert.Equal(t, "", JoinSkills(nil))
}

func TestExperienceDateRange_CurrentFlag(t *testing.T) {
	e := types.Experience{StartDate: "2021-03-01", EndDate: "2022-06-01", Current: true}
	assert.Equal(t, "Mar 2021 - Present", ExperienceDateRange(e))
}

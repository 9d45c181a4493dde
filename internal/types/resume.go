// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resume is a stored resume record. The structured document itself lives in
// Data; the remaining fields are row metadata.
type Resume struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Title      string     `json:"title"`
	TemplateID string     `json:"template_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	Data       ResumeData `json:"data"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ResumeData is the structured resume document. Every section is optional;
// renderers show a section only when its backing data is non-empty.
type ResumeData struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty"`
	Portfolio    string `json:"portfolio,omitempty"`
	GitHub       string `json:"github,omitempty"`

	Summary string `json:"summary,omitempty"`

	Education    []Education   `json:"education,omitempty"`
	Skills       SkillList     `json:"skills,omitempty"`
	Experience   []Experience  `json:"experience,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
	Certificates []string      `json:"certificates,omitempty"`
	Hobbies      []string      `json:"hobbies,omitempty"`
	Languages    []string      `json:"languages,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution       string `json:"institution"`
	Degree            string `json:"degree,omitempty"`
	Field             string `json:"field,omitempty"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	CurrentlyEnrolled bool   `json:"currently_enrolled,omitempty"`
	GPA               string `json:"gpa,omitempty"`
	Description       string `json:"description,omitempty"`
	Location          string `json:"location,omitempty"`
}

// Experience is a single work experience entry. When Current is true the end
// date is ignored and rendered as "Present".
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Repository   string   `json:"repository,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Award is a single award entry.
type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Achievement is a single achievement entry.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// SkillCategory is a named group of skills within a categorized skill list.
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// SkillList holds skills in one of two mutually exclusive wire shapes: a flat
// array of skill names, or an array of categories. The shape is decided by
// inspecting the first element for a "category" key; mixing shapes within one
// resume is not supported and resolves to whichever shape the first element
// implies.
type SkillList struct {
	Flat       []string
	Categories []SkillCategory
}

// IsCategorized reports whether the list carries categorized skills.
func (s SkillList) IsCategorized() bool {
	return len(s.Categories) > 0
}

// IsEmpty reports whether the list has no skills in either shape.
func (s SkillList) IsEmpty() bool {
	return len(s.Flat) == 0 && len(s.Categories) == 0
}

// UnmarshalJSON decodes either wire shape. A null or empty array yields an
// empty list.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	s.Flat = nil
	s.Categories = nil

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	// Shape detection: categorized iff the first element is an object with a
	// "category" key.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw[0], &probe); err == nil {
		if _, ok := probe["category"]; ok {
			var categories []SkillCategory
			if err := json.Unmarshal(data, &categories); err != nil {
				return err
			}
			s.Categories = categories
			return nil
		}
	}

	var flat []string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	s.Flat = flat
	return nil
}

// MarshalJSON emits whichever shape the list holds; an empty list marshals as
// an empty array.
func (s SkillList) MarshalJSON() ([]byte, error) {
	if len(s.Categories) > 0 {
		return json.Marshal(s.Categories)
	}
	if s.Flat == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Flat)
}

// Sanitize drops entries that are missing their required keys so that only
// meaningful entries are persisted. Flat string lists drop blank values.
func (d *ResumeData) Sanitize() {
	education := d.Education[:0]
	for _, e := range d.Education {
		if strings.TrimSpace(e.Institution) != "" || strings.TrimSpace(e.Degree) != "" {
			education = append(education, e)
		}
	}
	d.Education = education

	experience := d.Experience[:0]
	for _, e := range d.Experience {
		if strings.TrimSpace(e.Company) != "" && strings.TrimSpace(e.Position) != "" {
			experience = append(experience, e)
		}
	}
	d.Experience = experience

	projects := d.Projects[:0]
	for _, p := range d.Projects {
		if strings.TrimSpace(p.Title) != "" {
			projects = append(projects, p)
		}
	}
	d.Projects = projects

	awards := d.Awards[:0]
	for _, a := range d.Awards {
		if strings.TrimSpace(a.Title) != "" {
			awards = append(awards, a)
		}
	}
	d.Awards = awards

	achievements := d.Achievements[:0]
	for _, a := range d.Achievements {
		if strings.TrimSpace(a.Title) != "" {
			achievements = append(achievements, a)
		}
	}
	d.Achievements = achievements

	d.Skills.Flat = dropBlank(d.Skills.Flat)
	d.Certificates = dropBlank(d.Certificates)
	d.Hobbies = dropBlank(d.Hobbies)
	d.Languages = dropBlank(d.Languages)
}

func dropBlank(values []string) []string {
	kept := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return kept
}

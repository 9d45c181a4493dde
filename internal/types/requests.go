package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateResumeRequest represents the request to create a new resume.
type CreateResumeRequest struct {
	Title      string     `json:"title" validate:"required,min=1"`
	TemplateID string     `json:"template_id,omitempty"`
	Data       ResumeData `json:"data"`
}

// UpdateResumeRequest represents a partial resume update. Nil fields are left
// untouched.
type UpdateResumeRequest struct {
	Title      *string     `json:"title,omitempty" validate:"omitempty,min=1"`
	TemplateID *string     `json:"template_id,omitempty"`
	IsActive   *bool       `json:"is_active,omitempty"`
	Data       *ResumeData `json:"data,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (r *UpdateResumeRequest) IsEmpty() bool {
	return r.Title == nil && r.TemplateID == nil && r.IsActive == nil && r.Data == nil
}

// GenerateDescriptionRequest represents an AI description-assist request.
// Type selects the system prompt; an empty type means a general rewrite.
type GenerateDescriptionRequest struct {
	Prompt  string `json:"prompt" validate:"required,min=1"`
	Context string `json:"context,omitempty"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=summary experience project general"`
}

// GenerateDescriptionResponse represents a successful AI assist response.
type GenerateDescriptionResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
}

// ExportRequest represents the request body for the vector PDF export surface.
type ExportRequest struct {
	Resume        *ResumeData    `json:"resume"`
	TemplateID    string         `json:"template_id,omitempty"`
	StyleSettings *StyleSettings `json:"styleSettings,omitempty"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return validate.Var(r.Data.FullName, "required,min=1")
}

// Validate validates the UpdateResumeRequest using the validator.
func (r *UpdateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateDescriptionRequest using the validator.
func (r *GenerateDescriptionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

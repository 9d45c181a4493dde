package types

import (
	"github.com/go-playground/validator/v10"
)

// StyleSettings are the user-adjustable cosmetic parameters applied on top of
// a template. They are ephemeral per render/export session; only the template
// id is persisted with the resume.
type StyleSettings struct {
	FontFamily      string `json:"font_family,omitempty"`
	AccentColor     string `json:"accent_color,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor"`
	TextColor       string `json:"text_color,omitempty" validate:"omitempty,hexcolor"`
	AccentStrength  int    `json:"accent_strength,omitempty" validate:"omitempty,min=20,max=100"`
}

// DefaultStyleSettings returns the fixed default palette and font used when a
// caller supplies no style settings.
func DefaultStyleSettings() StyleSettings {
	return StyleSettings{
		FontFamily:      "Inter",
		AccentColor:     "#2563eb",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		AccentStrength:  100,
	}
}

// WithDefaults fills unset fields from the default palette so renderers never
// see a partial configuration.
func (s StyleSettings) WithDefaults() StyleSettings {
	defaults := DefaultStyleSettings()
	if s.FontFamily == "" {
		s.FontFamily = defaults.FontFamily
	}
	if s.AccentColor == "" {
		s.AccentColor = defaults.AccentColor
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = defaults.BackgroundColor
	}
	if s.TextColor == "" {
		s.TextColor = defaults.TextColor
	}
	if s.AccentStrength == 0 {
		s.AccentStrength = defaults.AccentStrength
	}
	return s
}

// Validate validates the StyleSettings using the validator.
func (s *StyleSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

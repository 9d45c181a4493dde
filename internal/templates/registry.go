// Package templates defines the closed set of resume templates and the shared
// data-derivation rules (section inclusion, skill shapes, date labels) used by
// every rendering backend. Keeping the derivation here guarantees that the
// HTML preview and both PDF exporters agree on what is shown; only the drawing
// differs per backend.
package templates

// TemplateID identifies one of the fixed resume layouts.
type TemplateID string

// The complete template set. Each is a distinct composition, not a palette swap.
const (
	Classic      TemplateID = "classic"
	Modern       TemplateID = "modern"
	Minimal      TemplateID = "minimal"
	Professional TemplateID = "professional"
	Emerald      TemplateID = "emerald"
	Elegant      TemplateID = "elegant"
	Slate        TemplateID = "slate"
)

// All returns every registered template id in display order.
func All() []TemplateID {
	return []TemplateID{Classic, Modern, Minimal, Professional, Emerald, Elegant, Slate}
}

// Resolve maps an arbitrary identifier string to a registered template id.
// Unknown or absent identifiers resolve to Classic; this same resolution must
// be applied at every render site so preview and export always agree.
func Resolve(id string) TemplateID {
	switch TemplateID(id) {
	case Classic, Modern, Minimal, Professional, Emerald, Elegant, Slate:
		return TemplateID(id)
	default:
		return Classic
	}
}

// IsKnown reports whether id names a registered template without applying the
// Classic fallback.
func IsKnown(id string) bool {
	return id != "" && Resolve(id) == TemplateID(id)
}

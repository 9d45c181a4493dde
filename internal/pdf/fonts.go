package pdf

import "strings"

// The PDF engine embeds only the core font families; human-readable font names
// from style settings map onto the closest one. Unknown names fall back to the
// default sans family.
const (
	fontSans  = "Helvetica"
	fontSerif = "Times"
	fontMono  = "Courier"
)

var fontFamilies = map[string]string{
	"inter":            fontSans,
	"roboto":           fontSans,
	"open sans":        fontSans,
	"lato":             fontSans,
	"arial":            fontSans,
	"helvetica":        fontSans,
	"georgia":          fontSerif,
	"merriweather":     fontSerif,
	"playfair display": fontSerif,
	"times new roman":  fontSerif,
	"times":            fontSerif,
	"courier":          fontMono,
	"courier new":      fontMono,
	"jetbrains mono":   fontMono,
}

// FontFamily maps a style-settings font name to an embeddable PDF family.
func FontFamily(name string) string {
	if family, ok := fontFamilies[strings.ToLower(strings.TrimSpace(name))]; ok {
		return family
	}
	return fontSans
}

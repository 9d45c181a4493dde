package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleSettings_WithDefaults(t *testing.T) {
	empty := StyleSettings{}.WithDefaults()
	assert.Equal(t, DefaultStyleSettings(), empty)

	partial := StyleSettings{AccentColor: "#ff0000"}.WithDefaults()
	assert.Equal(t, "#ff0000", partial.AccentColor)
	assert.Equal(t, "Inter", partial.FontFamily)
	assert.Equal(t, 100, partial.AccentStrength)
}

func TestStyleSettings_Validate(t *testing.T) {
	valid := StyleSettings{AccentColor: "#336699", AccentStrength: 60}
	assert.NoError(t, valid.Validate())

	badColor := StyleSettings{AccentColor: "not-a-color"}
	assert.Error(t, badColor.Validate())

	tooWeak := StyleSettings{AccentStrength: 10}
	assert.Error(t, tooWeak.Validate())

	tooStrong := StyleSettings{AccentStrength: 150}
	assert.Error(t, tooStrong.Validate())
}

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "six digit", input: "#2563eb", want: RGB{37, 99, 235}},
		{name: "no hash", input: "1f2937", want: RGB{31, 41, 55}},
		{name: "three digit", input: "#f60", want: RGB{255, 102, 0}},
		{name: "white", input: "#ffffff", want: RGB{255, 255, 255}},
		{name: "uppercase", input: "#FF6600", want: RGB{255, 102, 0}},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong length", input: "#12345", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexOr(t *testing.T) {
	fallback := RGB{1, 2, 3}

	assert.Equal(t, RGB{255, 102, 0}, ParseHexOr("#ff6600", fallback))
	assert.Equal(t, fallback, ParseHexOr("", fallback))
	assert.Equal(t, fallback, ParseHexOr("nonsense", fallback))
}

func TestBlendTowardWhite(t *testing.T) {
	base := RGB{100, 150, 200}

	assert.Equal(t, base, BlendTowardWhite(base, 0))
	assert.Equal(t, RGB{255, 255, 255}, BlendTowardWhite(base, 1))

	half := BlendTowardWhite(RGB{0, 0, 0}, 0.5)
	assert.Equal(t, RGB{128, 128, 128}, half)

	// out-of-range fractions clamp instead of overshooting
	assert.Equal(t, base, BlendTowardWhite(base, -2))
	assert.Equal(t, RGB{255, 255, 255}, BlendTowardWhite(base, 2))
}

func TestMutedAndFaintTiers(t *testing.T) {
	text := RGB{31, 41, 55}
	muted := Muted(text)
	faint := Faint(text)

	// each tier is strictly lighter than the previous one
	assert.Greater(t, muted.R, text.R)
	assert.Greater(t, faint.R, muted.R)
	assert.Less(t, faint.R, 255)

	assert.Equal(t, BlendTowardWhite(text, 0.35), muted)
	assert.Equal(t, BlendTowardWhite(text, 0.60), faint)
}

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontFamily(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Inter", want: "Helvetica"},
		{input: "roboto", want: "Helvetica"},
		{input: "Open Sans", want: "Helvetica"},
		{input: "Georgia", want: "Times"},
		{input: "Playfair Display", want: "Times"},
		{input: "Times New Roman", want: "Times"},
		{input: "JetBrains Mono", want: "Courier"},
		{input: "Courier New", want: "Courier"},
		{input: "  Lato  ", want: "Helvetica"},
		{input: "Comic Sans MS", want: "Helvetica"},
		{input: "", want: "Helvetica"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FontFamily(tt.input))
		})
	}
}

package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/pdf"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, color.RGBA{R: 37, G: 99, B: 235, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBuildPDF(t *testing.T) {
	snap := &Snapshot{
		PNG:    testPNG(t),
		Width:  794,
		Height: 1123,
		Links: []LinkRect{
			{URL: "https://github.com/janedoe", X: 40, Y: 200, W: 180, H: 16},
		},
	}

	out, err := BuildPDF(snap)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "/Annots", "link annotations must be present")
}

func TestBuildPDFMultiPage(t *testing.T) {
	// width 210 gives a 1:1 pixel-to-millimeter scale; a 594mm-tall capture
	// fills exactly two pages
	snap := &Snapshot{PNG: testPNG(t), Width: 210, Height: 2 * pdf.PageHeight}

	out, err := BuildPDF(snap)
	require.NoError(t, err)

	pages := bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
	assert.Equal(t, 2, pages)
}

func TestBuildPDFExactPageHeight(t *testing.T) {
	// a capture exactly one page tall must not gain a blank trailing page
	snap := &Snapshot{PNG: testPNG(t), Width: 210, Height: pdf.PageHeight}

	out, err := BuildPDF(snap)
	require.NoError(t, err)

	pages := bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
	assert.Equal(t, 1, pages)
}

func TestBuildPDFEmptySnapshot(t *testing.T) {
	_, err := BuildPDF(nil)
	assert.Error(t, err)

	_, err = BuildPDF(&Snapshot{})
	assert.Error(t, err)
}

func TestBuildPDFInvalidWidth(t *testing.T) {
	_, err := BuildPDF(&Snapshot{PNG: testPNG(t), Width: 0, Height: 100})
	assert.Error(t, err)
}

func TestRasterFilename(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume_Download1.pdf", Filename("Jane Doe"))
	assert.Equal(t, "Resume_Download1.pdf", Filename(""))
	assert.Equal(t, "Resume_Download1.pdf", Filename("   "))
}

package appicon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func TestDraw_Metrics(t *testing.T) {
	testCases := []struct {
		size     int
		border   int
		shadow   int
		fontSize int
		label    string
	}{
		{size: 16, border: 1, shadow: 1, fontSize: 4, label: "O"},
		{size: 32, border: 1, shadow: 1, fontSize: 8, label: "O"},
		{size: 63, border: 1, shadow: 1, fontSize: 15, label: "O"},
		{size: 64, border: 1, shadow: 1, fontSize: 10, label: "OR"},
		{size: 128, border: 2, shadow: 1, fontSize: 16, label: "OR"},
		{size: 256, border: 4, shadow: 2, fontSize: 32, label: "OR"},
		{size: 512, border: 8, shadow: 4, fontSize: 64, label: "OR"},
		{size: 1024, border: 16, shadow: 8, fontSize: 128, label: "OR"},
	}

	for _, tc := range testCases {
		t.Run(IconFilename(tc.size), func(t *testing.T) {
			assert.Equal(t, tc.border, BorderWidth(tc.size), "border width")
			assert.Equal(t, tc.shadow, ShadowOffset(tc.size), "shadow offset")
			assert.Equal(t, tc.fontSize, FontSize(tc.size), "font size")
			assert.Equal(t, tc.label, Label(tc.size), "label")
		})
	}
}

func TestDraw_ShouldStrokeBorderInside(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	drawBorder(img, 3, BorderColor)

	for _, p := range []image.Point{{0, 0}, {2, 2}, {31, 31}, {29, 15}, {15, 0}, {0, 31}} {
		assert.Equal(t, BorderColor, img.NRGBAAt(p.X, p.Y), "pixel %v", p)
	}
	for _, p := range []image.Point{{3, 3}, {28, 28}, {15, 15}} {
		assert.Zero(t, img.NRGBAAt(p.X, p.Y), "pixel %v", p)
	}
}

func TestDraw_ShouldCenterLabel(t *testing.T) {
	f, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)

	faces := map[string]func(t *testing.T, size int) font.Face{
		"basicfont": func(*testing.T, int) font.Face { return basicfont.Face7x13 },
		"goregular": func(t *testing.T, size int) font.Face {
			face, err := opentype.NewFace(f, &opentype.FaceOptions{
				Size:    float64(FontSize(size)),
				DPI:     72,
				Hinting: font.HintingFull,
			})
			require.NoError(t, err)
			return face
		},
	}

	for name, newFace := range faces {
		for _, spec := range DefaultSpecs() {
			t.Run(name+"/"+spec.Filename, func(t *testing.T) {
				face := newFace(t, spec.Size)
				defer face.Close()

				label := Label(spec.Size)
				dot := labelOrigin(face, label, spec.Size)
				bounds, _ := font.BoundString(face, label)

				left := dot.X.Floor() + bounds.Min.X.Floor()
				right := spec.Size - (dot.X.Floor() + bounds.Max.X.Ceil())
				top := dot.Y.Floor() + bounds.Min.Y.Floor()
				bottom := spec.Size - (dot.Y.Floor() + bounds.Max.Y.Ceil())

				assert.InDelta(t, left, right, 1, "horizontal margins")
				assert.InDelta(t, top, bottom, 1, "vertical margins")
			})
		}
	}
}

package appicon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/orchardapp/appicon/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// BorderWidth returns the border thickness of an icon of the given size.
func BorderWidth(size int) int {
	return utils.Max(1, size/64)
}

// ShadowOffset returns the distance the label shadow is shifted right and down.
func ShadowOffset(size int) int {
	return utils.Max(1, size/128)
}

// FontSize returns the label font size in pixels. Small icons get a
// proportionally larger font so the label stays readable.
func FontSize(size int) int {
	switch {
	case size >= 128:
		return size / 8
	case size >= 64:
		return size / 6
	default:
		return size / 4
	}
}

// Label returns the text drawn on an icon of the given size.
func Label(size int) string {
	if size >= 64 {
		return "OR"
	}
	return "O"
}

// drawBorder strokes a rectangle of the given thickness along the inner edges of dst.
func drawBorder(dst draw.Image, width int, c color.Color) {
	var (
		b   = dst.Bounds()
		src = image.NewUniform(c)
	)

	edges := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+width), // top
		image.Rect(b.Min.X, b.Max.Y-width, b.Max.X, b.Max.Y), // bottom
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+width, b.Max.Y), // left
		image.Rect(b.Max.X-width, b.Min.Y, b.Max.X, b.Max.Y), // right
	}
	for _, r := range edges {
		draw.Draw(dst, r.Intersect(b), src, image.Point{}, draw.Src)
	}
}

// labelOrigin returns the dot position which centers the bounding box of s
// on a size×size canvas.
func labelOrigin(face font.Face, s string, size int) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, s)

	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	w := bounds.Max.X.Ceil() - minX
	h := bounds.Max.Y.Ceil() - minY

	return fixed.P((size-w)/2-minX, (size-h)/2-minY)
}

// drawText draws s with its baseline origin at dot, composited over dst.
func drawText(dst draw.Image, face font.Face, s string, dot fixed.Point26_6, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}

// pasteText replaces the pixels of dst under the glyphs of s with c, weighted
// by glyph coverage. Unlike drawText the alpha channel of c is written as is.
func pasteText(dst draw.Image, face font.Face, s string, dot fixed.Point26_6, c color.Color) {
	b := dst.Bounds()
	mask := image.NewAlpha(b)

	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)

	draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, b.Min, draw.Src)
}

package appicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSize is returned when an icon is requested with a non positive size.
var ErrInvalidSize = errors.New("icon size must be positive")

// Default icon colors.
var (
	BackgroundColor = color.NRGBA{R: 52, G: 120, B: 246, A: 255}
	BorderColor     = color.NRGBA{R: 30, G: 90, B: 200, A: 255}
	TextColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ShadowColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 100}
)

// Generator holds the colors and fonts used to draw the placeholder icons.
// A Generator caches parsed fonts and is not safe for concurrent use.
type Generator struct {
	Background color.NRGBA
	Border     color.NRGBA
	Text       color.NRGBA
	Shadow     color.NRGBA
	// PasteShadow writes the shadow color through the glyph mask, alpha
	// included, instead of compositing it over the background. Shadow
	// pixels not covered by the label then keep the shadow's alpha.
	PasteShadow bool
	// FontPaths are the font files probed for the label, in order.
	FontPaths []string
	// Stdout receives one confirmation line per generated icon and the
	// progress banners of Execute.
	Stdout io.Writer

	fonts map[string]*opentype.Font
}

// NewGenerator returns a generator using the default colors and system fonts.
func NewGenerator() *Generator {
	return &Generator{
		Background: BackgroundColor,
		Border:     BorderColor,
		Text:       TextColor,
		Shadow:     ShadowColor,
		FontPaths:  append([]string(nil), DefaultFontPaths...),
		Stdout:     os.Stdout,
		fonts:      make(map[string]*opentype.Font),
	}
}

// Render draws the placeholder icon of the given size.
func (g *Generator) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	canvas := imaging.New(size, size, g.Background)
	drawBorder(canvas, BorderWidth(size), g.Border)

	face := g.loadFace(FontSize(size))
	defer face.Close()

	label := Label(size)
	dot := labelOrigin(face, label, size)

	off := fixed.I(ShadowOffset(size))
	shadowDot := dot.Add(fixed.Point26_6{X: off, Y: off})
	if g.PasteShadow {
		pasteText(canvas, face, label, shadowDot, g.Shadow)
	} else {
		drawText(canvas, face, label, shadowDot, g.Shadow)
	}
	drawText(canvas, face, label, dot, g.Text)

	return canvas, nil
}

// GenerateIcon renders the icon of the given size and saves it as PNG to path,
// overwriting any existing file.
func (g *Generator) GenerateIcon(size int, path string) error {
	img, err := g.Render(size)
	if err != nil {
		return err
	}
	if err := saveImg(path, img); err != nil {
		return err
	}
	fmt.Fprintf(g.stdout(), "Created %dx%d icon: %s\n", size, size, path)

	return nil
}

func (g *Generator) stdout() io.Writer {
	if g.Stdout == nil {
		return io.Discard
	}
	return g.Stdout
}

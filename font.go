package appicon

import (
	"fmt"
	"os"
	"strings"

	"github.com/orchardapp/appicon/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPaths lists the system fonts probed for the label, in order.
var DefaultFontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc", // macOS
	"/System/Library/Fonts/Arial.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf", // Linux
}

// defaultFace is used whenever no scalable font could be loaded.
var defaultFace font.Face = basicfont.Face7x13

// loadFace returns a face of the given pixel size built from the first existing
// font file in g.FontPaths. It never fails: if no candidate exists, or the first
// existing one can't be parsed, the built-in bitmap face is returned instead.
func (g *Generator) loadFace(size int) font.Face {
	if size < 1 {
		return defaultFace
	}

	for _, path := range g.FontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := g.parseFont(path)
		if err != nil {
			return defaultFace
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return defaultFace
		}
		return face
	}
	return defaultFace
}

// parseFont parses the font file at path. Collections are supported, the first
// font of the collection is used. Results, failures included, are cached per path.
func (g *Generator) parseFont(path string) (*opentype.Font, error) {
	if g.fonts == nil {
		g.fonts = make(map[string]*opentype.Font)
	}
	if f, ok := g.fonts[path]; ok {
		if f == nil {
			return nil, fmt.Errorf("could not load the font file %s", path)
		}
		return f, nil
	}

	f, err := readFont(path)
	g.fonts[path] = f
	return f, err
}

func readFont(path string) (*opentype.Font, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, err
	}
	if !isFontType(ctype) {
		return nil, fmt.Errorf("%s is not a font file: %s", path, ctype)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the font file: %w", err)
	}

	// ParseCollection accepts single fonts as well, as a collection of one.
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse the font file %s: %w", path, err)
	}
	return coll.Font(0)
}

// isFontType reports whether the sniffed content type may hold font data.
// Apple TrueType files start with a tag the sniffer doesn't know about,
// so unrecognized binary content is let through to the parser.
func isFontType(ctype string) bool {
	return strings.HasPrefix(ctype, "font/") || ctype == "application/octet-stream"
}

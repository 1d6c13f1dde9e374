package appicon

import "fmt"

// IconSpec describes a single icon of the icon set.
type IconSpec struct {
	Size     int
	Filename string
}

// iconSizes holds the pixel sizes required by a macOS app icon set, smallest first.
var iconSizes = []int{16, 32, 64, 128, 256, 512, 1024}

// DefaultSpecs returns the icons making up the app icon set, in generation order.
// Each call returns a fresh slice.
func DefaultSpecs() []IconSpec {
	specs := make([]IconSpec, 0, len(iconSizes))
	for _, size := range iconSizes {
		specs = append(specs, IconSpec{
			Size:     size,
			Filename: IconFilename(size),
		})
	}
	return specs
}

// IconFilename returns the file name used for an icon of the given size.
func IconFilename(size int) string {
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

package saveguardian

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Scale derives the resampled icon set from the master bitmap, one image
// per requested edge length, smallest first. The master is never redrawn:
// each size is a Lanczos downscale of the same bitmap, and an entry that
// matches the master edge is a plain copy so the largest image stays pixel
// identical to the master.
func (c *Composer) Scale(master *image.NRGBA) ([]*image.NRGBA, error) {
	sizes := c.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if err := checkSizes(sizes); err != nil {
		return nil, err
	}

	edge := master.Bounds().Dx()
	scaled := make([]*image.NRGBA, 0, len(sizes))
	for _, size := range sizes {
		if size == edge {
			scaled = append(scaled, imaging.Clone(master))
			continue
		}
		scaled = append(scaled, imaging.Resize(master, size, size, imaging.Lanczos))
	}
	return scaled, nil
}

// checkSizes rejects edge lengths the icon container could not hold in a
// sane way: non-positive values and out of order or duplicate entries.
func checkSizes(sizes []int) error {
	for i, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("icon size must be positive, got %d", size)
		}
		if i > 0 && size <= sizes[i-1] {
			return fmt.Errorf("icon sizes must be strictly ascending, got %d after %d", size, sizes[i-1])
		}
	}
	return nil
}

package saveguardian

import (
	"fmt"
	"os"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Arionyxx/save-guardian/utils"
)

// VerifyResult describes a re-opened icon container.
type VerifyResult struct {
	// Count is the number of embedded images.
	Count int
	// MinEdge and MaxEdge are the smallest and largest embedded edge
	// lengths in pixels.
	MinEdge int
	MaxEdge int
	// Width and Height are the dimensions the container reports for its
	// best image.
	Width  int
	Height int
}

// VerifyICO re-opens a written icon container and reports what it embeds.
// It is a sanity check on the artifact, not part of producing it: callers
// treat a non-nil error as a diagnostic on an already written file.
func VerifyICO(path string) (*VerifyResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to re-open the icon container: %w", err)
	}
	defer f.Close()

	cfg, err := ico.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read the icon container header: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	imgs, err := ico.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode the embedded images: %w", err)
	}
	if len(imgs) == 0 {
		return nil, fmt.Errorf("the icon container %s embeds no images", path)
	}

	res := &VerifyResult{
		Count:  len(imgs),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	for i, img := range imgs {
		edge := img.Bounds().Dx()
		if i == 0 {
			res.MinEdge, res.MaxEdge = edge, edge
			continue
		}
		res.MinEdge = utils.Min(res.MinEdge, edge)
		res.MaxEdge = utils.Max(res.MaxEdge, edge)
	}
	return res, nil
}

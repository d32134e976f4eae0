package saveguardian

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
)

// WriteICO encodes the scaled icon set into a single multi resolution
// icon container. The images are embedded in the order given, which by
// convention is ascending edge length.
func WriteICO(w io.Writer, imgs []*image.NRGBA) error {
	if len(imgs) == 0 {
		return errors.New("no images to embed into the icon container")
	}
	set := make([]image.Image, len(imgs))
	for i, img := range imgs {
		set[i] = img
	}
	return ico.EncodeAll(w, set)
}

// writeImage encodes the standalone bitmap to the destination writer.
// When the destination is a file the encoder is picked by its extension;
// everything else gets PNG, the only format of the three that keeps the
// alpha channel.
func writeImage(w io.Writer, img *image.NRGBA) error {
	if f, ok := w.(*os.File); ok {
		switch ext := filepath.Ext(f.Name()); ext {
		case "", ".png":
			return png.Encode(w, img)
		case ".bmp":
			return bmp.Encode(w, img)
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		default:
			return fmt.Errorf("unsupported image format: %v", ext)
		}
	}
	return png.Encode(w, img)
}

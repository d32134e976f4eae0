package saveguardian

import (
	"fmt"
	"os"
	"path/filepath"
)

// Conventional artifact locations, relative to the repository root.
const (
	DefaultDir     = "assets"
	DefaultICOName = "icon.ico"
	DefaultImgName = "icon.png"
)

// Ops bundles the destinations and switches of one generation run.
type Ops struct {
	// Dir is the output directory. It must already exist unless MkDir
	// is set: a missing assets directory usually means the tool runs
	// from the wrong place, and silently creating one would bury that.
	Dir string
	// ICOName and ImgName are the artifact file names inside Dir.
	ICOName string
	ImgName string
	// MkDir creates Dir (and parents) before writing.
	MkDir bool
	// Verify re-opens the written icon container as a sanity check.
	Verify bool
}

// DefaultOps returns the conventional assets/icon.ico and assets/icon.png
// destination pair with verification on.
func DefaultOps() *Ops {
	return &Ops{
		Dir:     DefaultDir,
		ICOName: DefaultICOName,
		ImgName: DefaultImgName,
		Verify:  true,
	}
}

// Report captures what one generation run produced.
type Report struct {
	// ICOPath and ImgPath are the written artifact paths.
	ICOPath string
	ImgPath string
	// Sizes holds the edge lengths embedded into the container, ascending.
	Sizes []int
	// Verify carries the container re-open result, nil when skipped.
	// VerifyErr is informational: the artifacts were written either way.
	Verify    *VerifyResult
	VerifyErr error
}

// Generate runs the whole pipeline: compose the master, derive the
// resampled set, write the icon container and the standalone bitmap, then
// optionally re-open the container. Both output files are written from the
// same in-memory master, so repeated runs produce identical bytes.
func (c *Composer) Generate(op *Ops) (*Report, error) {
	if op == nil {
		op = DefaultOps()
	}

	master, err := c.Compose()
	if err != nil {
		return nil, err
	}
	scaled, err := c.Scale(master)
	if err != nil {
		return nil, err
	}

	if op.MkDir {
		if err := os.MkdirAll(op.Dir, 0755); err != nil {
			return nil, fmt.Errorf("unable to create the output directory: %w", err)
		}
	}

	rep := &Report{
		ICOPath: filepath.Join(op.Dir, op.ICOName),
		ImgPath: filepath.Join(op.Dir, op.ImgName),
	}
	for _, img := range scaled {
		rep.Sizes = append(rep.Sizes, img.Bounds().Dx())
	}

	err = writeFile(rep.ICOPath, func(f *os.File) error {
		return WriteICO(f, scaled)
	})
	if err != nil {
		return nil, fmt.Errorf("unable to save the icon container: %w", err)
	}

	err = writeFile(rep.ImgPath, func(f *os.File) error {
		return writeImage(f, master)
	})
	if err != nil {
		return nil, fmt.Errorf("unable to save the standalone bitmap: %w", err)
	}

	if op.Verify {
		rep.Verify, rep.VerifyErr = VerifyICO(rep.ICOPath)
	}
	return rep, nil
}

// writeFile creates the destination file and runs the encode callback
// against it. A partially written file is removed on failure so that an
// aborted run never leaves a truncated artifact behind.
func writeFile(path string, encode func(*os.File) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return encode(f)
}

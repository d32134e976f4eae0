package saveguardian

import (
	"fmt"
	"image/color"
)

// CanvasSide is the edge length of the master canvas in pixels. Every
// coordinate in a Layout refers to this canvas; the smaller icon sizes are
// resampled from it, never redrawn.
const CanvasSide = 256

// DefaultSizes holds the edge lengths embedded into the icon container,
// in ascending order.
var DefaultSizes = []int{16, 24, 32, 48, 64, 128, 256}

// The icon palette. The flat UI blues are carried over from the original
// artwork and are shared by both style presets.
var (
	badgeFill    = color.NRGBA{R: 44, G: 62, B: 80, A: 255}
	badgeStroke  = color.NRGBA{R: 52, G: 73, B: 94, A: 255}
	shieldFill   = color.NRGBA{R: 52, G: 152, B: 219, A: 255}
	shieldStroke = color.NRGBA{R: 41, G: 128, B: 185, A: 255}
	white        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Pt is a point on the master canvas.
type Pt struct {
	X, Y float64
}

// Box is an axis aligned region of the master canvas, addressed by its
// left-top and right-bottom corners the way the artwork coordinates were
// originally laid out.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// W returns the box width.
func (b Box) W() float64 { return b.X1 - b.X0 }

// H returns the box height.
func (b Box) H() float64 { return b.Y1 - b.Y0 }

// Center returns the box midpoint.
func (b Box) Center() (x, y float64) {
	return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2
}

// Radii returns the half extents of the box, i.e. the radii of the
// ellipse it bounds.
func (b Box) Radii() (rx, ry float64) {
	return b.W() / 2, b.H() / 2
}

// Inset shrinks the box by d on every side.
func (b Box) Inset(d float64) Box {
	return Box{X0: b.X0 + d, Y0: b.Y0 + d, X1: b.X1 - d, Y1: b.Y1 - d}
}

// Style selects one of the icon geometry presets.
type Style string

const (
	// StyleDetailed is the current artwork: an outlined save disk with a
	// label strip and a polygonal sheen on the shield.
	StyleDetailed Style = "detailed"
	// StyleClassic is the earlier, flatter revision of the artwork kept
	// around for comparison renders.
	StyleClassic Style = "classic"
)

// ParseStyle maps a command line or environment value onto a Style.
// The empty string selects the detailed preset.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleDetailed, "":
		return StyleDetailed, nil
	case StyleClassic:
		return StyleClassic, nil
	}
	return "", fmt.Errorf("unknown icon style %q, expected detailed or classic", s)
}

// Layout returns the coordinate set the style draws with.
func (s Style) Layout() (*Layout, error) {
	switch s {
	case StyleDetailed, "":
		return DetailedLayout(), nil
	case StyleClassic:
		return ClassicLayout(), nil
	}
	return nil, fmt.Errorf("unknown icon style %q", string(s))
}

// Layout carries every coordinate and style-dependent color the composer
// draws with. All values refer to the CanvasSide master canvas.
type Layout struct {
	// BadgeInset is the distance between the canvas edge and the round
	// badge, BadgeStrokeWidth the width of its rim.
	BadgeInset       float64
	BadgeStrokeWidth float64

	// Shield is the closed outline of the shield, starting at the top
	// vertex and winding clockwise.
	Shield            []Pt
	ShieldStrokeWidth float64

	// Cloud holds the bounding boxes of the overlapping ellipses forming
	// the cloud, CloudFill their translucent color.
	Cloud     []Box
	CloudFill color.NRGBA

	// The save disk: its shell, the corner radius, and the inner plate
	// inset from the shell by DiskInset. A zero DiskShellStrokeWidth
	// leaves the shell without an outline.
	Disk                 Box
	DiskCorner           float64
	DiskShellFill        color.NRGBA
	DiskShellStroke      color.NRGBA
	DiskShellStrokeWidth float64
	DiskInset            float64

	// DiskLabelHeight is the height of the white label strip across the
	// top of the inner plate; zero means no strip.
	DiskLabelHeight float64

	// The data lines etched on the inner plate: DiskLineCount rows of
	// DiskLineHeight, the first one DiskLineStart below the shell top,
	// spaced DiskLinePitch apart and inset DiskLineInset from the shell
	// sides. Rows that would run past the inner plate are skipped.
	DiskLineInset  float64
	DiskLineStart  float64
	DiskLinePitch  float64
	DiskLineHeight float64
	DiskLineCount  int

	// The lighting sheen on the shield: a polygon when Highlight is set,
	// otherwise the ellipse bounded by HighlightOval.
	Highlight     []Pt
	HighlightOval Box
	HighlightFill color.NRGBA
}

// DetailedLayout returns the geometry of the current artwork. The shield
// is derived from its center and extents, the remaining shapes hang off
// the shield metrics.
func DetailedLayout() *Layout {
	const (
		center       = CanvasSide / 2
		shieldWidth  = 76
		shieldHeight = 160
		shieldTop    = 40
		shieldLeft   = center - shieldWidth/2
		shieldRight  = center + shieldWidth/2
		shieldBottom = shieldTop + shieldHeight

		cloudY = 100

		diskX = center - 12
		diskY = 140
		diskW = 24
		diskH = 20
	)

	return &Layout{
		BadgeInset:       8,
		BadgeStrokeWidth: 4,

		Shield: []Pt{
			{center, shieldTop},
			{shieldLeft, shieldTop + 20},
			{shieldLeft, shieldTop + 80},
			{shieldLeft, shieldBottom - 40},
			{center, shieldBottom},
			{shieldRight, shieldBottom - 40},
			{shieldRight, shieldTop + 80},
			{shieldRight, shieldTop + 20},
		},
		ShieldStrokeWidth: 3,

		Cloud: []Box{
			{center - 30, cloudY - 10, center + 30, cloudY + 10},
			{center - 25, cloudY - 15, center + 15, cloudY + 5},
			{center - 10, cloudY - 12, center + 25, cloudY + 8},
			{center - 15, cloudY - 8, center + 20, cloudY + 12},
		},
		CloudFill: color.NRGBA{R: 255, G: 255, B: 255, A: 240},

		Disk:                 Box{diskX, diskY, diskX + diskW, diskY + diskH},
		DiskCorner:           3,
		DiskShellFill:        color.NRGBA{R: 240, G: 240, B: 240, A: 255},
		DiskShellStroke:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		DiskShellStrokeWidth: 1,
		DiskInset:            3,
		DiskLabelHeight:      5,

		DiskLineInset:  6,
		DiskLineStart:  10,
		DiskLinePitch:  3,
		DiskLineHeight: 1,
		DiskLineCount:  3,

		Highlight: []Pt{
			{center - 5, shieldTop + 10},
			{shieldLeft + 10, shieldTop + 25},
			{shieldLeft + 10, shieldTop + 60},
			{center - 15, shieldTop + 80},
		},
		HighlightFill: color.NRGBA{R: 255, G: 255, B: 255, A: 60},
	}
}

// ClassicLayout returns the geometry of the earlier artwork revision:
// same badge and shield silhouette, a lower cloud, a smaller plain disk
// and an elliptical sheen.
func ClassicLayout() *Layout {
	const (
		center = CanvasSide / 2

		cloudY = 90

		diskX = 118
		diskY = 120
		diskW = 20
		diskH = 16
	)

	return &Layout{
		BadgeInset:       8,
		BadgeStrokeWidth: 4,

		Shield: []Pt{
			{center, 40},
			{90, 60},
			{90, 120},
			{90, 160},
			{center, 200},
			{166, 160},
			{166, 120},
			{166, 60},
		},
		ShieldStrokeWidth: 2,

		Cloud: []Box{
			{95, cloudY - 10, 145, cloudY + 10},
			{90, cloudY - 8, 110, cloudY + 8},
			{130, cloudY - 12, 155, cloudY + 8},
			{105, cloudY - 15, 125, cloudY + 5},
		},
		CloudFill: color.NRGBA{R: 255, G: 255, B: 255, A: 230},

		Disk:          Box{diskX, diskY, diskX + diskW, diskY + diskH},
		DiskCorner:    2,
		DiskShellFill: white,
		DiskInset:     2,

		DiskLineInset:  4,
		DiskLineStart:  4,
		DiskLinePitch:  3,
		DiskLineHeight: 1,
		DiskLineCount:  3,

		HighlightOval: Box{112, 55, 128, 85},
		HighlightFill: color.NRGBA{R: 255, G: 255, B: 255, A: 51},
	}
}

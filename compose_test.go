package saveguardian

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arionyxx/save-guardian/utils"
)

// testMaster renders the detailed master once for the tests that only
// need a finished bitmap.
func testMaster(t *testing.T) *image.NRGBA {
	t.Helper()

	c := &Composer{}
	master, err := c.Compose()
	if err != nil {
		t.Fatalf("unable to compose the master icon: %v", err)
	}
	return master
}

// maxDelta returns the largest channel difference between two colors.
func maxDelta(a, b color.NRGBA) int {
	d := utils.Abs(int(a.R) - int(b.R))
	d = utils.Max(d, utils.Abs(int(a.G)-int(b.G)))
	d = utils.Max(d, utils.Abs(int(a.B)-int(b.B)))
	return utils.Max(d, utils.Abs(int(a.A)-int(b.A)))
}

func TestCompose_MasterCanvas(t *testing.T) {
	assert := assert.New(t)

	master := testMaster(t)
	assert.Equal(image.Rect(0, 0, CanvasSide, CanvasSide), master.Bounds())
}

func TestCompose_TransparentOutsideTheBadge(t *testing.T) {
	assert := assert.New(t)

	master := testMaster(t)
	corners := []image.Point{
		{0, 0},
		{CanvasSide - 1, 0},
		{0, CanvasSide - 1},
		{CanvasSide - 1, CanvasSide - 1},
		{2, CanvasSide / 2},
	}
	for _, pt := range corners {
		px := master.NRGBAAt(pt.X, pt.Y)
		assert.Equal(uint8(0), px.A, "pixel at %v should be fully transparent", pt)
	}
}

func TestCompose_PaletteAnchors(t *testing.T) {
	assert := assert.New(t)

	master := testMaster(t)

	// Probe points picked away from every outline and overlay, so the
	// sampled pixels carry the flat fill colors.
	assert.Equal(badgeFill, master.NRGBAAt(40, 128))
	assert.Equal(badgeFill, master.NRGBAAt(128, 225))
	assert.Equal(shieldFill, master.NRGBAAt(128, 130))
}

func TestCompose_CloudIsNearWhiteOverTheShield(t *testing.T) {
	assert := assert.New(t)

	master := testMaster(t)

	// The cloud ellipses are translucent white, so the pixels over the
	// shield end up a hair short of pure white but stay fully opaque.
	px := master.NRGBAAt(128, 100)
	assert.Equal(uint8(255), px.A)
	assert.LessOrEqual(maxDelta(px, white), 20)
}

func TestCompose_DetailedDisk(t *testing.T) {
	assert := assert.New(t)

	master := testMaster(t)

	// Shell between the outline and the inner plate.
	assert.Equal(color.NRGBA{R: 240, G: 240, B: 240, A: 255}, master.NRGBAAt(117, 150))
	// Label strip across the top of the inner plate.
	assert.Equal(white, master.NRGBAAt(128, 145))
	// First data line, then the plate between two lines.
	assert.Equal(white, master.NRGBAAt(128, 150))
	assert.Equal(shieldFill, master.NRGBAAt(128, 152))
}

func TestCompose_ClassicDisk(t *testing.T) {
	assert := assert.New(t)

	c := &Composer{Style: StyleClassic}
	master, err := c.Compose()
	assert.NoError(err)

	// The classic shell is plain white without an outline.
	assert.Equal(white, master.NRGBAAt(119, 128))
	// First data line, then the plate between two lines.
	assert.Equal(white, master.NRGBAAt(128, 124))
	assert.Equal(shieldFill, master.NRGBAAt(128, 126))
}

func TestCompose_DataLinesStayOnThePlate(t *testing.T) {
	assert := assert.New(t)

	// Ask for far more data lines than the plate can hold. The rows that
	// would cross the plate's lower bound must be skipped, so nothing
	// pure white may show up between the plate and the shell bottom.
	l := DetailedLayout()
	l.DiskLineCount = 10
	master := render(l)

	inner := l.Disk.Inset(l.DiskInset)
	for y := int(inner.Y1); y <= int(l.Disk.Y1); y++ {
		for x := int(l.Disk.X0); x <= int(l.Disk.X1); x++ {
			assert.NotEqual(white, master.NRGBAAt(x, y), "unexpected data line pixel at (%d, %d)", x, y)
		}
	}

	// The rows that do fit are still drawn.
	assert.Equal(white, master.NRGBAAt(128, 150))
	assert.Equal(white, master.NRGBAAt(128, 153))
	assert.Equal(white, master.NRGBAAt(128, 156))
}

func TestCompose_Deterministic(t *testing.T) {
	assert := assert.New(t)

	for _, style := range []Style{StyleDetailed, StyleClassic} {
		c := &Composer{Style: style}
		first, err := c.Compose()
		assert.NoError(err)
		second, err := c.Compose()
		assert.NoError(err)

		assert.True(bytes.Equal(first.Pix, second.Pix), "repeated %s renders should be pixel identical", style)
	}
}

func TestCompose_StylesDiffer(t *testing.T) {
	assert := assert.New(t)

	detailed, err := (&Composer{Style: StyleDetailed}).Compose()
	assert.NoError(err)
	classic, err := (&Composer{Style: StyleClassic}).Compose()
	assert.NoError(err)

	assert.False(bytes.Equal(detailed.Pix, classic.Pix), "the two style presets should render differently")
}

func TestCompose_UnknownStyle(t *testing.T) {
	_, err := (&Composer{Style: Style("sketchy")}).Compose()
	assert.Error(t, err)
}

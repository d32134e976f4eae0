package saveguardian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	cases := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"detailed", StyleDetailed, false},
		{"classic", StyleClassic, false},
		{"", StyleDetailed, false},
		{"Detailed", "", true},
		{"modern", "", true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseStyle(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStyleLayout(t *testing.T) {
	assert := assert.New(t)

	detailed, err := StyleDetailed.Layout()
	assert.NoError(err)
	assert.NotNil(detailed)

	classic, err := StyleClassic.Layout()
	assert.NoError(err)
	assert.NotNil(classic)

	_, err = Style("sketchy").Layout()
	assert.Error(err)
}

func TestBox(t *testing.T) {
	assert := assert.New(t)

	b := Box{10, 20, 40, 60}
	assert.Equal(30.0, b.W())
	assert.Equal(40.0, b.H())

	cx, cy := b.Center()
	assert.Equal(25.0, cx)
	assert.Equal(40.0, cy)

	rx, ry := b.Radii()
	assert.Equal(15.0, rx)
	assert.Equal(20.0, ry)

	assert.Equal(Box{13, 23, 37, 57}, b.Inset(3))
}

func TestLayout_ShieldIsSymmetric(t *testing.T) {
	const center = CanvasSide / 2

	for _, style := range []Style{StyleDetailed, StyleClassic} {
		l, err := style.Layout()
		assert.NoError(t, err)

		// The outline starts at the top vertex and winds clockwise, so
		// vertex i mirrors vertex len-i around the vertical axis.
		pts := l.Shield
		assert.Equal(t, float64(center), pts[0].X)
		for i := 1; i < len(pts); i++ {
			mirror := pts[len(pts)-i]
			assert.Equal(t, float64(2*center)-pts[i].X, mirror.X, "style %s vertex %d", style, i)
			assert.Equal(t, pts[i].Y, mirror.Y, "style %s vertex %d", style, i)
		}
	}
}

func TestLayout_ConfiguredDataLinesFitThePlate(t *testing.T) {
	for _, style := range []Style{StyleDetailed, StyleClassic} {
		l, err := style.Layout()
		assert.NoError(t, err)

		inner := l.Disk.Inset(l.DiskInset)
		last := l.Disk.Y0 + l.DiskLineStart + float64(l.DiskLineCount-1)*l.DiskLinePitch
		assert.LessOrEqual(t, last+l.DiskLineHeight, inner.Y1, "style %s", style)
	}
}

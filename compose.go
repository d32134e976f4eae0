package saveguardian

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Composer generates the application icon. The zero value renders the
// detailed style at the default size set.
type Composer struct {
	// Style selects the geometry preset; empty means StyleDetailed.
	Style Style
	// Sizes holds the edge lengths to embed into the icon container, in
	// strictly ascending order. Nil or empty falls back to DefaultSizes.
	Sizes []int
}

// Compose renders the master icon: the round badge, the shield, the cloud,
// the save disk and the sheen, painted back to front on a transparent
// canvas. It returns the master bitmap with the alpha channel intact.
func (c *Composer) Compose() (*image.NRGBA, error) {
	l, err := c.Style.Layout()
	if err != nil {
		return nil, err
	}
	return render(l), nil
}

// render paints a layout onto a fresh transparent canvas.
func render(l *Layout) *image.NRGBA {
	dc := gg.NewContext(CanvasSide, CanvasSide)

	drawBadge(dc, l)
	drawShield(dc, l)
	drawCloud(dc, l)
	drawDisk(dc, l)
	drawHighlight(dc, l)

	return imaging.Clone(dc.Image())
}

func drawBadge(dc *gg.Context, l *Layout) {
	const center = CanvasSide / 2

	dc.DrawCircle(center, center, center-l.BadgeInset)
	dc.SetColor(badgeFill)
	dc.FillPreserve()
	dc.SetColor(badgeStroke)
	dc.SetLineWidth(l.BadgeStrokeWidth)
	dc.Stroke()
}

func drawShield(dc *gg.Context, l *Layout) {
	polygon(dc, l.Shield)
	dc.SetColor(shieldFill)
	dc.FillPreserve()
	dc.SetColor(shieldStroke)
	dc.SetLineWidth(l.ShieldStrokeWidth)
	dc.Stroke()
}

func drawCloud(dc *gg.Context, l *Layout) {
	dc.SetColor(l.CloudFill)
	for _, b := range l.Cloud {
		cx, cy := b.Center()
		rx, ry := b.Radii()
		dc.DrawEllipse(cx, cy, rx, ry)
		dc.Fill()
	}
}

func drawDisk(dc *gg.Context, l *Layout) {
	d := l.Disk

	dc.DrawRoundedRectangle(d.X0, d.Y0, d.W(), d.H(), l.DiskCorner)
	dc.SetColor(l.DiskShellFill)
	if l.DiskShellStrokeWidth > 0 {
		dc.FillPreserve()
		dc.SetColor(l.DiskShellStroke)
		dc.SetLineWidth(l.DiskShellStrokeWidth)
		dc.Stroke()
	} else {
		dc.Fill()
	}

	inner := d.Inset(l.DiskInset)
	dc.DrawRectangle(inner.X0, inner.Y0, inner.W(), inner.H())
	dc.SetColor(shieldFill)
	dc.Fill()

	if l.DiskLabelHeight > 0 {
		dc.DrawRectangle(inner.X0, inner.Y0, inner.W(), l.DiskLabelHeight)
		dc.SetColor(white)
		dc.Fill()
	}

	// The data lines. A row whose bottom would cross the inner plate is
	// skipped rather than clipped.
	dc.SetColor(white)
	for i := 0; i < l.DiskLineCount; i++ {
		y := d.Y0 + l.DiskLineStart + float64(i)*l.DiskLinePitch
		if y+l.DiskLineHeight > inner.Y1 {
			continue
		}
		dc.DrawRectangle(d.X0+l.DiskLineInset, y, d.W()-2*l.DiskLineInset, l.DiskLineHeight)
		dc.Fill()
	}
}

func drawHighlight(dc *gg.Context, l *Layout) {
	if len(l.Highlight) > 0 {
		polygon(dc, l.Highlight)
	} else {
		cx, cy := l.HighlightOval.Center()
		rx, ry := l.HighlightOval.Radii()
		dc.DrawEllipse(cx, cy, rx, ry)
	}
	dc.SetColor(l.HighlightFill)
	dc.Fill()
}

// polygon traces a closed path through pts.
func polygon(dc *gg.Context, pts []Pt) {
	dc.NewSubPath()
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}

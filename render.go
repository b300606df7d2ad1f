package pickchar

import (
	"image"
	"image/color"
	"image/draw"
)

// markColor is the fill for point marks on the combo image.
var markColor = color.RGBA{R: 0xFF, A: 0xFF}

// MarkOptions switches on point marks in RenderCombo. A nil Font draws
// marks with the glyph font; a negative ZeroFill uses the radix default.
type MarkOptions struct {
	Font     *Font
	Radix    Radix
	ZeroFill int
}

// RenderCombo draws every point onto one white canvas laid out as a grid
// in input order: glyphs in black at the padded cell origin and, when
// marks are given, the formatted point in red at the raw cell corner.
// Callers sort or filter points beforehand; the slice order is the grid
// order. The first failure aborts the render and discards the canvas.
func RenderCombo(points []rune, fnt *Font, columns int, xpad, ypad Pad, marks *MarkOptions) (*image.RGBA, error) {
	g, err := NewGrid(len(points), columns, fnt.Size, xpad, ypad)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, p := range points {
		x, y := g.GlyphOrigin(i)
		fnt.DrawPoint(img, x, y, p, color.Black)

		if marks == nil {
			continue
		}
		text, err := FormatMark(p, marks.Radix, marks.ZeroFill)
		if err != nil {
			return nil, err
		}
		mf := marks.Font
		if mf == nil {
			mf = fnt
		}
		cx, cy := g.CellOrigin(i)
		mf.DrawText(img, cx, cy, text, markColor)
	}
	return img, nil
}

// RenderEach draws each point onto its own transparent, exactly cell-sized
// canvas. The result is 1:1 with points, in the same order, ready to pair
// with the per-pick image paths.
func RenderEach(points []rune, fnt *Font, xpad, ypad Pad) ([]*image.NRGBA, error) {
	g, err := NewGrid(len(points), 1, fnt.Size, xpad, ypad)
	if err != nil {
		return nil, err
	}
	imgs := make([]*image.NRGBA, len(points))
	for i, p := range points {
		img := image.NewNRGBA(image.Rect(0, 0, g.CellWidth, g.CellHeight))
		fnt.DrawPoint(img, xpad.Before, ypad.Before, p, color.Black)
		imgs[i] = img
	}
	return imgs, nil
}

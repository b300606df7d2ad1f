package bdf

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face presents a Font as a golang.org/x/image/font Face. A bitmap font
// has exactly one size, the one it was authored at, so Face takes no size
// options.
type Face struct {
	font  *Font
	masks map[rune]*image.Alpha
}

var _ font.Face = (*Face)(nil)

// NewFace prepares draw masks for every glyph in f.
func NewFace(f *Font) *Face {
	face := &Face{
		font:  f,
		masks: make(map[rune]*image.Alpha, len(f.Glyphs)),
	}
	for r, g := range f.Glyphs {
		face.masks[r] = glyphMask(g)
	}
	return face
}

// glyphMask expands the packed bitmap rows into an 8-bit alpha image.
// Rows are padded to whole bytes, so the leftmost pixel sits below the
// top bit of the padded width, not bit 31.
func glyphMask(g *Glyph) *image.Alpha {
	w, h := g.BoundingBox[0], g.BoundingBox[1]
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	bits := 8 * (((w - 1) / 8) + 1)
	for y := 0; y < h; y++ {
		row := g.Bitmap[y]
		for x := 0; x < w; x++ {
			if row>>(bits-1-x)&1 != 0 {
				m.SetAlpha(x, y, color.Alpha{A: 0xFF})
			}
		}
	}
	return m
}

func (f *Face) Close() error { return nil }

// Metrics derives line metrics from the font bounding box: the box above
// the baseline is ascent, the part below is descent.
func (f *Face) Metrics() font.Metrics {
	asc := f.font.BoundingBox[1] + f.font.BoundingBox[3]
	return font.Metrics{
		Height:     fixed.I(f.font.BoundingBox[1]),
		Ascent:     fixed.I(asc),
		Descent:    fixed.I(-f.font.BoundingBox[3]),
		XHeight:    fixed.I(asc),
		CapHeight:  fixed.I(asc),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Glyph positions r's bitmap so that dot sits on the baseline: the box
// bottom is yoff above (or below, when negative) the dot, and the box top
// follows from its height.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g, found := f.font.Glyphs[r]
	if !found {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := int(dot.X+32)>>6 + g.BoundingBox[2]
	y := int(dot.Y+32)>>6 - (g.BoundingBox[1] + g.BoundingBox[3])
	m := f.masks[r]
	return m.Bounds().Add(image.Point{X: x, Y: y}), m, image.Point{}, fixed.I(g.Advance), true
}

func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, found := f.font.Glyphs[r]
	if !found {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(
		g.BoundingBox[2],
		-(g.BoundingBox[1] + g.BoundingBox[3]),
		g.BoundingBox[2]+g.BoundingBox[0],
		-g.BoundingBox[3],
	)
	return bounds, fixed.I(g.Advance), true
}

func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, found := f.font.Glyphs[r]
	if !found {
		return 0, false
	}
	return fixed.I(g.Advance), true
}

// Package pickchar renders selected character points of a font to raster
// images: one grid ("combo") image of every picked character with optional
// numeric point marks, or one minimally sized image per character. It is
// useful for seeing what a font actually covers and for slicing a font
// into per-character sprites.
//
// Fonts in an SFNT container (TTF, OTF) are rasterized through
// golang.org/x/image/font/opentype; BDF bitmap fonts load through the
// included bdf package as a fallback. See cmd/pickchar for the command
// line front end.
package pickchar

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// Font is a loaded font ready for drawing at one fixed pixel size. Two
// independent Fonts may be in play at once: one for glyphs and one for
// point marks, each with its own size and encoding.
type Font struct {
	Face     font.Face
	Size     int    // nominal pixel size, drives cell geometry
	Name     string // family name, when the font states one
	Encoding string // encoding selected while opening

	otf *sfnt.Font // nil for bitmap fonts
	buf sfnt.Buffer
}

// DrawPoint draws the glyph for a single character point with the top-left
// corner of its line box at x,y. The point is translated through the Font's
// encoding before the face lookup. What a point without a glyph leaves
// behind is the face's choice: SFNT faces draw their notdef glyph, bitmap
// faces draw nothing at all.
func (f *Font) DrawPoint(dst draw.Image, x, y int, p rune, clr color.Color) {
	f.DrawText(dst, x, y, string(f.mapPoint(p)), clr)
}

// DrawText draws s with the top-left corner of its line box at x,y. Runes
// are looked up as-is, with no character point translation.
func (f *Font) DrawText(dst draw.Image, x, y int, s string, clr color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: f.Face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + f.Face.Metrics().Ascent},
	}
	d.DrawString(s)
}

// mapPoint translates a character point into the rune the selected
// encoding's cmap subtable indexes it under. Points above the byte range
// pass through untouched under every encoding.
func (f *Font) mapPoint(p rune) rune {
	if p < 0 || p > 0xFF {
		return p
	}
	switch f.Encoding {
	case EncodingSymb:
		// symbol cmaps commonly alias the byte range at U+F000
		if !f.covers(p) {
			return 0xF000 | p
		}
	case EncodingArmn:
		return charmap.Macintosh.DecodeByte(byte(p))
	case EncodingADOB:
		return adobeStandardRune(byte(p))
	}
	return p
}

// covers reports whether the face maps r to a real glyph rather than the
// notdef at index 0. Bitmap fonts always report true; their face answers
// for missing glyphs itself.
func (f *Font) covers(r rune) bool {
	if f.otf == nil {
		return true
	}
	gi, err := f.otf.GlyphIndex(&f.buf, r)
	return err == nil && gi != 0
}

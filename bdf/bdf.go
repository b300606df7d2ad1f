// Package bdf reads Adobe Glyph Bitmap Distribution Format fonts and
// presents them as golang.org/x/image/font faces. BDF is a plain-text
// format: a header with global metrics and properties, then one
// STARTCHAR..ENDCHAR block per glyph with a hex-encoded bitmap.
//
// https://www.adobe.com/content/dam/acom/en/devnet/font/pdfs/5005.BDF_Spec.pdf
package bdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Glyph is a single bitmap glyph. The bounding box is kept exactly as the
// BBX line states it: width, height, then the x and y offsets of the box
// from the glyph origin on the baseline.
type Glyph struct {
	Name     string
	Encoding rune
	Advance  int // DWIDTH x step, pixels

	BoundingBox [4]int   // width, height, x offset, y offset
	Bitmap      []uint32 // one row per BBX line, MSB leftmost, at most 32 pixels wide
}

// Font is a parsed BDF font.
type Font struct {
	Version  string
	Comments string
	Name     string

	PointSize   int
	ResolutionX int
	ResolutionY int

	BoundingBox [4]int // width, height, x offset, y offset

	Properties map[string]string

	Glyphs map[rune]*Glyph
}

// Parse reads a BDF font. The whole glyph set is decoded up front; input
// without a CHARS declaration or with truncated glyph data is rejected.
func Parse(r io.Reader) (*Font, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() || !strings.HasPrefix(s.Text(), "STARTFONT ") {
		return nil, fmt.Errorf("bdf: missing STARTFONT header")
	}
	fnt := &Font{
		Version:    strings.TrimPrefix(s.Text(), "STARTFONT "),
		Properties: make(map[string]string),
	}

	// header section, up to and including the CHARS count
	numGlyphs := -1
	inProps := false
	for numGlyphs < 0 && s.Scan() {
		key, rest := splitKeyword(s.Text())
		switch {
		case key == "STARTPROPERTIES":
			inProps = true
		case key == "ENDPROPERTIES":
			inProps = false
		case inProps:
			fnt.Properties[key] = strings.Trim(rest, `"`)
		case key == "CHARS":
			fmt.Sscanf(rest, "%d", &numGlyphs)
		default:
			if pfunc, ok := parsers[key]; ok {
				pfunc(fnt, rest)
			}
		}
	}
	if numGlyphs < 0 {
		return nil, fmt.Errorf("bdf: missing CHARS count")
	}

	fnt.Glyphs = make(map[rune]*Glyph, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		g, err := parseGlyph(s)
		if err != nil {
			return nil, fmt.Errorf("bdf: glyph %d: %w", i, err)
		}
		fnt.Glyphs[g.Encoding] = g
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("bdf: %w", err)
	}
	return fnt, nil
}

func splitKeyword(line string) (key, rest string) {
	key, rest, _ = strings.Cut(line, " ")
	return key, rest
}

func parseGlyph(s *bufio.Scanner) (*Glyph, error) {
	g := &Glyph{}
	for {
		if !s.Scan() {
			return nil, fmt.Errorf("unexpected end of input before STARTCHAR")
		}
		if strings.HasPrefix(s.Text(), "STARTCHAR") {
			_, g.Name = splitKeyword(s.Text())
			break
		}
	}
	for {
		if !s.Scan() {
			return nil, fmt.Errorf("%s: unexpected end of input before BITMAP", g.Name)
		}
		key, rest := splitKeyword(s.Text())
		if key == "BITMAP" {
			break
		}
		if cfunc, ok := charparsers[key]; ok {
			cfunc(g, rest)
		}
	}
	g.Bitmap = make([]uint32, g.BoundingBox[1])
	for y := range g.Bitmap {
		if !s.Scan() {
			return nil, fmt.Errorf("%s: truncated bitmap", g.Name)
		}
		fmt.Sscanf(s.Text(), "%X", &g.Bitmap[y])
	}
	if s.Scan() && s.Text() != "ENDCHAR" {
		return nil, fmt.Errorf("%s: bitmap taller than its bounding box", g.Name)
	}
	return g, nil
}

var charparsers = map[string]func(*Glyph, string){
	"ENCODING": func(g *Glyph, rest string) {
		n := 0
		fmt.Sscanf(rest, "%d", &n)
		g.Encoding = rune(n)
	},
	"DWIDTH": func(g *Glyph, rest string) {
		fmt.Sscanf(rest, "%d", &g.Advance)
	},
	"BBX": func(g *Glyph, rest string) {
		fmt.Sscanf(rest, "%d %d %d %d",
			&g.BoundingBox[0], &g.BoundingBox[1], &g.BoundingBox[2], &g.BoundingBox[3])
	},
}

var parsers = map[string]func(*Font, string){
	"COMMENT": func(f *Font, rest string) {
		f.Comments += rest + "\n"
	},
	"FONT": func(f *Font, rest string) {
		f.Name = rest
	},
	"SIZE": func(f *Font, rest string) {
		fmt.Sscanf(rest, "%d %d %d", &f.PointSize, &f.ResolutionX, &f.ResolutionY)
	},
	"FONTBOUNDINGBOX": func(f *Font, rest string) {
		fmt.Sscanf(rest, "%d %d %d %d",
			&f.BoundingBox[0], &f.BoundingBox[1], &f.BoundingBox[2], &f.BoundingBox[3])
	},
}

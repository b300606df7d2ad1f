package pickchar

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/header"

	"github.com/pickchar/pickchar/bdf"
)

// Font encodings, named by their FreeType charmap tags.
const (
	EncodingADBE = "ADBE" // Adobe expert
	EncodingADOB = "ADOB" // Adobe standard
	EncodingArmn = "armn" // Apple Roman
	EncodingSymb = "symb" // Microsoft symbol
	EncodingUnic = "unic" // Unicode
)

// EncodingBitmap marks a Font that loaded through the BDF fallback.
const EncodingBitmap = "bitmap"

// trialEncodings is the order tried when OpenFont is given no encoding.
// armn sits ahead of symb: fonts carrying both subtables index the
// expected glyphs through the Macintosh one.
var trialEncodings = []string{EncodingADBE, EncodingADOB, EncodingArmn, EncodingSymb, EncodingUnic}

// EncodingAttempt records one failed strategy while opening a font file.
type EncodingAttempt struct {
	Encoding string
	Err      error
}

// FontLoadError reports a font file that could not be opened under any
// attempted encoding. Attempts holds every failure in trial order.
type FontLoadError struct {
	Path     string
	Attempts []EncodingAttempt
}

func (e *FontLoadError) Error() string {
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = fmt.Sprintf("%s: %v", a.Encoding, a.Err)
	}
	return fmt.Sprintf("open font %s: %s", e.Path, strings.Join(parts, "; "))
}

// Unwrap returns the last attempt's error.
func (e *FontLoadError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// OpenFont opens the font file at path with a face prepared at the given
// pixel size. encoding may name one of the Encoding constants to select a
// cmap flavor explicitly, with no fallback on failure. When encoding is
// empty, the encodings are tried in trialEncodings order and a BDF bitmap
// load is the final fallback; only if every attempt fails does OpenFont
// return a FontLoadError carrying all of them.
func OpenFont(path string, size int, encoding string) (*Font, error) {
	if size < 1 {
		return nil, fmt.Errorf("font size must be positive (got %d)", size)
	}
	if encoding != "" && !slices.Contains(trialEncodings, encoding) {
		return nil, fmt.Errorf("unknown font encoding %q (valid: %s)",
			encoding, strings.Join(trialEncodings, " "))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}

	if encoding != "" {
		f, aerr := openSFNT(data, size, encoding)
		if aerr != nil {
			return nil, &FontLoadError{Path: path, Attempts: []EncodingAttempt{{encoding, aerr}}}
		}
		return f, nil
	}

	var attempts []EncodingAttempt
	subtables, err := readCmapKeys(data)
	if err != nil {
		attempts = append(attempts, EncodingAttempt{"sfnt", err})
	} else {
		for _, enc := range trialEncodings {
			if err := matchEncoding(subtables, enc); err != nil {
				attempts = append(attempts, EncodingAttempt{enc, err})
				continue
			}
			f, err := newSFNTFont(data, size, enc)
			if err == nil {
				return f, nil
			}
			// face construction does not depend on the encoding chosen, so
			// the remaining trials cannot do better
			attempts = append(attempts, EncodingAttempt{enc, err})
			break
		}
	}

	f, err := openBitmap(data)
	if err != nil {
		attempts = append(attempts, EncodingAttempt{EncodingBitmap, err})
		return nil, &FontLoadError{Path: path, Attempts: attempts}
	}
	return f, nil
}

func openSFNT(data []byte, size int, enc string) (*Font, error) {
	subtables, err := readCmapKeys(data)
	if err != nil {
		return nil, err
	}
	if err := matchEncoding(subtables, enc); err != nil {
		return nil, err
	}
	return newSFNTFont(data, size, enc)
}

// readCmapKeys decodes the cmap table of an SFNT font into its subtable
// inventory. The face built later keeps its own subtable choice private,
// so encoding selection inspects the table directly.
func readCmapKeys(data []byte) (cmap.Table, error) {
	r := bytes.NewReader(data)
	hdr, err := header.Read(r)
	if err != nil {
		return nil, err
	}
	cmapData, err := hdr.ReadTableBytes(r, "cmap")
	if err != nil {
		return nil, err
	}
	return cmap.Decode(cmapData)
}

// matchEncoding checks that the subtable inventory carries enc.
func matchEncoding(subtables cmap.Table, enc string) error {
	for key := range subtables {
		if encodingMatches(key, enc) {
			return nil
		}
	}
	return fmt.Errorf("no %s cmap subtable (have %s)", enc, subtableList(subtables))
}

func encodingMatches(key cmap.Key, enc string) bool {
	switch enc {
	case EncodingUnic:
		return key.PlatformID == 0 || key.PlatformID == 2 ||
			(key.PlatformID == 3 && (key.EncodingID == 1 || key.EncodingID == 10))
	case EncodingSymb:
		return key.PlatformID == 3 && key.EncodingID == 0
	case EncodingArmn:
		return key.PlatformID == 1 && key.EncodingID == 0
	case EncodingADOB:
		return key.PlatformID == 7 && key.EncodingID == 0
	case EncodingADBE:
		return key.PlatformID == 7 && key.EncodingID == 1
	}
	return false
}

func subtableList(subtables cmap.Table) string {
	keys := maps.Keys(subtables)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].PlatformID != keys[j].PlatformID {
			return keys[i].PlatformID < keys[j].PlatformID
		}
		return keys[i].EncodingID < keys[j].EncodingID
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d.%d", k.PlatformID, k.EncodingID)
	}
	return strings.Join(parts, " ")
}

func newSFNTFont(data []byte, size int, enc string) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f := &Font{Face: face, Size: size, Encoding: enc, otf: otf}
	if name, err := otf.Name(nil, sfnt.NameIDFamily); err == nil {
		f.Name = name
	}
	return f, nil
}

func openBitmap(data []byte) (*Font, error) {
	bf, err := bdf.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Font{
		Face:     bdf.NewFace(bf),
		Size:     bf.BoundingBox[1],
		Name:     bf.Name,
		Encoding: EncodingBitmap,
	}, nil
}

// adobeStandardRune maps a byte code in Adobe StandardEncoding to its
// Unicode rune. Codes the encoding leaves undefined map to U+FFFD.
func adobeStandardRune(b byte) rune {
	if r, ok := adobeStandard[b]; ok {
		return r
	}
	if b >= 0x20 && b <= 0x7E {
		return rune(b)
	}
	return '�'
}

// adobeStandard holds the codes where StandardEncoding differs from ASCII
// or sits outside it. The printable ASCII range is identity apart from the
// two quote entries below.
var adobeStandard = map[byte]rune{
	0x27: '’',  // quoteright
	0x60: '‘',  // quoteleft
	0xA1: '¡',  // exclamdown
	0xA2: '¢',  // cent
	0xA3: '£',  // sterling
	0xA4: '⁄',  // fraction
	0xA5: '¥',  // yen
	0xA6: 'ƒ',  // florin
	0xA7: '§',  // section
	0xA8: '¤',  // currency
	0xA9: '\'', // quotesingle
	0xAA: '“',  // quotedblleft
	0xAB: '«',  // guillemotleft
	0xAC: '‹',  // guilsinglleft
	0xAD: '›',  // guilsinglright
	0xAE: 'ﬁ',  // fi
	0xAF: 'ﬂ',  // fl
	0xB1: '–',  // endash
	0xB2: '†',  // dagger
	0xB3: '‡',  // daggerdbl
	0xB4: '·',  // periodcentered
	0xB6: '¶',  // paragraph
	0xB7: '•',  // bullet
	0xB8: '‚',  // quotesinglbase
	0xB9: '„',  // quotedblbase
	0xBA: '”',  // quotedblright
	0xBB: '»',  // guillemotright
	0xBC: '…',  // ellipsis
	0xBD: '‰',  // perthousand
	0xBF: '¿',  // questiondown
	0xC1: '`',  // grave
	0xC2: '´',  // acute
	0xC3: 'ˆ',  // circumflex
	0xC4: '˜',  // tilde
	0xC5: '¯',  // macron
	0xC6: '˘',  // breve
	0xC7: '˙',  // dotaccent
	0xC8: '¨',  // dieresis
	0xCA: '˚',  // ring
	0xCB: '¸',  // cedilla
	0xCD: '˝',  // hungarumlaut
	0xCE: '˛',  // ogonek
	0xCF: 'ˇ',  // caron
	0xD0: '—',  // emdash
	0xE1: 'Æ',  // AE
	0xE3: 'ª',  // ordfeminine
	0xE8: 'Ł',  // Lslash
	0xE9: 'Ø',  // Oslash
	0xEA: 'Œ',  // OE
	0xEB: 'º',  // ordmasculine
	0xF1: 'æ',  // ae
	0xF5: 'ı',  // dotlessi
	0xF8: 'ł',  // lslash
	0xF9: 'ø',  // oslash
	0xFA: 'œ',  // oe
	0xFB: 'ß',  // germandbls
}

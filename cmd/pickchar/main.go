// pickchar renders a selected range of characters from a font file to PNG
// images: a grid ("combo") image of every picked character, one image per
// character, or both. Characters are picked by code point and can be
// annotated on the grid with their code point in hex, dec, oct or bin. Ex:
//
//      pickchar -f myfont.ttf -j -m hex -d out
//
// renders code points 0x00-0xFF of myfont.ttf into out/myfont.ttf.png as a
// 16 column grid with red hex marks. Flags may also come from a .env file
// through the PICKCHAR_FONT and PICKCHAR_OUT_DIR variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/pickchar/pickchar"
)

var (
	fontPath     string
	fontSize     int
	fontEncoding string
	minPoint     int
	maxPoint     int
	drawCombo    bool
	drawEach     bool
	outDir       string
	comboImage   string
	columns      int
	xpadSpec     string
	ypadSpec     string
	markRadix    string
	markZfill    int
	markFontPath string
	markSize     int
	markEncoding string
	viewCombo    bool
	verbose      bool
)

// stringFlag registers one flag under its short and long names.
func stringFlag(p *string, short, long, value, usage string) {
	flag.StringVar(p, short, value, usage)
	flag.StringVar(p, long, value, usage)
}

func intFlag(p *int, short, long string, value int, usage string) {
	flag.IntVar(p, short, value, usage)
	flag.IntVar(p, long, value, usage)
}

func boolFlag(p *bool, short, long, usage string) {
	flag.BoolVar(p, short, false, usage)
	flag.BoolVar(p, long, false, usage)
}

func setupFlags() {
	stringFlag(&fontPath, "f", "font", os.Getenv("PICKCHAR_FONT"), "glyph font file (TTF, OTF or BDF)")
	intFlag(&fontSize, "s", "font-size", 36, "glyph font size in pixels")
	stringFlag(&fontEncoding, "e", "font-encoding", "", "glyph font encoding (ADBE ADOB armn symb unic)")
	intFlag(&minPoint, "a", "min", -1, "drop picked points below this code point")
	intFlag(&maxPoint, "b", "max", -1, "drop picked points above this code point")
	boolFlag(&drawCombo, "j", "draw-combo", "draw all picked characters on one grid image")
	boolFlag(&drawEach, "k", "draw-each", "draw one image per picked character")
	stringFlag(&outDir, "d", "out-dir", envOr("PICKCHAR_OUT_DIR", "."), "output directory, created if missing")
	stringFlag(&comboImage, "i", "image", "", "combo image path (default <font>.png in the output directory)")
	intFlag(&columns, "c", "xcount", 16, "characters per grid row")
	stringFlag(&xpadSpec, "x", "xpad", "0,0", "horizontal cell padding: N or N,N")
	stringFlag(&ypadSpec, "y", "ypad", "0,0", "vertical cell padding: N or N,N")
	stringFlag(&markRadix, "m", "mark-radix", "", "annotate code points in this radix (hex dec oct bin)")
	intFlag(&markZfill, "z", "mark-zfill", -1, "zero-fill marks to this many digits")
	stringFlag(&markFontPath, "g", "mark-font", "", "mark font file (default: the glyph font)")
	intFlag(&markSize, "t", "mark-font-size", 10, "mark font size in pixels")
	stringFlag(&markEncoding, "u", "mark-font-encoding", "", "mark font encoding")
	boolFlag(&viewCombo, "v", "view-combo", "open the combo image in the platform viewer")
	flag.BoolVar(&verbose, "verbose", false, "log debug details to stderr")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	godotenv.Load() // a .env file may carry PICKCHAR_* flag defaults
	setupFlags()
	flag.Parse()
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if fontPath == "" {
		return errors.New("-f/-font is required")
	}
	if !drawCombo && !drawEach {
		return errors.New("nothing to draw: pass -j/-draw-combo, -k/-draw-each or both")
	}
	xpad, err := pickchar.ParsePad(xpadSpec)
	if err != nil {
		return fmt.Errorf("-x/-xpad: %w", err)
	}
	ypad, err := pickchar.ParsePad(ypadSpec)
	if err != nil {
		return fmt.Errorf("-y/-ypad: %w", err)
	}
	var marks *pickchar.MarkOptions
	if markRadix != "" {
		radix, err := pickchar.ParseRadix(markRadix)
		if err != nil {
			return fmt.Errorf("-m/-mark-radix: %w", err)
		}
		marks = &pickchar.MarkOptions{Radix: radix, ZeroFill: markZfill}
	}

	fnt, err := pickchar.OpenFont(fontPath, fontSize, fontEncoding)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"name": fnt.Name, "encoding": fnt.Encoding, "size": fnt.Size}).
		Debug("glyph font ready")
	if drawCombo && marks != nil {
		mf, err := loadMarkFont()
		if err != nil {
			return err
		}
		marks.Font = mf
		log.WithFields(log.Fields{"name": mf.Name, "encoding": mf.Encoding, "size": mf.Size}).
			Debug("mark font ready")
	}

	ctx := pickchar.Context{FontPath: fontPath, OutDir: outDir}
	picks, err := pickchar.Select(nil, ctx, minPoint, maxPoint)
	if err != nil {
		return err
	}
	if len(picks) == 0 {
		return errors.New("no character points selected")
	}
	log.Debugf("selected %d character points", len(picks))

	points := make([]rune, len(picks))
	for i, p := range picks {
		points[i] = p.Point
	}

	if drawCombo {
		img, err := pickchar.RenderCombo(points, fnt, columns, xpad, ypad, marks)
		if err != nil {
			return err
		}
		path := pickchar.ComboImagePath(fontPath, outDir, comboImage)
		if err := writePNG(path, img); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Created combo image:", path)
		if viewCombo {
			if err := view(path); err != nil {
				return fmt.Errorf("view combo image: %w", err)
			}
		}
	}
	if drawEach {
		imgs, err := pickchar.RenderEach(points, fnt, xpad, ypad)
		if err != nil {
			return err
		}
		for i, img := range imgs {
			if err := writePNG(picks[i].ImagePath, img); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Created character image:", picks[i].ImagePath)
		}
	}
	return nil
}

// loadMarkFont opens the face combo marks are drawn with. Without
// -g/-mark-font the mark face comes from the glyph font file, at the mark
// font size rather than the glyph size.
func loadMarkFont() (*pickchar.Font, error) {
	path := markFontPath
	if path == "" {
		path = fontPath
	}
	return pickchar.OpenFont(path, markSize, markEncoding)
}

// writePNG writes img to path, creating the parent directory as needed.
func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// view opens path in the platform image viewer without waiting for it.
func view(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("/usr/bin/open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	log.Debugf("viewer: %s", strings.Join(cmd.Args, " "))
	return cmd.Start()
}

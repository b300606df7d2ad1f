package pickchar

import (
	"fmt"
	"path/filepath"
)

// Context carries the call environment handed to a Picker.
type Context struct {
	FontPath string
	OutDir   string
}

// Pick names one character point to render and where its individual image
// goes. An empty ImagePath receives the default name during Select;
// relative paths are placed under the output directory.
type Pick struct {
	Point     rune
	ImagePath string
}

// Picker chooses the character points to render. Implementations return
// picks in the order the grid should show them.
type Picker interface {
	Pick(ctx Context) ([]Pick, error)
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(ctx Context) ([]Pick, error)

func (f PickerFunc) Pick(ctx Context) ([]Pick, error) { return f(ctx) }

// PointRange picks every character point from First through Last
// inclusive. An inverted range picks nothing.
type PointRange struct {
	First, Last rune
}

func (r PointRange) Pick(Context) ([]Pick, error) {
	var picks []Pick
	for p := r.First; p <= r.Last; p++ {
		picks = append(picks, Pick{Point: p})
		if p == r.Last {
			break // the increment would wrap when Last is the maximum rune
		}
	}
	return picks, nil
}

// PointList picks an explicit sequence of character points, kept in order.
type PointList []rune

func (l PointList) Pick(Context) ([]Pick, error) {
	picks := make([]Pick, len(l))
	for i, p := range l {
		picks[i] = Pick{Point: p}
	}
	return picks, nil
}

// DefaultPicker selects the full 8-bit range 0x00 through 0xFF.
var DefaultPicker Picker = PointRange{First: 0, Last: 0xFF}

// SelectionError wraps a failure while picking characters or normalizing
// the picked records.
type SelectionError struct {
	Err error
}

func (e *SelectionError) Error() string { return "character selection: " + e.Err.Error() }

func (e *SelectionError) Unwrap() error { return e.Err }

// Select runs the picker and normalizes its picks: points outside lo..hi
// are dropped (a negative hi means no upper bound), every pick gets an
// image path, and relative paths land under ctx.OutDir. The bounds apply
// after picking, so a picker's ordering survives the clamp.
func Select(p Picker, ctx Context, lo, hi int) ([]Pick, error) {
	if p == nil {
		p = DefaultPicker
	}
	picks, err := p.Pick(ctx)
	if err != nil {
		return nil, &SelectionError{Err: err}
	}
	out := make([]Pick, 0, len(picks))
	for i, pk := range picks {
		if pk.Point < 0 {
			return nil, &SelectionError{Err: fmt.Errorf("pick %d: negative character point %d", i, pk.Point)}
		}
		if int(pk.Point) < lo || (hi >= 0 && int(pk.Point) > hi) {
			continue
		}
		if pk.ImagePath == "" {
			pk.ImagePath = fmt.Sprintf("%s.%02X.png", filepath.Base(ctx.FontPath), pk.Point)
		}
		if !filepath.IsAbs(pk.ImagePath) {
			pk.ImagePath = filepath.Join(ctx.OutDir, pk.ImagePath)
		}
		out = append(out, pk)
	}
	return out, nil
}

// ComboImagePath resolves where the combo image goes: an absolute override
// wins, a relative one lands under outDir, and the default name is the
// font file's name with a .png suffix.
func ComboImagePath(fontPath, outDir, override string) string {
	name := override
	if name == "" {
		name = filepath.Base(fontPath) + ".png"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(outDir, name)
}

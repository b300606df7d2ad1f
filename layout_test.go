package pickchar

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type gridTestCase struct {
	Count, Columns, FontSize int
	XPad, YPad               Pad
	Want                     Grid
}

var gridTestCases = []gridTestCase{
	{
		// full 8-bit range at the usual combo settings
		Count: 256, Columns: 16, FontSize: 30,
		XPad: Pad{12, 12}, YPad: Pad{12, 12},
		Want: Grid{
			Columns: 16, Rows: 16,
			CellWidth: 54, CellHeight: 54,
			Width: 864, Height: 864,
			XPad: Pad{12, 12}, YPad: Pad{12, 12},
		},
	},
	{
		// an exact multiple must not add an empty row
		Count: 32, Columns: 16, FontSize: 10,
		Want: Grid{Columns: 16, Rows: 2, CellWidth: 10, CellHeight: 10, Width: 160, Height: 20},
	},
	{
		// one leftover character forces one more row
		Count: 33, Columns: 16, FontSize: 10,
		Want: Grid{Columns: 16, Rows: 3, CellWidth: 10, CellHeight: 10, Width: 160, Height: 30},
	},
	{
		Count: 3, Columns: 2, FontSize: 20,
		Want: Grid{Columns: 2, Rows: 2, CellWidth: 20, CellHeight: 20, Width: 40, Height: 40},
	},
	{
		// asymmetric padding
		Count: 1, Columns: 1, FontSize: 8,
		XPad: Pad{1, 2}, YPad: Pad{3, 4},
		Want: Grid{
			Columns: 1, Rows: 1,
			CellWidth: 11, CellHeight: 15,
			Width: 11, Height: 15,
			XPad: Pad{1, 2}, YPad: Pad{3, 4},
		},
	},
	{
		// no characters, no rows
		Count: 0, Columns: 16, FontSize: 10,
		Want: Grid{Columns: 16, Rows: 0, CellWidth: 10, CellHeight: 10, Width: 160, Height: 0},
	},
}

func TestNewGrid(t *testing.T) {
	for _, c := range gridTestCases {
		t.Run(fmt.Sprintf("%dx%d", c.Count, c.Columns), func(t *testing.T) {
			got, err := NewGrid(c.Count, c.Columns, c.FontSize, c.XPad, c.YPad)
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}
			if diff := cmp.Diff(c.Want, got); diff != "" {
				t.Errorf("grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewGridRejects(t *testing.T) {
	if _, err := NewGrid(10, 0, 36, Pad{}, Pad{}); err == nil {
		t.Error("expected an error for zero columns")
	}
	if _, err := NewGrid(-1, 16, 36, Pad{}, Pad{}); err == nil {
		t.Error("expected an error for a negative count")
	}
	if _, err := NewGrid(10, 16, 0, Pad{}, Pad{}); err == nil {
		t.Error("expected an error for a zero font size")
	}
}

func TestCellOrigin(t *testing.T) {
	g, err := NewGrid(3, 2, 16, Pad{2, 2}, Pad{3, 3})
	if err != nil {
		t.Fatal(err)
	}
	if x, y := g.CellOrigin(1); x != g.CellWidth || y != 0 {
		t.Errorf("CellOrigin(1) = %d,%d, want %d,0", x, y, g.CellWidth)
	}
	// index 2 wraps to the second row, first column
	if x, y := g.CellOrigin(2); x != 0 || y != g.CellHeight {
		t.Errorf("CellOrigin(2) = %d,%d, want 0,%d", x, y, g.CellHeight)
	}
	if x, y := g.GlyphOrigin(2); x != 2 || y != g.CellHeight+3 {
		t.Errorf("GlyphOrigin(2) = %d,%d, want 2,%d", x, y, g.CellHeight+3)
	}
}

type padTestCase struct {
	In      string
	Want    Pad
	WantErr bool
}

var padTestCases = []padTestCase{
	{In: "", Want: Pad{}},
	{In: "0,0", Want: Pad{}},
	{In: "12", Want: Pad{12, 12}},
	{In: "12,4", Want: Pad{12, 4}},
	{In: " 3 , 5 ", Want: Pad{3, 5}},
	{In: "1,2,3", WantErr: true},
	{In: "x", WantErr: true},
	{In: "4,", WantErr: true},
	{In: "-1,0", WantErr: true},
}

func TestParsePad(t *testing.T) {
	for _, c := range padTestCases {
		t.Run(c.In, func(t *testing.T) {
			got, err := ParsePad(c.In)
			if c.WantErr {
				if err == nil {
					t.Fatalf("ParsePad(%q) = %+v, want an error", c.In, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePad(%q) failed: %v", c.In, err)
			}
			if got != c.Want {
				t.Errorf("ParsePad(%q) = %+v, want %+v", c.In, got, c.Want)
			}
		})
	}
}

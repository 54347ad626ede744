package geometry

import (
	"fmt"
	"testing"
)

// px is a plain numeric edge type used to check the containers are not tied to Number.
type px float64

func (p px) Add(o px) px { return p + o }

func sampleOffsets() EdgeOffsets[Number] {
	return EdgeOffsets[Number]{Top: Defined(1), Left: Defined(2), Bottom: Defined(3), Right: Defined(4)}
}

func TestEdgeOffsetsProjections(t *testing.T) {
	type tc struct {
		mainStart, mainEnd, crossStart, crossEnd Number
		main, cross                              Number
	}

	row := tc{
		mainStart: Defined(2), mainEnd: Defined(4),
		crossStart: Defined(1), crossEnd: Defined(3),
		main: Defined(6), cross: Defined(4),
	}
	column := tc{
		mainStart: Defined(1), mainEnd: Defined(3),
		crossStart: Defined(2), crossEnd: Defined(4),
		main: Defined(4), cross: Defined(6),
	}

	tests := map[Direction]tc{
		Row:           row,
		RowReverse:    row,
		Column:        column,
		ColumnReverse: column,
	}

	o := sampleOffsets()
	for d, tt := range tests {
		t.Run(d.String(), func(t *testing.T) {
			if got := o.MainStart(d); got != tt.mainStart {
				t.Errorf("MainStart() = %v, want %v", got, tt.mainStart)
			}
			if got := o.MainEnd(d); got != tt.mainEnd {
				t.Errorf("MainEnd() = %v, want %v", got, tt.mainEnd)
			}
			if got := o.CrossStart(d); got != tt.crossStart {
				t.Errorf("CrossStart() = %v, want %v", got, tt.crossStart)
			}
			if got := o.CrossEnd(d); got != tt.crossEnd {
				t.Errorf("CrossEnd() = %v, want %v", got, tt.crossEnd)
			}
			if got := MainTotal(o, d); got != tt.main {
				t.Errorf("MainTotal() = %v, want %v", got, tt.main)
			}
			if got := CrossTotal(o, d); got != tt.cross {
				t.Errorf("CrossTotal() = %v, want %v", got, tt.cross)
			}
		})
	}
}

func TestEdgeOffsetsPhysicalTotals(t *testing.T) {
	o := sampleOffsets()
	if got := Horizontal(o); got != Defined(6) {
		t.Fatalf("Horizontal() = %v, want 6", got)
	}
	if got := Vertical(o); got != Defined(4) {
		t.Fatalf("Vertical() = %v, want 4", got)
	}

	o.Left = Undefined()
	if got := Horizontal(o); got != Undefined() {
		t.Fatalf("Horizontal() with undefined left = %v, want undefined", got)
	}
	if got := Vertical(o); got != Defined(4) {
		t.Fatalf("Vertical() should ignore horizontal edges, got %v", got)
	}
	if got := MainTotal(o, Column); got != Defined(4) {
		t.Fatalf("MainTotal(column) = %v, want 4", got)
	}
	if got := CrossTotal(o, Column); got != Undefined() {
		t.Fatalf("CrossTotal(column) = %v, want undefined", got)
	}
}

func TestEdgeOffsetsOverPlainValues(t *testing.T) {
	o := EdgeOffsets[px]{Top: 1, Left: 2, Bottom: 3, Right: 4}
	if got := Horizontal(o); got != 6 {
		t.Fatalf("Horizontal() = %v, want 6", got)
	}
	if got := MainTotal(o, ColumnReverse); got != 4 {
		t.Fatalf("MainTotal() = %v, want 4", got)
	}
}

func TestMapOffsetsIsFieldwise(t *testing.T) {
	o := EdgeOffsets[px]{Top: 1, Left: 2, Bottom: 3, Right: 4}
	f := func(v px) string { return fmt.Sprintf("%gpx", float64(v)*2) }

	got := MapOffsets(o, f)
	want := EdgeOffsets[string]{Top: f(o.Top), Left: f(o.Left), Bottom: f(o.Bottom), Right: f(o.Right)}
	if got != want {
		t.Fatalf("MapOffsets() = %+v, want %+v", got, want)
	}
	if o.Top != 1 {
		t.Fatalf("MapOffsets mutated its input")
	}
}

func TestUniformAndSymmetric(t *testing.T) {
	u := Uniform(Defined(5))
	if u.Top != Defined(5) || u.Left != Defined(5) || u.Bottom != Defined(5) || u.Right != Defined(5) {
		t.Fatalf("Uniform() = %+v", u)
	}
	s := Symmetric(px(1), px(2))
	if s.Top != 1 || s.Bottom != 1 || s.Left != 2 || s.Right != 2 {
		t.Fatalf("Symmetric() = %+v", s)
	}
}

func TestAddOffsets(t *testing.T) {
	a := EdgeOffsets[px]{Top: 1, Left: 2, Bottom: 3, Right: 4}
	got := AddOffsets(a, Uniform(px(10)))
	if got != (EdgeOffsets[px]{Top: 11, Left: 12, Bottom: 13, Right: 14}) {
		t.Fatalf("AddOffsets() = %+v", got)
	}
	n := AddOffsets(sampleOffsets(), EdgeOffsets[Number]{Top: Undefined(), Left: Defined(1), Bottom: Defined(1), Right: Defined(1)})
	if n.Top != Undefined() || n.Left != Defined(3) {
		t.Fatalf("AddOffsets() with undefined = %+v", n)
	}
}

package geometry

import "testing"

func TestDirectionAxes(t *testing.T) {
	type tc struct {
		main, cross Axis
		row         bool
		reverse     bool
	}

	tests := map[Direction]tc{
		Row:           {main: AxisHorizontal, cross: AxisVertical, row: true},
		RowReverse:    {main: AxisHorizontal, cross: AxisVertical, row: true, reverse: true},
		Column:        {main: AxisVertical, cross: AxisHorizontal},
		ColumnReverse: {main: AxisVertical, cross: AxisHorizontal, reverse: true},
	}

	for d, tt := range tests {
		t.Run(d.String(), func(t *testing.T) {
			if got := d.MainAxis(); got != tt.main {
				t.Errorf("MainAxis() = %v, want %v", got, tt.main)
			}
			if got := d.CrossAxis(); got != tt.cross {
				t.Errorf("CrossAxis() = %v, want %v", got, tt.cross)
			}
			if got := d.IsRow(); got != tt.row {
				t.Errorf("IsRow() = %v, want %v", got, tt.row)
			}
			if got := d.IsReverse(); got != tt.reverse {
				t.Errorf("IsReverse() = %v, want %v", got, tt.reverse)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Row, RowReverse, Column, ColumnReverse} {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) error: %v", d.String(), err)
		}
		if got != d {
			t.Fatalf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestDirectionOutOfRangeStaysTotal(t *testing.T) {
	d := Direction(42)
	if d.MainAxis() != AxisHorizontal {
		t.Fatalf("out-of-range direction should behave like row")
	}
	s := Sized(Defined(1), Defined(2))
	if s.Main(d) != Defined(1) {
		t.Fatalf("Main() = %v, want 1", s.Main(d))
	}
	if got := d.String(); got != "Direction(42)" {
		t.Fatalf("String() = %q", got)
	}
}

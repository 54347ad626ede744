package geometry

import "testing"

func TestAxisSizeMainCross(t *testing.T) {
	s := Sized(Defined(120), Defined(40))

	tests := map[Direction]struct{ main, cross Number }{
		Row:           {main: Defined(120), cross: Defined(40)},
		RowReverse:    {main: Defined(120), cross: Defined(40)},
		Column:        {main: Defined(40), cross: Defined(120)},
		ColumnReverse: {main: Defined(40), cross: Defined(120)},
	}

	for d, tt := range tests {
		t.Run(d.String(), func(t *testing.T) {
			if got := s.Main(d); got != tt.main {
				t.Errorf("Main() = %v, want %v", got, tt.main)
			}
			if got := s.Cross(d); got != tt.cross {
				t.Errorf("Cross() = %v, want %v", got, tt.cross)
			}
		})
	}
}

func TestAxisSizeQueriesDoNotMutate(t *testing.T) {
	s := Sized(Defined(120), Defined(40))

	if s.Main(Column) != Defined(40) || s.Cross(Column) != Defined(120) {
		t.Fatalf("column projections wrong: %+v", s)
	}
	if s.Main(Row) != Defined(120) || s.Cross(Row) != Defined(40) {
		t.Fatalf("row projections wrong: %+v", s)
	}
	if s != Sized(Defined(120), Defined(40)) {
		t.Fatalf("queries mutated the size: %+v", s)
	}
}

func TestAxisSizeSetters(t *testing.T) {
	for _, d := range []Direction{Row, RowReverse, Column, ColumnReverse} {
		t.Run(d.String(), func(t *testing.T) {
			s := Sized(Defined(1), Defined(2))
			before := s.Cross(d)
			s.SetMain(d, Defined(9))
			if got := s.Main(d); got != Defined(9) {
				t.Fatalf("Main() after SetMain = %v, want 9", got)
			}
			if got := s.Cross(d); got != before {
				t.Fatalf("SetMain changed cross extent: %v -> %v", before, got)
			}

			before = s.Main(d)
			s.SetCross(d, Undefined())
			if got := s.Cross(d); got != Undefined() {
				t.Fatalf("Cross() after SetCross = %v, want undefined", got)
			}
			if got := s.Main(d); got != before {
				t.Fatalf("SetCross changed main extent: %v -> %v", before, got)
			}
		})
	}
}

func TestAxisSizeSetMainPhysicalField(t *testing.T) {
	s := Sized(px(1), px(2))
	s.SetMain(Row, 10)
	if s.Width != 10 || s.Height != 2 {
		t.Fatalf("row SetMain should write width only, got %+v", s)
	}
	s.SetMain(Column, 20)
	if s.Width != 10 || s.Height != 20 {
		t.Fatalf("column SetMain should write height only, got %+v", s)
	}
}

func TestMapSize(t *testing.T) {
	s := Sized(px(3), px(4))
	got := MapSize(s, func(v px) Number { return Defined(float64(v) * 10) })
	if got.Width != Defined(30) || got.Height != Defined(40) {
		t.Fatalf("MapSize() = %+v", got)
	}
}

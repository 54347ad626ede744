package geometry

// AxisSize is a width/height pair.
type AxisSize[T any] struct {
	Width  T `json:"width"`
	Height T `json:"height"`
}

// Sized returns an AxisSize with the given width and height.
func Sized[T any](width, height T) AxisSize[T] {
	return AxisSize[T]{Width: width, Height: height}
}

func (s AxisSize[T]) axis(a Axis) T {
	if a == AxisVertical {
		return s.Height
	}
	return s.Width
}

func (s *AxisSize[T]) setAxis(a Axis, v T) {
	if a == AxisVertical {
		s.Height = v
		return
	}
	s.Width = v
}

// Main returns the extent along d's main axis.
func (s AxisSize[T]) Main(d Direction) T { return s.axis(d.table().main) }

// Cross returns the extent along d's cross axis.
func (s AxisSize[T]) Cross(d Direction) T { return s.axis(d.table().cross) }

// SetMain writes the main-axis extent, leaving the cross extent untouched.
func (s *AxisSize[T]) SetMain(d Direction, v T) { s.setAxis(d.table().main, v) }

// SetCross writes the cross-axis extent, leaving the main extent untouched.
func (s *AxisSize[T]) SetCross(d Direction, v T) { s.setAxis(d.table().cross, v) }

// MapSize applies f to width and height independently.
func MapSize[T, R any](s AxisSize[T], f func(T) R) AxisSize[R] {
	return AxisSize[R]{Width: f(s.Width), Height: f(s.Height)}
}

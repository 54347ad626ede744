package geometry

// Summable is implemented by value types that can total two edges.
// Number satisfies it, which keeps undefined propagation in every sum.
type Summable[T any] interface {
	Add(T) T
}

// EdgeOffsets holds one value per side of a box, e.g. padding or margin.
// The four sides are independent; "no offset" is whatever zero or undefined
// value T uses, never a missing field.
type EdgeOffsets[T any] struct {
	Top    T `json:"top"`
	Left   T `json:"left"`
	Bottom T `json:"bottom"`
	Right  T `json:"right"`
}

// Uniform returns offsets with v on every side.
func Uniform[T any](v T) EdgeOffsets[T] {
	return EdgeOffsets[T]{Top: v, Left: v, Bottom: v, Right: v}
}

// Symmetric returns offsets with vertical on top/bottom and horizontal on left/right.
func Symmetric[T any](vertical, horizontal T) EdgeOffsets[T] {
	return EdgeOffsets[T]{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

func (o EdgeOffsets[T]) edge(e edge) T {
	switch e {
	case edgeTop:
		return o.Top
	case edgeLeft:
		return o.Left
	case edgeBottom:
		return o.Bottom
	default:
		return o.Right
	}
}

// MainStart returns the edge at the logical beginning of the main axis.
func (o EdgeOffsets[T]) MainStart(d Direction) T { return o.edge(d.table().mainStart) }

// MainEnd returns the edge at the logical end of the main axis.
func (o EdgeOffsets[T]) MainEnd(d Direction) T { return o.edge(d.table().mainEnd) }

// CrossStart returns the edge at the logical beginning of the cross axis.
func (o EdgeOffsets[T]) CrossStart(d Direction) T { return o.edge(d.table().crossStart) }

// CrossEnd returns the edge at the logical end of the cross axis.
func (o EdgeOffsets[T]) CrossEnd(d Direction) T { return o.edge(d.table().crossEnd) }

// MapOffsets applies f to each side independently.
func MapOffsets[T, R any](o EdgeOffsets[T], f func(T) R) EdgeOffsets[R] {
	return EdgeOffsets[R]{Top: f(o.Top), Left: f(o.Left), Bottom: f(o.Bottom), Right: f(o.Right)}
}

// Horizontal returns left + right regardless of flow direction.
func Horizontal[T Summable[T]](o EdgeOffsets[T]) T { return o.Left.Add(o.Right) }

// Vertical returns top + bottom regardless of flow direction.
func Vertical[T Summable[T]](o EdgeOffsets[T]) T { return o.Top.Add(o.Bottom) }

// MainTotal returns the sum of both main-axis edges.
func MainTotal[T Summable[T]](o EdgeOffsets[T], d Direction) T {
	return o.MainStart(d).Add(o.MainEnd(d))
}

// CrossTotal returns the sum of both cross-axis edges.
func CrossTotal[T Summable[T]](o EdgeOffsets[T], d Direction) T {
	return o.CrossStart(d).Add(o.CrossEnd(d))
}

// AddOffsets adds a and b side by side, e.g. border plus padding.
func AddOffsets[T Summable[T]](a, b EdgeOffsets[T]) EdgeOffsets[T] {
	return EdgeOffsets[T]{
		Top:    a.Top.Add(b.Top),
		Left:   a.Left.Add(b.Left),
		Bottom: a.Bottom.Add(b.Bottom),
		Right:  a.Right.Add(b.Right),
	}
}

package geometry

// RectOrigin is the top-left corner of a box in layout space.
type RectOrigin struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}

// RectSize is the extent of a box in layout space. It shares its shape and
// axis accessors with AxisSize[Number].
type RectSize AxisSize[Number]

// Rect is one layout node's box. The zero Rect is fully undefined.
type Rect struct {
	Origin RectOrigin `json:"origin"`
	Size   RectSize   `json:"size"`
}

// UndefinedOrigin returns an origin with both coordinates undefined.
func UndefinedOrigin() RectOrigin {
	return RectOrigin{X: Undefined(), Y: Undefined()}
}

// UndefinedSize returns a size with both extents undefined.
func UndefinedSize() RectSize {
	return RectSize{Width: Undefined(), Height: Undefined()}
}

// UndefinedRect returns the canonical not-yet-laid-out rect.
func UndefinedRect() Rect {
	return Rect{Origin: UndefinedOrigin(), Size: UndefinedSize()}
}

// NewRect builds a fully defined rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Origin: RectOrigin{X: Defined(x), Y: Defined(y)},
		Size:   RectSize{Width: Defined(width), Height: Defined(height)},
	}
}

func (o RectOrigin) coord(a Axis) Number {
	if a == AxisVertical {
		return o.Y
	}
	return o.X
}

func (o *RectOrigin) setCoord(a Axis, v Number) {
	if a == AxisVertical {
		o.Y = v
		return
	}
	o.X = v
}

// Main returns the position along d's main axis.
func (o RectOrigin) Main(d Direction) Number { return o.coord(d.table().main) }

// Cross returns the position along d's cross axis.
func (o RectOrigin) Cross(d Direction) Number { return o.coord(d.table().cross) }

// SetMain sets the position along d's main axis.
func (o *RectOrigin) SetMain(d Direction, v Number)  { o.setCoord(d.table().main, v) }
// SetCross sets the position along d's cross axis.
func (o *RectOrigin) SetCross(d Direction, v Number) { o.setCoord(d.table().cross, v) }

// AxisSize returns s as a generic size.
func (s RectSize) AxisSize() AxisSize[Number] { return AxisSize[Number](s) }

// Main returns the extent along d's main axis.
func (s RectSize) Main(d Direction) Number  { return AxisSize[Number](s).Main(d) }
// Cross returns the extent along d's cross axis.
func (s RectSize) Cross(d Direction) Number { return AxisSize[Number](s).Cross(d) }

// SetMain sets the extent along d's main axis.
func (s *RectSize) SetMain(d Direction, v Number) {
	(*AxisSize[Number])(s).SetMain(d, v)
}

// SetCross sets the extent along d's cross axis.
func (s *RectSize) SetCross(d Direction, v Number) {
	(*AxisSize[Number])(s).SetCross(d, v)
}

// IsResolved reports whether every coordinate and extent is defined.
func (r Rect) IsResolved() bool {
	return r.Origin.X.IsDefined() && r.Origin.Y.IsDefined() &&
		r.Size.Width.IsDefined() && r.Size.Height.IsDefined()
}

// Inset shrinks r by e, as when going from a border box to its content box.
// Undefined edges make the affected coordinates undefined.
func (r Rect) Inset(e EdgeOffsets[Number]) Rect {
	return Rect{
		Origin: RectOrigin{X: r.Origin.X.Add(e.Left), Y: r.Origin.Y.Add(e.Top)},
		Size: RectSize{
			Width:  r.Size.Width.Sub(Horizontal(e)),
			Height: r.Size.Height.Sub(Vertical(e)),
		},
	}
}

// Outset grows r by e, the inverse of Inset.
func (r Rect) Outset(e EdgeOffsets[Number]) Rect {
	return Rect{
		Origin: RectOrigin{X: r.Origin.X.Sub(e.Left), Y: r.Origin.Y.Sub(e.Top)},
		Size: RectSize{
			Width:  r.Size.Width.Add(Horizontal(e)),
			Height: r.Size.Height.Add(Vertical(e)),
		},
	}
}

// Contains reports whether (x, y) lies inside a resolved r. Left and top
// edges are inside, right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	if !r.IsResolved() {
		return false
	}
	rx, _ := r.Origin.X.Value()
	ry, _ := r.Origin.Y.Value()
	w, _ := r.Size.Width.Value()
	h, _ := r.Size.Height.Value()
	return x >= rx && x < rx+w && y >= ry && y < ry+h
}

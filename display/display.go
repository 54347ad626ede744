// Package display flattens a resolved layout tree into a paint-ordered list
// of rectangles that renderers draw and hit tests query.
package display

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByLCY/flexgeo/geometry"
	"github.com/ByLCY/flexgeo/layout"
	"github.com/ByLCY/flexgeo/style"
	"github.com/google/uuid"
)

// ErrUnresolved is returned by Build when a node has an undefined rect.
var ErrUnresolved = errors.New("display: unresolved box")

// tagSpace namespaces rectangle tags so the same path always yields the same tag.
var tagSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("flexgeo:display"))

// Box is a concrete rectangle in pixels.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether (x, y) lies inside b. Left and top edges are inside.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Border is a solid border with per-side widths.
type Border struct {
	Widths geometry.EdgeOffsets[float64] `json:"widths"`
	Color  style.Color                   `json:"color"`
}

// Rectangle is one painted box.
type Rectangle struct {
	Tag        uuid.UUID    `json:"tag"`
	Name       string       `json:"name"`
	Path       string       `json:"path"`
	Bounds     Box          `json:"bounds"`
	Background *style.Color `json:"background,omitempty"`
	Border     *Border      `json:"border,omitempty"`
	Radius     float64      `json:"radius"`
	// Opacity already includes every ancestor's opacity.
	Opacity float64 `json:"opacity"`
	Depth   int     `json:"depth"`
}

// Visible reports whether drawing r would put any ink on the page.
func (r Rectangle) Visible() bool {
	if r.Opacity <= 0 || r.Bounds.Width <= 0 || r.Bounds.Height <= 0 {
		return false
	}
	return (r.Background != nil && r.Background.A > 0) || (r.Border != nil && r.Border.Color.A > 0)
}

// List is a display list in paint order: parents before their children,
// siblings in document order.
type List struct {
	Size       geometry.AxisSize[float64] `json:"size"`
	Rectangles []Rectangle               `json:"rectangles"`
}

// Tag returns the tag Build assigns to the node at path.
func Tag(path string) uuid.UUID {
	return uuid.NewSHA1(tagSpace, []byte(path))
}

// Build converts a resolved tree. A node whose rect is still undefined makes
// Build fail; it is never drawn at zero.
func Build(tree *layout.Tree) (*List, error) {
	if tree == nil || tree.Root == nil {
		return nil, fmt.Errorf("%w: empty tree", ErrUnresolved)
	}
	root := tree.Root
	outer := root.Rect.Outset(root.Margin)
	if !outer.IsResolved() {
		return nil, fmt.Errorf("%w: %s", ErrUnresolved, root.Path)
	}
	x, _ := outer.Origin.X.Value()
	y, _ := outer.Origin.Y.Value()
	w, _ := outer.Size.Width.Value()
	h, _ := outer.Size.Height.Value()

	list := &List{Size: geometry.Sized(x+w, y+h)}
	if err := list.add(root, 0, 1); err != nil {
		return nil, err
	}
	return list, nil
}

func (l *List) add(n *layout.Node, depth int, opacity float64) error {
	bounds, ok := box(n.Rect)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnresolved, n.Path)
	}
	opacity *= n.Style.Opacity

	rect := Rectangle{
		Tag:        Tag(n.Path),
		Name:       n.Name,
		Path:       n.Path,
		Bounds:     bounds,
		Background: n.Style.Background,
		Radius:     radius(n.Style.Radius, bounds),
		Opacity:    opacity,
		Depth:      depth,
	}
	widths := geometry.MapOffsets(n.Border, func(v geometry.Number) float64 { return v.Or(0) })
	if widths.Top > 0 || widths.Left > 0 || widths.Bottom > 0 || widths.Right > 0 {
		color := style.Color{A: 255}
		if n.Style.BorderColor != nil {
			color = *n.Style.BorderColor
		}
		rect.Border = &Border{Widths: widths, Color: color}
	}
	l.Rectangles = append(l.Rectangles, rect)

	for _, c := range n.Children {
		if err := l.add(c, depth+1, opacity); err != nil {
			return err
		}
	}
	return nil
}

// HitTest returns the topmost rectangle containing (x, y).
func (l *List) HitTest(x, y float64) (Rectangle, bool) {
	for i := len(l.Rectangles) - 1; i >= 0; i-- {
		if r := l.Rectangles[i]; r.Bounds.Contains(x, y) {
			return r, true
		}
	}
	return Rectangle{}, false
}

// HitTestAll returns every rectangle containing (x, y), topmost first.
func (l *List) HitTestAll(x, y float64) []Rectangle {
	var out []Rectangle
	for i := len(l.Rectangles) - 1; i >= 0; i-- {
		if r := l.Rectangles[i]; r.Bounds.Contains(x, y) {
			out = append(out, r)
		}
	}
	return out
}

// Lookup finds a rectangle by tag.
func (l *List) Lookup(tag uuid.UUID) (Rectangle, bool) {
	for _, r := range l.Rectangles {
		if r.Tag == tag {
			return r, true
		}
	}
	return Rectangle{}, false
}

func box(r geometry.Rect) (Box, bool) {
	if !r.IsResolved() {
		return Box{}, false
	}
	x, _ := r.Origin.X.Value()
	y, _ := r.Origin.Y.Value()
	w, _ := r.Size.Width.Value()
	h, _ := r.Size.Height.Value()
	return Box{X: x, Y: y, Width: w, Height: h}, true
}

// radius resolves a corner radius; percentages refer to the shorter side and
// the result never exceeds half of it.
func radius(l style.Length, b Box) float64 {
	short := math.Min(b.Width, b.Height)
	r := l.Resolve(geometry.Defined(short)).Or(0)
	return math.Max(0, math.Min(r, short/2))
}

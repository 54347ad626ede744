package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/ByLCY/flexgeo/geometry"
	"github.com/ByLCY/flexgeo/style"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyTree is returned when Resolve gets a tree without a root.
	ErrEmptyTree = errors.New("layout: empty tree")
	// ErrUnresolved marks a container whose content box is still undefined
	// when its children are placed.
	ErrUnresolved = errors.New("layout: unresolved box")
)

// Resolve runs one layout pass over tree inside viewport. Every rect is reset
// first, so a tree can be resolved again after its styles change.
//
// Undefined viewport axes size the root from its content. Once a container
// has placed its children their subtrees are independent, so they are
// resolved concurrently up to opts.Parallelism.
func Resolve(ctx context.Context, tree *Tree, viewport geometry.AxisSize[geometry.Number], opts Options) error {
	if tree == nil || tree.Root == nil {
		return ErrEmptyTree
	}
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	r := &resolver{
		tokens: make(chan struct{}, limit-1),
		logger: opts.Logger,
	}

	tree.Root.reset()
	r.placeRoot(tree.Root, viewport)
	return r.layout(ctx, tree.Root)
}

type resolver struct {
	// tokens bounds the extra goroutines; the caller's goroutine is not counted.
	tokens chan struct{}
	logger *log.Logger
}

// item is a child's state during main-axis distribution. Sizes are border
// boxes; min and max already include the frame floor.
type item struct {
	node   *Node
	base   float64
	target float64
	min    float64
	max    float64
	margin float64
	frozen bool
}

func (r *resolver) placeRoot(root *Node, viewport geometry.AxisSize[geometry.Number]) {
	assignEdges(root, viewport.Width)
	avail := geometry.Sized(
		viewport.Width.Sub(geometry.Horizontal(root.Margin)),
		viewport.Height.Sub(geometry.Vertical(root.Margin)),
	)

	definite := style.ResolveSize(root.Style.Size, viewport)
	size := r.measure(root, viewport)
	if !definite.Width.IsDefined() && avail.Width.IsDefined() {
		size.Width = clamp(root, avail.Width, viewport, geometry.AxisHorizontal)
	}
	if !definite.Height.IsDefined() && avail.Height.IsDefined() {
		size.Height = clamp(root, avail.Height, viewport, geometry.AxisVertical)
	}

	root.Rect = geometry.Rect{
		Origin: geometry.RectOrigin{X: root.Margin.Left, Y: root.Margin.Top},
		Size:   geometry.RectSize(size),
	}
}

func (r *resolver) layout(ctx context.Context, n *Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(n.Children) == 0 {
		return nil
	}

	content := n.ContentRect()
	if !content.IsResolved() {
		return fmt.Errorf("%w: %s", ErrUnresolved, n.Path)
	}
	d := n.Style.Direction
	avail := content.Size.AxisSize()
	containerMain := val(avail.Main(d))
	containerCross := val(avail.Cross(d))
	gap := val(defined(n.Style.Gap.Resolve(avail.Main(d))))

	items := make([]item, len(n.Children))
	for i, c := range n.Children {
		assignEdges(c, avail.Width)
		frame := val(geometry.MainTotal(geometry.AddOffsets(c.Border, c.Padding), d))

		base := style.ResolveSize(c.Style.Size, avail).Main(d)
		if !base.IsDefined() {
			base = r.measure(c, avail).Main(d)
		}
		lo, hi := limits(c, avail, d.MainAxis())
		items[i] = item{
			node:   c,
			base:   val(base),
			min:    math.Max(lo, frame),
			max:    math.Max(hi, frame),
			margin: val(geometry.MainTotal(c.Margin, d)),
		}
		items[i].target = items[i].clamp(items[i].base)
	}

	distribute(items, containerMain-gap*float64(len(items)-1))

	used := gap * float64(len(items)-1)
	for _, it := range items {
		used += it.target + it.margin
	}
	lead, between := justify(n.Style.Justify, containerMain-used, len(items))

	// Reversed flow only changes visiting order; packing still starts at the
	// physical start edge.
	order := items
	if d.IsReverse() {
		order = make([]item, len(items))
		for i, it := range items {
			order[len(items)-1-i] = it
		}
	}

	cursor := content.Origin.Main(d).Add(geometry.Defined(lead))
	crossOrigin := content.Origin.Cross(d)
	for _, it := range order {
		c := it.node
		cross := r.crossSize(c, n.Style.Align, avail, containerCross, d)
		free := containerCross - cross - val(geometry.CrossTotal(c.Margin, d))

		var offset float64
		switch c.Style.SelfAlign(n.Style.Align) {
		case style.AlignEnd:
			offset = free
		case style.AlignCenter:
			offset = free / 2
		}

		cursor = cursor.Add(c.Margin.MainStart(d))
		rect := geometry.UndefinedRect()
		rect.Origin.SetMain(d, cursor)
		rect.Origin.SetCross(d, crossOrigin.Add(c.Margin.CrossStart(d)).Add(geometry.Defined(offset)))
		rect.Size.SetMain(d, geometry.Defined(it.target))
		rect.Size.SetCross(d, geometry.Defined(cross))
		c.Rect = rect

		cursor = cursor.Add(geometry.Defined(it.target + gap + between)).Add(c.Margin.MainEnd(d))
	}

	if r.logger != nil {
		r.logger.Debug("resolved container", "box", n.Path, "direction", d, "children", len(n.Children), "free", containerMain-used)
	}
	return r.descend(ctx, n.Children)
}

// descend resolves each child subtree. A subtree runs on its own goroutine
// while a token is free and inline otherwise.
func (r *resolver) descend(ctx context.Context, children []*Node) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range children {
		if len(c.Children) == 0 {
			continue
		}
		select {
		case r.tokens <- struct{}{}:
			g.Go(func() error {
				defer func() { <-r.tokens }()
				return r.layout(gctx, c)
			})
		default:
			if err := r.layout(gctx, c); err != nil {
				// report through the group so running siblings are cancelled
				g.Go(func() error { return err })
				return g.Wait()
			}
		}
	}
	return g.Wait()
}

func (r *resolver) crossSize(c *Node, parent style.Align, avail geometry.AxisSize[geometry.Number], containerCross float64, d geometry.Direction) float64 {
	cross := style.ResolveSize(c.Style.Size, avail).Cross(d)
	if !cross.IsDefined() {
		if c.Style.SelfAlign(parent) == style.AlignStretch {
			cross = geometry.Defined(containerCross).Sub(geometry.CrossTotal(c.Margin, d))
		} else {
			cross = r.measure(c, avail).Cross(d)
		}
	}
	frame := val(geometry.CrossTotal(geometry.AddOffsets(c.Border, c.Padding), d))
	return math.Max(val(clamp(c, cross, avail, d.CrossAxis())), frame)
}

// measure returns the border-box size n asks for inside reference: its
// definite size where set, otherwise the size of its content, clamped.
func (r *resolver) measure(n *Node, reference geometry.AxisSize[geometry.Number]) geometry.AxisSize[geometry.Number] {
	size := style.ResolveSize(n.Style.Size, reference)
	if !size.Width.IsDefined() || !size.Height.IsDefined() {
		intrinsic := r.intrinsic(n, size, reference)
		if !size.Width.IsDefined() {
			size.Width = intrinsic.Width
		}
		if !size.Height.IsDefined() {
			size.Height = intrinsic.Height
		}
	}
	return geometry.Sized(
		clamp(n, size.Width, reference, geometry.AxisHorizontal),
		clamp(n, size.Height, reference, geometry.AxisVertical),
	)
}

// intrinsic sums children's margin boxes along n's main axis and takes their
// maximum across it, then adds n's own border and padding.
func (r *resolver) intrinsic(n *Node, definite, reference geometry.AxisSize[geometry.Number]) geometry.AxisSize[geometry.Number] {
	d := n.Style.Direction
	frame := geometry.AddOffsets(edges(n.Style.Border, reference.Width), edges(n.Style.Padding, reference.Width))
	inner := geometry.Sized(
		definite.Width.Sub(geometry.Horizontal(frame)),
		definite.Height.Sub(geometry.Vertical(frame)),
	)
	gap := defined(n.Style.Gap.Resolve(inner.Main(d)))

	main, cross := geometry.Defined(0), geometry.Defined(0)
	for i, c := range n.Children {
		margin := edges(c.Style.Margin, inner.Width)
		size := r.measure(c, inner)
		main = main.Add(size.Main(d)).Add(geometry.MainTotal(margin, d))
		cross = cross.Max(size.Cross(d).Add(geometry.CrossTotal(margin, d)))
		if i > 0 {
			main = main.Add(gap)
		}
	}

	var out geometry.AxisSize[geometry.Number]
	out.SetMain(d, main.Add(geometry.MainTotal(frame, d)))
	out.SetCross(d, cross.Add(geometry.CrossTotal(frame, d)))
	return out
}

// distribute grows or shrinks items to fill space, freezing items that hit a
// min or max bound and handing their share to the rest.
func distribute(items []item, space float64) {
	for i := range items {
		items[i].frozen = false
		items[i].target = items[i].clamp(items[i].base)
	}
	hypothetical := 0.0
	for _, it := range items {
		hypothetical += it.base + it.margin
	}
	growing := space > hypothetical

	for range items {
		free := space
		weights := 0.0
		for _, it := range items {
			free -= it.margin
			if it.frozen {
				free -= it.target
				continue
			}
			free -= it.base
			weights += it.weight(growing)
		}
		if weights == 0 || free == 0 {
			break
		}

		violation := 0.0
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			raw := it.base + free*it.weight(growing)/weights
			it.target = it.clamp(raw)
			violation += it.target - raw
		}

		done := true
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			switch {
			case violation > 0:
				it.frozen = it.target == it.min
			case violation < 0:
				it.frozen = it.target == it.max
			default:
				it.frozen = true
			}
			if !it.frozen {
				done = false
			}
		}
		if done || violation == 0 {
			break
		}
	}
}

func (it item) weight(growing bool) float64 {
	if growing {
		return it.node.Style.Grow
	}
	return it.node.Style.Shrink * it.base
}

func (it item) clamp(v float64) float64 {
	return math.Max(it.min, math.Min(v, it.max))
}

// justify returns the offset before the first item and the extra space
// between items. Distributed modes fall back to start on overflow.
func justify(j style.Justify, remaining float64, count int) (lead, between float64) {
	switch j {
	case style.JustifyEnd:
		return remaining, 0
	case style.JustifyCenter:
		return remaining / 2, 0
	}
	if remaining <= 0 {
		return 0, 0
	}
	switch j {
	case style.JustifySpaceBetween:
		if count > 1 {
			return 0, remaining / float64(count-1)
		}
	case style.JustifySpaceAround:
		between = remaining / float64(count)
		return between / 2, between
	case style.JustifySpaceEvenly:
		between = remaining / float64(count+1)
		return between, between
	}
	return 0, 0
}

// limits returns the resolved min and max of n along axis; an undefined min
// is 0 and an undefined max is unbounded.
func limits(n *Node, reference geometry.AxisSize[geometry.Number], axis geometry.Axis) (lo, hi float64) {
	minSize := style.ResolveSize(n.Style.MinSize, reference)
	maxSize := style.ResolveSize(n.Style.MaxSize, reference)
	if axis == geometry.AxisHorizontal {
		return minSize.Width.Or(0), maxSize.Width.Or(math.Inf(1))
	}
	return minSize.Height.Or(0), maxSize.Height.Or(math.Inf(1))
}

// clamp bounds v by n's min and max along axis; min wins when they cross.
func clamp(n *Node, v geometry.Number, reference geometry.AxisSize[geometry.Number], axis geometry.Axis) geometry.Number {
	lo, hi := limits(n, reference, axis)
	return v.Min(geometry.Defined(hi)).Max(geometry.Defined(lo))
}

// assignEdges resolves n's margin, border and padding against the
// containing block width. Auto and unresolvable edges become zero.
func assignEdges(n *Node, width geometry.Number) {
	n.Margin = edges(n.Style.Margin, width)
	n.Border = edges(n.Style.Border, width)
	n.Padding = edges(n.Style.Padding, width)
}

func edges(o geometry.EdgeOffsets[style.Length], width geometry.Number) geometry.EdgeOffsets[geometry.Number] {
	return geometry.MapOffsets(style.ResolveOffsets(o, width), defined)
}

func defined(n geometry.Number) geometry.Number {
	return geometry.Defined(n.Or(0))
}

// val reads a number the resolver has already made definite.
func val(n geometry.Number) float64 {
	return n.Or(0)
}

// Package style turns declaration lists into typed layout styles.
//
// Values are kept in their declared units (see [Length]) until the resolver
// converts them against a containing box, so percentages can follow the
// undefined state of their reference.
package style

import "github.com/ByLCY/flexgeo/geometry"

// Justify distributes items along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // pack at main start
	JustifyEnd                         // pack at main end
	JustifyCenter                      // center in the line
	JustifySpaceBetween                // equal gaps, none at the edges
	JustifySpaceAround                 // equal space around each item
	JustifySpaceEvenly                 // equal gaps including the edges
)

// Align positions items on the cross axis.
type Align uint8

const (
	AlignStretch Align = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// Style holds every layout and paint property of a box.
type Style struct {
	Size    geometry.AxisSize[Length]
	MinSize geometry.AxisSize[Length]
	MaxSize geometry.AxisSize[Length]

	Padding geometry.EdgeOffsets[Length]
	Margin  geometry.EdgeOffsets[Length]
	Border  geometry.EdgeOffsets[Length]

	Direction geometry.Direction
	Justify   Justify
	Align     Align
	AlignSelf *Align // nil inherits the container's Align
	Gap       Length

	Grow   float64
	Shrink float64

	Background  *Color
	BorderColor *Color
	Radius      Length
	Opacity     float64
}

// Default returns the initial style: auto sizes, no min/max, zero edges,
// row flow, stretch alignment, shrink 1, fully opaque.
func Default() Style {
	auto := geometry.Sized(Auto(), Auto())
	return Style{
		Size:      auto,
		MinSize:   auto,
		MaxSize:   auto,
		Direction: geometry.Row,
		Align:     AlignStretch,
		Shrink:    1,
		Opacity:   1,
	}
}

// SelfAlign returns the alignment an item uses inside a container aligned by parent.
func (s Style) SelfAlign(parent Align) Align {
	if s.AlignSelf != nil {
		return *s.AlignSelf
	}
	return parent
}

package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ByLCY/flexgeo/geometry"
)

// This file defines unit-safe lengths as written in declarations and their
// conversion to layout pixels.

// Unit is the unit a length was declared in.
type Unit int

const (
	UnitPx      Unit = iota // CSS pixels, 1/96in
	UnitPT                  // points
	UnitMM                  // millimeters
	UnitCM                  // centimeters
	UnitIN                  // inches
	UnitPercent             // percentage of a reference length
	UnitAuto                // no declared length
)

// Conversion constants between absolute units and CSS pixels.
const (
	PxPerInch = 96.0
	PtPerInch = 72.0
	MmPerInch = 25.4
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPT:
		return "pt"
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPercent:
		return "%"
	case UnitAuto:
		return "auto"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit. The zero Length is 0px.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Px returns a pixel length.
func Px(v float64) Length { return Length{Value: v, Unit: UnitPx} }

// Percent returns a percentage length on a 0-100 scale.
func Percent(v float64) Length { return Length{Value: v, Unit: UnitPercent} }

// Auto returns the undeclared length.
func Auto() Length { return Length{Unit: UnitAuto} }

func (l Length) IsAuto() bool { return l.Unit == UnitAuto }

func (l Length) String() string {
	if l.Unit == UnitAuto {
		return "auto"
	}
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}

// pixels converts an absolute length to CSS pixels.
func (l Length) pixels() (float64, bool) {
	switch l.Unit {
	case UnitPx:
		return l.Value, true
	case UnitPT:
		return l.Value * PxPerInch / PtPerInch, true
	case UnitMM:
		return l.Value * PxPerInch / MmPerInch, true
	case UnitCM:
		return l.Value * 10 * PxPerInch / MmPerInch, true
	case UnitIN:
		return l.Value * PxPerInch, true
	default:
		return 0, false
	}
}

// Resolve converts l to pixels. Percentages scale reference, so a percentage
// of an undefined reference stays undefined; auto is always undefined.
func (l Length) Resolve(reference geometry.Number) geometry.Number {
	switch l.Unit {
	case UnitAuto:
		return geometry.Undefined()
	case UnitPercent:
		return reference.Scale(l.Value / 100)
	}
	px, _ := l.pixels()
	return geometry.Defined(px)
}

// ParseLength parses `12px`, `9pt`, `50%`, `auto`, ... A bare number is
// taken as pixels.
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	if v == "auto" {
		return Auto(), nil
	}
	unit := UnitPx
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"px", UnitPx}, {"pt", UnitPT}, {"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"%", UnitPercent}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Length{}, fmt.Errorf("invalid length %q", value)
	}
	return Length{Value: f, Unit: unit}, nil
}

// ResolveOffsets converts declared edges to pixels against reference.
func ResolveOffsets(o geometry.EdgeOffsets[Length], reference geometry.Number) geometry.EdgeOffsets[geometry.Number] {
	return geometry.MapOffsets(o, func(l Length) geometry.Number { return l.Resolve(reference) })
}

// ResolveSize converts a declared size to pixels; width resolves against the
// reference width and height against the reference height.
func ResolveSize(s geometry.AxisSize[Length], reference geometry.AxisSize[geometry.Number]) geometry.AxisSize[geometry.Number] {
	return geometry.AxisSize[geometry.Number]{
		Width:  s.Width.Resolve(reference.Width),
		Height: s.Height.Resolve(reference.Height),
	}
}

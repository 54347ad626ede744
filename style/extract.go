package style

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ByLCY/flexgeo/geometry"
)

var (
	// ErrUnknownProperty marks a declaration key no property handles.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidValue marks a declaration whose value cannot be parsed.
	ErrInvalidValue = errors.New("invalid value")
)

// Declaration is one `key: value` pair in document order.
type Declaration struct {
	Key   string
	Value string
}

// Extract builds a Style from decls on top of Default. Later declarations
// override earlier ones. Every bad declaration is reported in the joined
// error, and the returned style still carries all the valid ones.
func Extract(decls []Declaration, palette Palette) (Style, error) {
	s := Default()
	var errs []error
	for _, d := range decls {
		if err := s.apply(strings.ToLower(strings.TrimSpace(d.Key)), strings.TrimSpace(d.Value), palette); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Key, err))
		}
	}
	return s, errors.Join(errs...)
}

func (s *Style) apply(key, value string, palette Palette) error {
	switch key {
	case "width":
		return setLength(&s.Size.Width, value)
	case "height":
		return setLength(&s.Size.Height, value)
	case "min-width":
		return setLength(&s.MinSize.Width, value)
	case "min-height":
		return setLength(&s.MinSize.Height, value)
	case "max-width":
		return setLength(&s.MaxSize.Width, value)
	case "max-height":
		return setLength(&s.MaxSize.Height, value)
	case "padding":
		return setEdges(&s.Padding, value)
	case "margin":
		return setEdges(&s.Margin, value)
	case "border-width":
		return setEdges(&s.Border, value)
	case "border":
		return s.setBorder(value, palette)
	case "border-color":
		return setColor(&s.BorderColor, value, palette)
	case "border-radius", "radius":
		return setLength(&s.Radius, value)
	case "background", "background-color":
		return setColor(&s.Background, value, palette)
	case "opacity":
		f, err := parseFloat(value)
		if err != nil {
			return err
		}
		if f < 0 || f > 1 {
			return fmt.Errorf("%w: opacity %v outside [0, 1]", ErrInvalidValue, f)
		}
		s.Opacity = f
		return nil
	case "direction", "flex-direction":
		d, err := geometry.ParseDirection(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		s.Direction = d
		return nil
	case "justify", "justify-content":
		j, ok := justifyNames[value]
		if !ok {
			return fmt.Errorf("%w: justify %q", ErrInvalidValue, value)
		}
		s.Justify = j
		return nil
	case "align", "align-items":
		a, ok := alignNames[value]
		if !ok {
			return fmt.Errorf("%w: align %q", ErrInvalidValue, value)
		}
		s.Align = a
		return nil
	case "align-self":
		if value == "auto" {
			s.AlignSelf = nil
			return nil
		}
		a, ok := alignNames[value]
		if !ok {
			return fmt.Errorf("%w: align-self %q", ErrInvalidValue, value)
		}
		s.AlignSelf = &a
		return nil
	case "gap":
		return setLength(&s.Gap, value)
	case "grow", "flex-grow":
		return setFactor(&s.Grow, value)
	case "shrink", "flex-shrink":
		return setFactor(&s.Shrink, value)
	}

	for _, group := range []struct {
		prefix, suffix string
		edges          *geometry.EdgeOffsets[Length]
	}{
		{"padding-", "", &s.Padding},
		{"margin-", "", &s.Margin},
		{"border-", "-width", &s.Border},
	} {
		if !strings.HasPrefix(key, group.prefix) || !strings.HasSuffix(key, group.suffix) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(key, group.prefix), group.suffix)
		if field := edgeField(group.edges, name); field != nil {
			return setLength(field, value)
		}
	}
	return ErrUnknownProperty
}

var justifyNames = map[string]Justify{
	"start":         JustifyStart,
	"flex-start":    JustifyStart,
	"end":           JustifyEnd,
	"flex-end":      JustifyEnd,
	"center":        JustifyCenter,
	"space-between": JustifySpaceBetween,
	"space-around":  JustifySpaceAround,
	"space-evenly":  JustifySpaceEvenly,
}

var alignNames = map[string]Align{
	"stretch":    AlignStretch,
	"start":      AlignStart,
	"flex-start": AlignStart,
	"end":        AlignEnd,
	"flex-end":   AlignEnd,
	"center":     AlignCenter,
}

func edgeField(e *geometry.EdgeOffsets[Length], name string) *Length {
	switch name {
	case "top":
		return &e.Top
	case "left":
		return &e.Left
	case "bottom":
		return &e.Bottom
	case "right":
		return &e.Right
	default:
		return nil
	}
}

func setLength(dst *Length, value string) error {
	l, err := ParseLength(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	*dst = l
	return nil
}

// ParseEdges parses the CSS 1-4 value edge shorthand (top right bottom left).
func ParseEdges(value string) (geometry.EdgeOffsets[Length], error) {
	fields := strings.Fields(value)
	vals := make([]Length, 0, len(fields))
	for _, f := range fields {
		l, err := ParseLength(f)
		if err != nil {
			return geometry.EdgeOffsets[Length]{}, err
		}
		vals = append(vals, l)
	}
	switch len(vals) {
	case 1:
		return geometry.Uniform(vals[0]), nil
	case 2:
		return geometry.Symmetric(vals[0], vals[1]), nil
	case 3:
		return geometry.EdgeOffsets[Length]{Top: vals[0], Right: vals[1], Left: vals[1], Bottom: vals[2]}, nil
	case 4:
		return geometry.EdgeOffsets[Length]{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return geometry.EdgeOffsets[Length]{}, fmt.Errorf("expected 1 to 4 lengths, got %d", len(vals))
	}
}

func setEdges(dst *geometry.EdgeOffsets[Length], value string) error {
	e, err := ParseEdges(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	*dst = e
	return nil
}

// setBorder handles `border: 1px solid #333`; the style keyword is accepted
// and ignored since only solid borders are drawn.
func (s *Style) setBorder(value string, palette Palette) error {
	var width *Length
	var color *Color
	for _, f := range strings.Fields(value) {
		if f == "solid" {
			continue
		}
		if f == "none" {
			zero := Px(0)
			width = &zero
			continue
		}
		if l, err := ParseLength(f); err == nil {
			width = &l
			continue
		}
		c, err := palette.Resolve(f)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		color = &c
	}
	if width == nil && color == nil {
		return fmt.Errorf("%w: empty border", ErrInvalidValue)
	}
	if width != nil {
		s.Border = geometry.Uniform(*width)
	}
	if color != nil {
		s.BorderColor = color
	}
	return nil
}

func setColor(dst **Color, value string, palette Palette) error {
	c, err := palette.Resolve(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	*dst = &c
	return nil
}

func setFactor(dst *float64, value string) error {
	f, err := parseFloat(value)
	if err != nil {
		return err
	}
	if f < 0 {
		return fmt.Errorf("%w: negative factor %v", ErrInvalidValue, f)
	}
	*dst = f
	return nil
}

func parseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: number %q", ErrInvalidValue, value)
	}
	return f, nil
}

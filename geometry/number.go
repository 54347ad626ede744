package geometry

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Number is a layout quantity that is either undefined (not yet computed in
// the current pass) or a concrete value. The zero value is undefined.
type Number struct {
	value   float64
	defined bool
}

// Undefined returns the unresolved Number.
func Undefined() Number { return Number{} }

// Defined wraps v as a resolved Number.
func Defined(v float64) Number { return Number{value: v, defined: true} }

// IsDefined reports whether n carries a value.
func (n Number) IsDefined() bool { return n.defined }

// Value returns the wrapped value and whether it is defined.
func (n Number) Value() (float64, bool) { return n.value, n.defined }

// Or returns the value of n, or fallback when n is undefined.
// Choosing a fallback is a layout decision; geometry itself never calls Or.
func (n Number) Or(fallback float64) float64 {
	if !n.defined {
		return fallback
	}
	return n.value
}

// Combine applies op to both values. The result is undefined as soon as
// either operand is undefined.
func Combine(a, b Number, op func(x, y float64) float64) Number {
	if !a.defined || !b.defined {
		return Undefined()
	}
	return Defined(op(a.value, b.value))
}

// Add returns n + other.
func (n Number) Add(other Number) Number { return Combine(n, other, add) }
// Sub returns n - other.
func (n Number) Sub(other Number) Number { return Combine(n, other, sub) }
// Mul returns n * other.
func (n Number) Mul(other Number) Number { return Combine(n, other, mul) }

// Div divides n by other. Division by a defined zero follows IEEE rules.
func (n Number) Div(other Number) Number { return Combine(n, other, div) }

// Min returns the smaller of n and other.
func (n Number) Min(other Number) Number { return Combine(n, other, math.Min) }
// Max returns the larger of n and other.
func (n Number) Max(other Number) Number { return Combine(n, other, math.Max) }

// Scale multiplies a defined n by the constant k.
func (n Number) Scale(k float64) Number { return n.Mul(Defined(k)) }

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

func (n Number) String() string {
	if !n.defined {
		return "undefined"
	}
	return strconv.FormatFloat(n.value, 'g', -1, 64)
}

// MarshalJSON encodes an undefined Number as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.defined {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON accepts null or a number.
func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = Undefined()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Defined(v)
	return nil
}

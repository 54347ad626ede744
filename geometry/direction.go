package geometry

import "fmt"

// Direction is the flow direction of a flex container.
type Direction uint8

const (
	Row           Direction = iota // main axis horizontal, children left to right
	RowReverse                     // main axis horizontal, children right to left
	Column                         // main axis vertical, children top to bottom
	ColumnReverse                  // main axis vertical, children bottom to top
)

// Axis is a physical layout axis.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

type edge uint8

const (
	edgeTop edge = iota
	edgeLeft
	edgeBottom
	edgeRight
)

// axes is the single place where a Direction is mapped onto physical fields.
// Reverse flows share the forward mapping: offsets are spatial, and reversal
// only changes the order in which a resolver visits children.
type axes struct {
	main, cross          Axis
	mainStart, mainEnd   edge
	crossStart, crossEnd edge
}

var (
	rowAxes    = axes{main: AxisHorizontal, cross: AxisVertical, mainStart: edgeLeft, mainEnd: edgeRight, crossStart: edgeTop, crossEnd: edgeBottom}
	columnAxes = axes{main: AxisVertical, cross: AxisHorizontal, mainStart: edgeTop, mainEnd: edgeBottom, crossStart: edgeLeft, crossEnd: edgeRight}

	directionTable = [...]axes{
		Row:           rowAxes,
		RowReverse:    rowAxes,
		Column:        columnAxes,
		ColumnReverse: columnAxes,
	}
)

// table returns the dispatch entry for d. Values outside the enumeration
// fall back to Row so that every accessor stays total.
func (d Direction) table() axes {
	if int(d) < len(directionTable) {
		return directionTable[d]
	}
	return rowAxes
}

// MainAxis returns the physical axis children are laid out along.
func (d Direction) MainAxis() Axis { return d.table().main }

// CrossAxis returns the axis orthogonal to the main axis.
func (d Direction) CrossAxis() Axis { return d.table().cross }

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool { return d.MainAxis() == AxisHorizontal }

// IsReverse reports whether children are traversed end to start.
func (d Direction) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection parses the CSS flex-direction keywords.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "row":
		return Row, nil
	case "row-reverse":
		return RowReverse, nil
	case "column":
		return Column, nil
	case "column-reverse":
		return ColumnReverse, nil
	default:
		return Row, fmt.Errorf("geometry: unknown direction %q", s)
	}
}

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

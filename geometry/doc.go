// Package geometry is the direction-aware geometry kernel used by the flex
// resolver.
//
// It provides a maybe-undefined scalar ([Number]), the flow [Direction], and
// containers ([EdgeOffsets], [AxisSize], [Rect]) whose main/cross accessors
// are resolved against a Direction through one dispatch table. Layout code
// written in terms of main and cross never has to branch on row vs column.
//
// Everything here is a plain value type. Nothing allocates, blocks, or fails.
package geometry

package geom

import (
	"fmt"

	"github.com/geomkit/geom/elementwise"
)

// Number is the scalar constraint shared by all vector types.
type Number = elementwise.Number

// Array is the constraint satisfied by any fixed-dimension sequence of
// scalars, including Vec2 and Vec3. The free-function reductions are
// generic over it so they also cover user-defined array types.
type Array[S Number] interface {
	~[1]S | ~[2]S | ~[3]S | ~[4]S
}

// Axis names a vector dimension.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

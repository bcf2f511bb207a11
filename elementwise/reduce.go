package elementwise

import "fmt"

// SumOf reduces a container operand by summation over all positions.
// It panics on an operand with no container dimension (a pure-scalar
// expression has nothing to reduce over).
func SumOf[S Number](op Indexable[S]) S {
	n := containerDims(op)
	var sum S
	for i := 0; i < n; i++ {
		sum += op.At(i)
	}
	return sum
}

// MaxOf returns the largest element of a container operand. It panics
// on an operand with no container dimension.
func MaxOf[S Number](op Indexable[S]) S {
	n := containerDims(op)
	m := op.At(0)
	for i := 1; i < n; i++ {
		if v := op.At(i); v > m {
			m = v
		}
	}
	return m
}

// Fill evaluates op into dst, one position at a time. A container
// operand must match len(dst) exactly; a scalar operand broadcasts into
// every slot. dst may alias memory read by op: position i of the output
// depends only on position i of the inputs, which is read before it is
// overwritten.
func Fill[S Number](dst []S, op any) {
	r := resolve[S](op)
	if r.dims != broadcast && r.dims != len(dst) {
		panic(fmt.Sprintf("elementwise: cannot fill %d elements from an operand of dimension %d", len(dst), r.dims))
	}
	for i := range dst {
		dst[i] = r.at(i)
	}
}

func containerDims[S Number](op Indexable[S]) int {
	n := op.Dims()
	if n < 1 {
		panic("elementwise: reduction requires a container operand")
	}
	return n
}

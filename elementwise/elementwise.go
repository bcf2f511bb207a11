package elementwise

import "fmt"

// Number is the scalar constraint for all elementwise operations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Indexable is the container-operand capability: positional access plus
// a known dimension count. Vectors implement it, and so does Expr, which
// is what lets expressions nest.
type Indexable[S Number] interface {
	// At returns the element at position i. The caller guarantees
	// i < Dims(); there is no bounds check at this level.
	At(i int) S

	// Dims returns the number of addressable positions.
	Dims() int
}

// broadcast marks the dimension of a scalar operand: it yields the same
// value at every index and imposes no length of its own.
const broadcast = -1

// operand is a resolved accessor. Resolution happens exactly once, at
// expression construction; indexing afterwards is a plain closure call.
type operand[S Number] struct {
	at   func(i int) S
	dims int
}

// resolve classifies op as a container or a broadcast scalar.
// Anything else is a programming error and panics.
func resolve[S Number](op any) operand[S] {
	switch v := op.(type) {
	case Indexable[S]:
		return operand[S]{at: v.At, dims: v.Dims()}
	case []S:
		return operand[S]{at: func(i int) S { return v[i] }, dims: len(v)}
	case [1]S:
		return operand[S]{at: func(i int) S { return v[i] }, dims: 1}
	case [2]S:
		return operand[S]{at: func(i int) S { return v[i] }, dims: 2}
	case [3]S:
		return operand[S]{at: func(i int) S { return v[i] }, dims: 3}
	case [4]S:
		return operand[S]{at: func(i int) S { return v[i] }, dims: 4}
	case S:
		return operand[S]{at: func(int) S { return v }, dims: broadcast}
	default:
		var zero S
		panic(fmt.Sprintf("elementwise: operand %T is neither indexable over %T nor a %T scalar", op, zero, zero))
	}
}

// mergeDims combines the dimensions of two operands. Scalars defer to
// the other side; two containers must agree.
func mergeDims(a, b int) int {
	switch {
	case a == broadcast:
		return b
	case b == broadcast:
		return a
	case a != b:
		panic(fmt.Sprintf("elementwise: operand dimensions disagree: %d != %d", a, b))
	}
	return a
}

// Expr is an unevaluated elementwise computation: an operator applied,
// per index, to the elements of its operands. It implements Indexable,
// so expressions compose into arbitrarily deep trees.
//
// An Expr borrows its operands; it is valid only while they are.
type Expr[S Number] struct {
	dims int
	at   func(i int) S
}

// At evaluates the expression at position i.
func (e Expr[S]) At(i int) S { return e.at(i) }

// Dims returns the effective dimension: that of the container operands
// in the tree, or a negative value for a pure-scalar tree.
func (e Expr[S]) Dims() int { return e.dims }

func unary[S Number](op func(S) S, x any) Expr[S] {
	rx := resolve[S](x)
	return Expr[S]{
		dims: rx.dims,
		at:   func(i int) S { return op(rx.at(i)) },
	}
}

func binary[S Number](op func(a, b S) S, a, b any) Expr[S] {
	ra := resolve[S](a)
	rb := resolve[S](b)
	return Expr[S]{
		dims: mergeDims(ra.dims, rb.dims),
		at:   func(i int) S { return op(ra.at(i), rb.at(i)) },
	}
}

package elementwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate[S Number](e Expr[S], n int) []S {
	out := make([]S, n)
	for i := range out {
		out[i] = e.At(i)
	}
	return out
}

func TestFactories(t *testing.T) {
	a := []int{-15, 10, 3}
	b := []int{5, -2, 3}

	tests := []struct {
		name     string
		expr     Expr[int]
		expected []int
	}{
		{"Negate", Negate[int](a), []int{15, -10, -3}},
		{"Sum", Sum[int](a, b), []int{-10, 8, 6}},
		{"Difference", Difference[int](a, b), []int{-20, 12, 0}},
		{"AbsDifference", AbsDifference[int](a, b), []int{20, 12, 0}},
		{"Product", Product[int](a, b), []int{-75, -20, 9}},
		{"Quotient", Quotient[int](a, b), []int{-3, -5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 3, tt.expr.Dims())
			assert.Equal(t, tt.expected, evaluate(tt.expr, 3))
		})
	}
}

func TestOperandKinds(t *testing.T) {
	t.Run("RawArray", func(t *testing.T) {
		e := Sum[int]([3]int{1, 2, 3}, [3]int{10, 20, 30})
		assert.Equal(t, []int{11, 22, 33}, evaluate(e, 3))
	})

	t.Run("SingleElementArray", func(t *testing.T) {
		e := Sum[int]([1]int{5}, [1]int{2})
		assert.Equal(t, 1, e.Dims())
		assert.Equal(t, []int{7}, evaluate(e, 1))
	})

	t.Run("ScalarBroadcast", func(t *testing.T) {
		e := Product[int]([]int{-3, 2}, 5)
		assert.Equal(t, 2, e.Dims())
		assert.Equal(t, []int{-15, 10}, evaluate(e, 2))
	})

	t.Run("ScalarOnBothSides", func(t *testing.T) {
		e := Sum[int](2, 3)
		assert.Negative(t, e.Dims())
		assert.Equal(t, 5, e.At(0))
		assert.Equal(t, 5, e.At(7))
	})

	t.Run("ScalarLeft", func(t *testing.T) {
		e := Difference[int](10, []int{1, 2, 3})
		assert.Equal(t, []int{9, 8, 7}, evaluate(e, 3))
	})

	t.Run("UnsignedAbsDifference", func(t *testing.T) {
		e := AbsDifference[uint8]([]uint8{1, 200}, []uint8{2, 100})
		assert.Equal(t, []uint8{1, 100}, evaluate(e, 2))
	})

	t.Run("WrongScalarType", func(t *testing.T) {
		assert.Panics(t, func() {
			Sum[float64]([]float64{1, 2}, 5) // untyped 5 boxes as int
		})
	})

	t.Run("Unsupported", func(t *testing.T) {
		assert.Panics(t, func() {
			Negate[int]("not an operand")
		})
	})
}

func TestComposition(t *testing.T) {
	a := []int{4, 7}
	b := []int{1, 2}

	// (a-b)*(a-b) without materializing a-b.
	d := Difference[int](a, b)
	sq := Product[int](d, d)

	assert.Equal(t, 2, sq.Dims())
	assert.Equal(t, []int{9, 25}, evaluate(sq, 2))

	t.Run("DeepTree", func(t *testing.T) {
		// ((a+b)*2 - a) / a
		e := Quotient[int](Difference[int](Product[int](Sum[int](a, b), 2), a), a)
		assert.Equal(t, []int{1, 1}, evaluate(e, 2)) // {10-4}/4, {18-7}/7
	})
}

func TestExprIsView(t *testing.T) {
	a := []int{1, 2}
	e := Negate[int](a)

	require.Equal(t, -1, e.At(0))

	// The expression borrows a; it sees later writes.
	a[0] = 5
	assert.Equal(t, -5, e.At(0))
}

func TestDimensionMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Sum[int]([]int{1, 2}, []int{1, 2, 3})
	})

	t.Run("CheckedAtConstruction", func(t *testing.T) {
		// The panic happens before any element is read.
		defer func() { require.NotNil(t, recover()) }()
		d := Difference[int]([]int{1}, []int{1, 2})
		_ = d
	})

	t.Run("NestedMismatch", func(t *testing.T) {
		inner := Sum[int]([]int{1, 2, 3}, 1)
		assert.Panics(t, func() {
			Product[int](inner, []int{1, 2})
		})
	})
}

func TestReductions(t *testing.T) {
	t.Run("SumOf", func(t *testing.T) {
		assert.Equal(t, 6, SumOf[int](Sum[int]([]int{1, 2, 3}, 0)))
		assert.Equal(t, 32, SumOf[int](Product[int]([]int{1, 2, 3}, []int{4, 5, 6})))
	})

	t.Run("MaxOf", func(t *testing.T) {
		assert.Equal(t, 17, MaxOf[int](AbsDifference[int]([]int{11, -7, 1}, []int{4, 10, 2})))
		assert.Equal(t, -1, MaxOf[int](Negate[int]([]int{1, 2, 3})))
	})

	t.Run("ScalarOperand", func(t *testing.T) {
		assert.Panics(t, func() {
			SumOf[int](Sum[int](1, 2))
		})
		assert.Panics(t, func() {
			MaxOf[int](Negate[int](4))
		})
	})
}

func TestFill(t *testing.T) {
	t.Run("Expression", func(t *testing.T) {
		dst := make([]int, 3)
		Fill(dst, Sum[int]([]int{1, 2, 3}, 10))
		assert.Equal(t, []int{11, 12, 13}, dst)
	})

	t.Run("ScalarBroadcast", func(t *testing.T) {
		dst := make([]int, 4)
		Fill(dst, 7)
		assert.Equal(t, []int{7, 7, 7, 7}, dst)
	})

	t.Run("Aliasing", func(t *testing.T) {
		v := []int{1, 2, 3}
		Fill(v, Product[int](v, v))
		assert.Equal(t, []int{1, 4, 9}, v)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		dst := make([]int, 2)
		assert.Panics(t, func() {
			Fill(dst, []int{1, 2, 3})
		})
	})
}

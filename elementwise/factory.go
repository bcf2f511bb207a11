package elementwise

// Negate returns the lazy elementwise negation of x.
func Negate[S Number](x any) Expr[S] {
	return unary(func(v S) S { return -v }, x)
}

// Sum returns the lazy elementwise sum a + b.
func Sum[S Number](a, b any) Expr[S] {
	return binary(func(x, y S) S { return x + y }, a, b)
}

// Difference returns the lazy elementwise difference a - b.
func Difference[S Number](a, b any) Expr[S] {
	return binary(func(x, y S) S { return x - y }, a, b)
}

// AbsDifference returns the lazy elementwise absolute difference |a - b|.
func AbsDifference[S Number](a, b any) Expr[S] {
	return binary(absDiff[S], a, b)
}

// Product returns the lazy elementwise product a * b.
func Product[S Number](a, b any) Expr[S] {
	return binary(func(x, y S) S { return x * y }, a, b)
}

// Quotient returns the lazy elementwise quotient a / b.
func Quotient[S Number](a, b any) Expr[S] {
	return binary(func(x, y S) S { return x / y }, a, b)
}

// absDiff computes |a - b| by ordering first, so it stays correct for
// unsigned scalar types where negation would wrap.
func absDiff[S Number](a, b S) S {
	if a < b {
		return b - a
	}
	return a - b
}

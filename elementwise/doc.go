// Package elementwise provides lazy elementwise expressions over
// fixed-dimension operands.
//
// An expression combines operands (vectors, raw fixed-size sequences,
// or scalars) under a pure per-element operator without materializing
// intermediate results. Evaluation happens one index at a time, only
// when an element is requested, so a chain of operations over vectors
// of dimension D costs O(chain length * D) with zero intermediate
// allocation.
//
// # Operands
//
// Anything implementing Indexable is a container operand and is indexed
// per position. Raw []S sequences and arrays [1]S through [4]S are
// containers too. A bare scalar of the element type S is broadcast: it yields
// itself at every index, so vector-scalar arithmetic needs no separate
// code path. Scalar operands must have type S exactly; an untyped
// constant like 5 arrives as int, which is rejected for a float
// expression. Operand kinds are resolved once, when the expression is
// built, never per index.
//
// # Usage
//
//	d := elementwise.Difference[int](a, b)   // lazy a - b
//	sq := elementwise.Product[int](d, d)     // lazy (a-b)*(a-b)
//	sum := elementwise.SumOf[int](sq)        // evaluates here
//
// Expressions hold their operands by reference through closures; build
// them, consume them, and let them go. They are views, not owners, and
// must not be read after a captured operand has been mutated.
package elementwise

package flatvec

import (
	"fmt"

	"github.com/wfugravity/spectre/tensor"
	"github.com/wfugravity/spectre/vars"
)

// Expr is a lazy flat-vector expression: a length and an element rule.
// Composing expressions builds a tree; Assign walks the whole tree once
// per element, so an arbitrarily deep expression still evaluates in a
// single pass with no intermediate buffers.
type Expr[T tensor.Scalar] interface {
	// Len returns the flat length of the expression.
	Len() int
	// At evaluates element i.
	At(i int) T
}

type leaf[T tensor.Scalar] struct{ buf []T }

func (l leaf[T]) Len() int   { return len(l.buf) }
func (l leaf[T]) At(i int) T { return l.buf[i] }

// Of reinterprets a container as a flat-vector expression. No copy, no
// allocation: the expression reads the container's buffer directly and
// must not outlive it (or survive a resize or move of it).
func Of[T tensor.Scalar](v *vars.Variables[T]) Expr[T] {
	return leaf[T]{buf: v.Data()}
}

// OfSlice wraps a raw flat slice as an expression leaf.
func OfSlice[T tensor.Scalar](buf []T) Expr[T] {
	return leaf[T]{buf: buf}
}

type add[T tensor.Scalar] struct{ a, b Expr[T] }

func (e add[T]) Len() int   { return e.a.Len() }
func (e add[T]) At(i int) T { return e.a.At(i) + e.b.At(i) }

type sub[T tensor.Scalar] struct{ a, b Expr[T] }

func (e sub[T]) Len() int   { return e.a.Len() }
func (e sub[T]) At(i int) T { return e.a.At(i) - e.b.At(i) }

type scale[T tensor.Scalar] struct {
	e Expr[T]
	c T
}

func (e scale[T]) Len() int   { return e.e.Len() }
func (e scale[T]) At(i int) T { return e.c * e.e.At(i) }

type neg[T tensor.Scalar] struct{ e Expr[T] }

func (e neg[T]) Len() int   { return e.e.Len() }
func (e neg[T]) At(i int) T { return -e.e.At(i) }

// Add builds the element-wise sum a+b. Panics wrapping ErrLengthMismatch
// when the flat lengths differ.
func Add[T tensor.Scalar](a, b Expr[T]) Expr[T] {
	requireSameLen[T](a, b)

	return add[T]{a: a, b: b}
}

// Sub builds the element-wise difference a-b. Panics wrapping
// ErrLengthMismatch when the flat lengths differ.
func Sub[T tensor.Scalar](a, b Expr[T]) Expr[T] {
	requireSameLen[T](a, b)

	return sub[T]{a: a, b: b}
}

// Mul builds the scalar product c*e (either operand order of the infix
// form, multiplication being commutative).
func Mul[T tensor.Scalar](c T, e Expr[T]) Expr[T] {
	return scale[T]{e: e, c: c}
}

// Div builds the scalar quotient e/c. Division by zero follows IEEE
// semantics, as a plain loop would.
func Div[T tensor.Scalar](e Expr[T], c T) Expr[T] {
	return scale[T]{e: e, c: 1 / c}
}

// Neg builds the unary negation -e.
func Neg[T tensor.Scalar](e Expr[T]) Expr[T] {
	return neg[T]{e: e}
}

// Ident is the unary identity, for symmetric use inside larger
// expressions.
func Ident[T tensor.Scalar](e Expr[T]) Expr[T] { return e }

// AddVars is Add over two containers, additionally requiring their
// schemas to be compatible once name prefixes are stripped; panics
// wrapping ErrIncompatibleSchemas otherwise.
func AddVars[T tensor.Scalar](a, b *vars.Variables[T]) Expr[T] {
	requireCompatible(a, b)

	return Add(Of(a), Of(b))
}

// SubVars is Sub over two containers with the same compatibility rule
// as AddVars.
func SubVars[T tensor.Scalar](a, b *vars.Variables[T]) Expr[T] {
	requireCompatible(a, b)

	return Sub(Of(a), Of(b))
}

// Assign evaluates e in one pass directly into dst, resizing dst to
// e.Len()/TotalComponents grid points first (so dst must be owning
// unless the size already matches). Panics wrapping ErrSizeNotMultiple
// when the expression length does not divide evenly.
func Assign[T tensor.Scalar](dst *vars.Variables[T], e Expr[T]) {
	total := dst.Schema().TotalComponents()
	n := e.Len()
	if total == 0 {
		if n != 0 {
			panic(fmt.Errorf("%w: length %d into a zero-field container", ErrSizeNotMultiple, n))
		}

		return
	}
	if n%total != 0 {
		panic(fmt.Errorf("%w: length %d, total components %d", ErrSizeNotMultiple, n, total))
	}
	dst.Initialize(n / total)
	buf := dst.Data()
	for i := range buf {
		buf[i] = e.At(i)
	}
}

// Evaluate materializes e into a fresh owning container over schema,
// convenience for Assign into New(schema).
func Evaluate[T tensor.Scalar](schema tensor.Schema, e Expr[T]) *vars.Variables[T] {
	dst := vars.New[T](schema)
	Assign(dst, e)

	return dst
}

func requireSameLen[T tensor.Scalar](a, b Expr[T]) {
	if a.Len() != b.Len() {
		panic(fmt.Errorf("%w: %d and %d", ErrLengthMismatch, a.Len(), b.Len()))
	}
}

func requireCompatible[T tensor.Scalar](a, b *vars.Variables[T]) {
	if !a.Schema().Compatible(b.Schema()) {
		panic(fmt.Errorf("%w: %v and %v", ErrIncompatibleSchemas, a.Schema(), b.Schema()))
	}
}

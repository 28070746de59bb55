package vars

import (
	"fmt"
	"strings"

	"github.com/wfugravity/spectre/tensor"
)

// DiagnosticFill controls sentinel-stamping of freshly allocated
// buffers. When true, Initialize fills new storage with a quiet NaN
// (NaN+NaN·i for complex containers) so that arithmetic on data nobody
// wrote produces recognizably invalid results instead of silently wrong
// ones. Off by default; flip it in test mains or debugging sessions.
// Not synchronized: set it before containers are shared across
// goroutines.
var DiagnosticFill = false

// Variables is the storage container: one flat buffer of
// gridPoints × schema.TotalComponents() scalars, with one published
// tensor.View per field.
//
// The zero value is not ready for use; construct with New, NewSized,
// NewFilled or NewRef so that views are published. A default (New)
// container is in the well-defined empty state: size 0, owning, every
// view nil-backed so writes through it panic.
type Variables[T tensor.Scalar] struct {
	schema     tensor.Schema
	buf        []T
	gridPoints int
	owning     bool
	views      []tensor.View[T]
}

// New constructs an empty owning container over schema: zero grid
// points, no allocation, nil-backed views.
func New[T tensor.Scalar](schema tensor.Schema) *Variables[T] {
	v := &Variables[T]{schema: schema, owning: true}
	v.publishViews()

	return v
}

// NewSized constructs an owning container with gridPoints sample points,
// leaving the contents unset (or NaN-stamped under DiagnosticFill).
func NewSized[T tensor.Scalar](schema tensor.Schema, gridPoints int) *Variables[T] {
	v := New[T](schema)
	v.Initialize(gridPoints)

	return v
}

// NewFilled constructs an owning container with gridPoints sample points
// and every element set to value.
func NewFilled[T tensor.Scalar](schema tensor.Schema, gridPoints int, value T) *Variables[T] {
	v := New[T](schema)
	v.InitializeFilled(gridPoints, value)

	return v
}

// NewRef constructs a non-owning container viewing buf, which is owned
// elsewhere and must outlive the result. len(buf) must be an exact
// multiple of schema.TotalComponents(); the grid-point count is derived
// as len(buf)/TotalComponents. A nil or empty buf yields the empty
// state. Panics wrapping ErrSizeNotMultiple on a non-multiple length.
func NewRef[T tensor.Scalar](schema tensor.Schema, buf []T) *Variables[T] {
	v := &Variables[T]{schema: schema}
	v.SetDataRef(buf)

	return v
}

// Schema returns the (immutable) field list the container was built on.
func (v *Variables[T]) Schema() tensor.Schema { return v.schema }

// GridPoints returns the number of sample points.
func (v *Variables[T]) GridPoints() int { return v.gridPoints }

// Size returns GridPoints() × TotalComponents(): the flat buffer length.
func (v *Variables[T]) Size() int { return len(v.buf) }

// IsOwning reports whether the container owns its buffer.
func (v *Variables[T]) IsOwning() bool { return v.owning }

// Data returns the flat buffer itself, not a copy. The slice is only
// valid while the container is alive and not resized or moved-from.
func (v *Variables[T]) Data() []T { return v.buf }

// Field returns the published view of field i.
func (v *Variables[T]) Field(i int) tensor.View[T] { return v.views[i] }

// FieldByName returns the published view of the named field.
// Panics wrapping ErrFieldNotFound for names absent from the schema.
func (v *Variables[T]) FieldByName(name string) tensor.View[T] {
	i, ok := v.schema.IndexOf(name)
	if !ok {
		panic(fmt.Errorf("%w: %q in %v", ErrFieldNotFound, name, v.schema))
	}

	return v.views[i]
}

// Initialize (re)sizes the container to gridPoints sample points.
// Calling it with the current grid-point count is a no-op that preserves
// both contents and backing array, which makes repeated initialization
// in a loop cheap. Any other count reallocates, so it requires an owning
// container: resizing a non-owning one panics wrapping
// ErrResizeNonOwning. Fresh storage is NaN-stamped under DiagnosticFill.
func (v *Variables[T]) Initialize(gridPoints int) {
	if v.gridPoints == gridPoints {
		return
	}
	if !v.owning {
		panic(fmt.Errorf("%w: current grid points %d, requested %d",
			ErrResizeNonOwning, v.gridPoints, gridPoints))
	}
	v.gridPoints = gridPoints
	size := gridPoints * v.schema.TotalComponents()
	if size > 0 {
		v.buf = make([]T, size)
		if DiagnosticFill {
			nan := sentinel[T]()
			for i := range v.buf {
				v.buf[i] = nan
			}
		}
	} else {
		v.buf = nil
	}
	v.publishViews()
}

// InitializeFilled is Initialize followed by setting every element to
// value. Unlike Initialize, it always overwrites the contents.
func (v *Variables[T]) InitializeFilled(gridPoints int, value T) {
	v.Initialize(gridPoints)
	for i := range v.buf {
		v.buf[i] = value
	}
}

// SetDataRef turns the container into a non-owning view of buf,
// releasing any owned storage. The same divisibility contract as NewRef
// applies; a nil or empty buf produces the (non-owning) empty state.
// Views are republished against the new buffer.
func (v *Variables[T]) SetDataRef(buf []T) {
	total := v.schema.TotalComponents()
	switch {
	case len(buf) == 0 || total == 0:
		v.buf = nil
		v.gridPoints = 0
	case len(buf)%total != 0:
		panic(fmt.Errorf("%w: length %d, total components %d",
			ErrSizeNotMultiple, len(buf), total))
	default:
		v.buf = buf
		v.gridPoints = len(buf) / total
	}
	v.owning = false
	v.publishViews()
}

// MoveFrom transfers src's buffer and state into v and resets src to
// the empty owning state, invalidating every view src had published.
// This is the ownership-transfer operation; no element is copied.
// Both containers must be built on identical schemas; panics wrapping
// ErrShapeMismatch otherwise. MoveFrom(v, v) is a no-op.
func (v *Variables[T]) MoveFrom(src *Variables[T]) {
	if v == src {
		return
	}
	if !v.schema.Equal(src.schema) {
		panic(fmt.Errorf("%w: move between %v and %v", ErrShapeMismatch, v.schema, src.schema))
	}
	v.buf = src.buf
	v.gridPoints = src.gridPoints
	v.owning = src.owning
	v.publishViews()

	src.buf = nil
	src.gridPoints = 0
	src.owning = true
	src.publishViews()
}

// Clone returns a deep copy with fresh owned storage. Cloning a
// non-owning container yields an owning one.
func (v *Variables[T]) Clone() *Variables[T] {
	out := &Variables[T]{
		schema:     v.schema,
		gridPoints: v.gridPoints,
		owning:     true,
	}
	if len(v.buf) > 0 {
		out.buf = append([]T(nil), v.buf...)
	}
	out.publishViews()

	return out
}

// CopyFrom overwrites v's contents with src's, resizing as needed
// (which requires v to be owning unless the sizes already match).
// Schemas must be identical; panics wrapping ErrShapeMismatch otherwise.
func (v *Variables[T]) CopyFrom(src *Variables[T]) {
	if v == src {
		return
	}
	if !v.schema.Equal(src.schema) {
		panic(fmt.Errorf("%w: copy between %v and %v", ErrShapeMismatch, v.schema, src.schema))
	}
	v.Initialize(src.gridPoints)
	copy(v.buf, src.buf)
}

// String renders each field as "<name>:\n<contents>", fields separated
// by blank lines with no trailing separator; a zero-field container
// prints "{}".
func (v *Variables[T]) String() string {
	if v.schema.NumFields() == 0 {
		return "{}"
	}
	var b strings.Builder
	for i := 0; i < v.schema.NumFields(); i++ {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(v.schema.Field(i).Name)
		b.WriteString(":\n")
		b.WriteString(v.views[i].String())
	}

	return b.String()
}

// publishViews rebinds one tensor.View per field against the current
// buffer. Called after every operation that changes the buffer or its
// size; stale views held by callers are their responsibility.
func (v *Variables[T]) publishViews() {
	if v.views == nil || len(v.views) != v.schema.NumFields() {
		v.views = make([]tensor.View[T], v.schema.NumFields())
	}
	for i := 0; i < v.schema.NumFields(); i++ {
		f := v.schema.Field(i)
		var win []T
		if len(v.buf) > 0 {
			lo := v.schema.Offset(i) * v.gridPoints
			win = v.buf[lo : lo+f.Components*v.gridPoints]
		}
		v.views[i] = tensor.Bind(f.Name, win, f.Components, v.gridPoints)
	}
}

// sentinel returns the diagnostic fill value for T: a quiet NaN, or
// NaN+NaN·i for complex containers. 0/0 produces it for every type in
// the Scalar set without a per-type switch.
func sentinel[T tensor.Scalar]() T {
	var zero T

	return zero / zero
}

package tensor

import (
	"fmt"
	"strings"
)

// Schema is an ordered, immutable list of Fields plus the precomputed
// component-offset table the storage container lays its flat buffer out
// by. Field i's components occupy component slots
// [Offset(i), Offset(i)+Field(i).Components) of every grid point block.
//
// A Schema with zero fields is legal (the zero-field specialization):
// every container built on it has size 0 and prints "{}".
type Schema struct {
	fields  []Field
	offsets []int // offsets[i] = sum of Components of fields[0:i]
	total   int   // sum of all Components
	index   map[string]int
}

// NewSchema validates and freezes an ordered field list.
// Stage 1 (Validate): non-empty unique names, positive component counts.
// Stage 2 (Prepare): build the offset table and name index.
// Stage 3 (Finalize): return the immutable Schema.
// Violations panic wrapping ErrEmptyFieldName, ErrBadComponentCount or
// ErrDuplicateField: a bad field list is a programmer error.
// Complexity: O(len(fields)).
func NewSchema(fields ...Field) Schema {
	offsets := make([]int, len(fields))
	index := make(map[string]int, len(fields))
	total := 0
	for i, f := range fields {
		if f.Name == "" {
			panic(fmt.Errorf("%w: field %d", ErrEmptyFieldName, i))
		}
		if f.Components < 1 {
			panic(fmt.Errorf("%w: field %q has %d", ErrBadComponentCount, f.Name, f.Components))
		}
		if _, dup := index[f.Name]; dup {
			panic(fmt.Errorf("%w: %q", ErrDuplicateField, f.Name))
		}
		index[f.Name] = i
		offsets[i] = total
		total += f.Components
	}

	return Schema{
		fields:  append([]Field(nil), fields...),
		offsets: offsets,
		total:   total,
		index:   index,
	}
}

// NumFields returns the number of fields in the schema.
func (s Schema) NumFields() int { return len(s.fields) }

// Field returns the i-th field descriptor.
func (s Schema) Field(i int) Field { return s.fields[i] }

// Fields returns a copy of the ordered field list.
func (s Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// TotalComponents is the sum of all fields' component counts: the number
// of scalars one grid point contributes to the flat buffer.
func (s Schema) TotalComponents() int { return s.total }

// Offset returns the component offset of field i within one grid point
// block: the number of components contributed by fields before it.
func (s Schema) Offset(i int) int { return s.offsets[i] }

// IndexOf returns the position of the named field, or ok=false when the
// schema has no field of that name.
func (s Schema) IndexOf(name string) (i int, ok bool) {
	i, ok = s.index[name]
	return i, ok
}

// Equal reports whether two schemas have identical field lists: same
// order, same names, same component counts.
func (s Schema) Equal(o Schema) bool {
	if len(s.fields) != len(o.fields) {
		return false
	}
	for i, f := range s.fields {
		if f != o.fields[i] {
			return false
		}
	}

	return true
}

// SameShape reports whether two schemas have the same per-field
// component counts in the same order, ignoring names entirely. This is
// the gate for zero-cost reinterpretation under different names.
func (s Schema) SameShape(o Schema) bool {
	if len(s.fields) != len(o.fields) {
		return false
	}
	for i, f := range s.fields {
		if f.Components != o.fields[i].Components {
			return false
		}
	}

	return true
}

// Compatible reports whether two schemas agree once name prefixes are
// stripped: same order, same base names, same component counts. This is
// the gate for container arithmetic, so "flux:velocity" interoperates
// with "velocity" but not with "pressure".
func (s Schema) Compatible(o Schema) bool {
	if len(s.fields) != len(o.fields) {
		return false
	}
	for i, f := range s.fields {
		if f.Components != o.fields[i].Components || f.BaseName() != o.fields[i].BaseName() {
			return false
		}
	}

	return true
}

// WithPrefix derives a schema of identical shape whose every field name
// carries an extra prefix. The result is Compatible with s.
func (s Schema) WithPrefix(prefix string) Schema {
	prefixed := make([]Field, len(s.fields))
	for i, f := range s.fields {
		prefixed[i] = f.WithPrefix(prefix)
	}

	return NewSchema(prefixed...)
}

// Sub returns the schema consisting of the fields [lo, hi) of s.
func (s Schema) Sub(lo, hi int) Schema {
	return NewSchema(s.fields[lo:hi]...)
}

// String renders the schema as "{name(c), name(c), ...}".
func (s Schema) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s(%d)", f.Name, f.Components)
	}
	b.WriteByte('}')

	return b.String()
}

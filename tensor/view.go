package tensor

import (
	"fmt"
	"strings"
)

// View is one field's window into a container's flat buffer: Components
// contiguous runs of GridPoints scalars each. A View owns no memory; it
// is valid exactly as long as the buffer it was bound to is alive and
// unmoved. Rebinding after a reallocation is the container's job.
//
// The zero View is the deliberate state published by an empty container:
// its window is nil, so any At/Set through it panics with an index error
// instead of corrupting memory.
type View[T Scalar] struct {
	name       string
	win        []T // the field's full contiguous run, len = components*gridPoints
	components int
	gridPoints int
}

// Bind creates a View over win, which must hold exactly
// components*gridPoints scalars laid out component-major. Bind is called
// by the storage container whenever it (re)publishes views; client code
// rarely needs it directly.
func Bind[T Scalar](name string, win []T, components, gridPoints int) View[T] {
	if len(win) != components*gridPoints {
		panic(fmt.Errorf("%w: view %q has window %d, want %d×%d",
			ErrBadComponentCount, name, len(win), components, gridPoints))
	}

	return View[T]{name: name, win: win, components: components, gridPoints: gridPoints}
}

// Name returns the field name the view was bound under.
func (v View[T]) Name() string { return v.name }

// Components returns the number of independent components.
func (v View[T]) Components() int { return v.components }

// GridPoints returns the number of sample points per component.
func (v View[T]) GridPoints() int { return v.gridPoints }

// Data returns the field's whole contiguous run, components laid out
// back to back. Shared memory, not a copy.
func (v View[T]) Data() []T { return v.win }

// Component returns component c as a flat slice of GridPoints scalars,
// sharing memory with the container buffer.
func (v View[T]) Component(c int) []T {
	return v.win[c*v.gridPoints : (c+1)*v.gridPoints]
}

// At reads component c at grid point s.
func (v View[T]) At(c, s int) T {
	if s < 0 || s >= v.gridPoints {
		panic(fmt.Errorf("tensor: grid point %d out of range [0,%d)", s, v.gridPoints))
	}

	return v.win[c*v.gridPoints+s]
}

// Set writes component c at grid point s. A zero View panics here.
func (v View[T]) Set(c, s int, x T) {
	if s < 0 || s >= v.gridPoints {
		panic(fmt.Errorf("tensor: grid point %d out of range [0,%d)", s, v.gridPoints))
	}
	v.win[c*v.gridPoints+s] = x
}

// Fill sets every element of every component to x.
func (v View[T]) Fill(x T) {
	for i := range v.win {
		v.win[i] = x
	}
}

// String renders the view as one line per component:
//
//	T0=[v0, v1, ...]
//	T1=[...]
func (v View[T]) String() string {
	var b strings.Builder
	for c := 0; c < v.components; c++ {
		if c > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "T%d=[", c)
		comp := v.Component(c)
		for s, x := range comp {
			if s > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", x)
		}
		b.WriteByte(']')
	}

	return b.String()
}

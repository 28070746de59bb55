package vars

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Wire format, little-endian throughout:
//
//	[grid_points: uint64][flat buffer: grid_points × total_components
//	 scalars in field-then-component-then-gridpoint order]
//
// Complex scalars travel as (real, imag) float64 pairs. There is no
// version field: the format is tied 1:1 to the schema, so the reader
// must be built on the exact field list used at write time.

// WriteTo packs the container onto w, implementing io.WriterTo.
// Packing a non-owning container panics wrapping ErrPackNonOwning: its
// content is assumed to be serialized by whoever owns the real buffer.
func (v *Variables[T]) WriteTo(w io.Writer) (int64, error) {
	if !v.owning {
		panic(fmt.Errorf("%w: %d grid points referenced", ErrPackNonOwning, v.gridPoints))
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(v.gridPoints)); err != nil {
		return 0, fmt.Errorf("vars: pack grid points: %w", err)
	}
	n := int64(8)
	if len(v.buf) > 0 {
		if err := binary.Write(w, binary.LittleEndian, v.buf); err != nil {
			return n, fmt.Errorf("vars: pack buffer: %w", err)
		}
		n += int64(binary.Size(v.buf))
	}

	return n, nil
}

// ReadFrom unpacks a container from r, implementing io.ReaderFrom. The
// receiver is initialized to the transmitted grid-point count first, so
// unpacking into a non-owning container of a different size panics
// wrapping ErrResizeNonOwning.
func (v *Variables[T]) ReadFrom(r io.Reader) (int64, error) {
	var gridPoints uint64
	if err := binary.Read(r, binary.LittleEndian, &gridPoints); err != nil {
		return 0, fmt.Errorf("vars: unpack grid points: %w", err)
	}
	v.Initialize(int(gridPoints))
	n := int64(8)
	if len(v.buf) > 0 {
		if err := binary.Read(r, binary.LittleEndian, v.buf); err != nil {
			return n, fmt.Errorf("vars: unpack buffer: %w", err)
		}
		n += int64(binary.Size(v.buf))
	}

	return n, nil
}

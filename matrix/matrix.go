// Copyright 2025 go-amx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package matrix provides the dense float32 matrix type consumed by the
// AMX matmul engine.
//
// Storage is row-major with the row stride padded up to a multiple of
// the 16-element tile width and the buffer aligned to 64 bytes, so that
// tile-aligned 64-byte loads never cross a row boundary and never fault.
// Element (r, c) lives at Data()[r*Stride()+c].
package matrix

import (
	"errors"
	"unsafe"

	"github.com/ajroetker/go-amx/amx"
)

// Tile is the tile width the row stride is padded to.
const Tile = amx.Tile

var (
	// ErrZeroDimension is returned by constructors when rows or cols is zero.
	ErrZeroDimension = errors.New("matrix: dimensions must be positive")

	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
)

// Matrix is a dense row-major float32 matrix with padded row stride.
// Distinct Matrix values never alias the same buffer.
type Matrix struct {
	data []float32
	rows int
	cols int
	strd int
}

// AlignedBuffer returns a zeroed float32 slice of length n whose backing
// array is aligned to the coprocessor's 64-byte requirement.
func AlignedBuffer(n int) []float32 {
	buf := make([]float32, n+amx.Align/4)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := addr % amx.Align; rem != 0 {
		off = int((amx.Align - rem) / 4)
	}
	return buf[off : off+n : off+n]
}

func roundUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// NewZeros creates a rows x cols matrix with every element, including
// the stride padding, set to zero.
func NewZeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrZeroDimension
	}
	strd := roundUp(cols, Tile)
	return &Matrix{
		data: AlignedBuffer(rows * strd),
		rows: rows,
		cols: cols,
		strd: strd,
	}, nil
}

// NewFill creates a rows x cols matrix with every logical element set
// to value. Padding columns stay zero.
func NewFill(rows, cols int, value float32) (*Matrix, error) {
	m, err := NewZeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		row := m.data[i*m.strd:]
		for j := 0; j < cols; j++ {
			row[j] = value
		}
	}
	return m, nil
}

// NewIdentity creates the n x n identity matrix.
func NewIdentity(n int) (*Matrix, error) {
	m, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*m.strd+i] = 1
	}
	return m, nil
}

// FromData creates a rows x cols matrix by copying the given row-major
// buffer, which must hold exactly rows*cols elements. The source is not
// retained.
func FromData(rows, cols int, data []float32) (*Matrix, error) {
	if rows > 0 && cols > 0 && len(data) < rows*cols {
		panic("matrix: FromData: buffer shorter than rows*cols")
	}
	m, err := NewZeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		copy(m.data[i*m.strd:i*m.strd+cols], data[i*cols:])
	}
	return m, nil
}

// FromOwnedData creates a rows x cols matrix taking ownership of the
// given row-major buffer of exactly rows*cols elements. The caller must
// not read or write the buffer afterwards. When the buffer already
// satisfies the stride and alignment invariants it is adopted without
// copying; otherwise the elements are copied into a fresh buffer.
func FromOwnedData(rows, cols int, data []float32) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrZeroDimension
	}
	if len(data) < rows*cols {
		panic("matrix: FromOwnedData: buffer shorter than rows*cols")
	}
	if cols%Tile == 0 && len(data) == rows*cols &&
		uintptr(unsafe.Pointer(&data[0]))%amx.Align == 0 {
		return &Matrix{data: data, rows: rows, cols: cols, strd: cols}, nil
	}
	return FromData(rows, cols, data)
}

// Clone returns a deep copy. The clone owns a fresh buffer; mutating it
// never affects the original.
func (m *Matrix) Clone() (*Matrix, error) {
	c, err := NewZeros(m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	copy(c.data, m.data)
	return c, nil
}

// Release drops the buffer. Safe to call more than once and on a nil
// receiver. Any other use of the matrix after Release is invalid.
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.rows = 0
	m.cols = 0
	m.strd = 0
}

// Rows returns the number of logical rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of logical columns.
func (m *Matrix) Cols() int { return m.cols }

// Stride returns the number of floats per stored row. Always >= Cols
// and a multiple of Tile.
func (m *Matrix) Stride() int { return m.strd }

// Data returns the underlying buffer of Rows*Stride floats.
func (m *Matrix) Data() []float32 { return m.data }

// At returns element (r, c). Bounds are not checked.
func (m *Matrix) At(r, c int) float32 {
	return m.data[r*m.strd+c]
}

// Set writes element (r, c). Bounds are not checked.
func (m *Matrix) Set(r, c int, v float32) {
	m.data[r*m.strd+c] = v
}

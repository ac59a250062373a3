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

package matrix

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-amx/amx"
)

func TestNewZerosInvariants(t *testing.T) {
	m, err := NewZeros(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, 16, m.Stride(), "stride must round up to the tile width")
	assert.Len(t, m.Data(), 3*16)
	for i, v := range m.Data() {
		require.Zerof(t, v, "element %d not zeroed", i)
	}
}

func TestNewZerosRejectsZeroDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {0, 0}, {-1, 4}} {
		_, err := NewZeros(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrZeroDimension, "dims %v", dims)
	}
}

func TestBufferAlignment(t *testing.T) {
	// Odd sizes stress the alignment offset computation.
	for _, n := range []int{1, 3, 16, 17, 100, 129} {
		m, err := NewZeros(n, n)
		require.NoError(t, err)
		addr := uintptr(unsafe.Pointer(&m.Data()[0]))
		assert.Zerof(t, addr%amx.Align, "%dx%d buffer not %d-byte aligned", n, n, amx.Align)
	}
}

func TestStrideIsTileMultiple(t *testing.T) {
	for _, cols := range []int{1, 15, 16, 17, 31, 32, 129} {
		m, err := NewZeros(2, cols)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m.Stride(), cols)
		assert.Zero(t, m.Stride()%Tile)
	}
}

func TestNewFillLeavesPaddingZero(t *testing.T) {
	m, err := NewFill(4, 5, 2.5)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			assert.Equal(t, float32(2.5), m.At(i, j))
		}
		for j := 5; j < m.Stride(); j++ {
			assert.Zerof(t, m.Data()[i*m.Stride()+j], "padding (%d,%d) written", i, j)
		}
	}
}

func TestNewIdentity(t *testing.T) {
	m, err := NewIdentity(7)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, m.At(i, j))
		}
	}
}

func TestFromDataCopies(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	m, err := FromData(2, 3, src)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, float32(1), m.At(0, 0), "matrix must not alias the source")
	assert.Equal(t, float32(6), m.At(1, 2))
}

func TestFromOwnedDataAdoptsAlignedBuffer(t *testing.T) {
	// Tile-multiple width and aligned backing: ownership transfers
	// without a copy.
	buf := AlignedBuffer(2 * 16)
	for i := range buf {
		buf[i] = float32(i)
	}
	m, err := FromOwnedData(2, 16, buf)
	require.NoError(t, err)
	assert.Equal(t, float32(17), m.At(1, 1))
	assert.Same(t, &buf[0], &m.Data()[0], "aligned tile-width buffer should be adopted")
}

func TestFromOwnedDataCopiesUnalignedShape(t *testing.T) {
	buf := make([]float32, 2*3)
	for i := range buf {
		buf[i] = float32(i)
	}
	m, err := FromOwnedData(2, 3, buf)
	require.NoError(t, err)
	assert.Equal(t, 16, m.Stride())
	assert.Equal(t, float32(5), m.At(1, 2))
}

func TestCloneIsolation(t *testing.T) {
	m, err := NewFill(3, 3, 1)
	require.NoError(t, err)
	c, err := m.Clone()
	require.NoError(t, err)
	c.Set(0, 0, 42)
	assert.Equal(t, float32(1), m.At(0, 0), "mutating the clone changed the original")
	m.Set(1, 1, 7)
	assert.Equal(t, float32(1), c.At(1, 1), "mutating the original changed the clone")
}

func TestReleaseIdempotent(t *testing.T) {
	m, err := NewZeros(2, 2)
	require.NoError(t, err)
	m.Release()
	m.Release()
	var nilM *Matrix
	nilM.Release()
	assert.Nil(t, m.Data())
}

func TestSetGetRoundTrip(t *testing.T) {
	m, err := NewZeros(4, 4)
	require.NoError(t, err)
	m.Set(2, 3, -1.5)
	assert.Equal(t, float32(-1.5), m.At(2, 3))
	assert.Equal(t, float32(-1.5), m.Data()[2*m.Stride()+3])
}

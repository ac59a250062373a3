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

//go:build darwin && arm64

package matmul

import (
	"unsafe"

	"github.com/ajroetker/go-amx/amx"
	"github.com/ajroetker/go-amx/matrix"
)

// zeroRow is the 64-byte source used to clear Z accumulator rows.
var zeroRow = matrix.AlignedBuffer(Tile)

// microKernel16x16 computes one full 16x16 output tile over the whole
// reduction dimension k.
//
//   - panel: packed column-major A panel, k*Tile floats, unit stride
//   - b: row-major B slice starting at the tile's first column, with
//     the matrix's real row stride
//   - c: row-major destination slice starting at the tile's first
//     element, with the real row stride; must be zeroed by the caller
//     (the kernel never loads existing C values)
//
// The caller must hold the coprocessor enabled on a locked OS thread
// and guarantee 64-byte alignment of panel, b and c tile starts.
//
// Reduction runs in chunks of 8 filling the whole X and Y register
// files, then one column/row at a time for the k%8 remainder. This
// order is fixed and is what makes accelerated results tolerance-equal
// rather than bit-equal to the scalar path.
func microKernel16x16(panel, b, c []float32, k, bStride, cStride int) {
	// In float32 outer-product mode every 4th Z row holds one tile row.
	zp := unsafe.Pointer(&zeroRow[0])
	for row := uint64(0); row < amx.NumZRows; row += 4 {
		amx.LoadZ(zp, row, false)
	}

	kk := 0
	for ; kk+kUnroll <= k; kk += kUnroll {
		ap := panel[kk*Tile:]
		bp := b[kk*bStride:]

		for r := range kUnroll {
			amx.LoadY(unsafe.Pointer(&ap[r*Tile]), uint64(r), false)
		}
		for r := range kUnroll {
			amx.LoadX(unsafe.Pointer(&bp[r*bStride]), uint64(r), false)
			off := uint64(r * amx.RegBytes)
			amx.FMA32(off, off, 0, false)
		}
	}

	for ; kk < k; kk++ {
		amx.LoadY(unsafe.Pointer(&panel[kk*Tile]), 0, false)
		amx.LoadX(unsafe.Pointer(&b[kk*bStride]), 0, false)
		amx.FMA32(0, 0, 0, false)
	}

	for r := range Tile {
		amx.StoreZ(unsafe.Pointer(&c[r*cStride]), uint64(r*4), false)
	}
}

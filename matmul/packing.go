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

package matmul

// PackPanel rearranges the row block [rowStart, rowEnd) of A into a
// column-major panel the micro-kernel can stream with unit stride.
//
// A is row-major with the given stride. For each reduction index kk the
// panel holds Tile contiguous floats with the block's rows at column kk;
// blocks shorter than Tile rows are zero-padded, so the panel is always
// exactly k*Tile floats and every row block looks identical downstream.
//
// The gather is strided on the source side (consecutive destination
// lanes come from consecutive A rows), which is what makes packing pay:
// the kernel then reads the panel sequentially for every column tile in
// the band.
func PackPanel(a, panel []float32, rowStart, rowEnd, k, stride int) {
	rows := rowEnd - rowStart
	src := a[rowStart*stride:]

	if rows == Tile {
		for kk := 0; kk < k; kk++ {
			dst := panel[kk*Tile : kk*Tile+Tile]
			col := src[kk:]
			for r := 0; r < Tile; r++ {
				dst[r] = col[r*stride]
			}
		}
		return
	}

	// Final partial row block: valid rows, then zero lanes.
	for kk := 0; kk < k; kk++ {
		dst := panel[kk*Tile : kk*Tile+Tile]
		col := src[kk:]
		for r := 0; r < rows; r++ {
			dst[r] = col[r*stride]
		}
		for r := rows; r < Tile; r++ {
			dst[r] = 0
		}
	}
}

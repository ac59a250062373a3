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

import "github.com/ajroetker/go-amx/matrix"

// matmulScalar is the reference triple loop: C[i,j] += A[i,k]*B[k,j]
// over the logical dimensions, output zeroed first. It runs when the
// coprocessor is absent, the output is smaller than a tile in either
// dimension, or acceleration setup fails. Its i-then-k-then-j reduction
// order defines the semantic ground truth the tiled path is compared
// against.
func matmulScalar(a, b, c *matrix.Matrix) {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	ap, bp, cp := a.Data(), b.Data(), c.Data()
	as, bs, cs := a.Stride(), b.Stride(), c.Stride()

	for i := range cp {
		cp[i] = 0
	}

	for i := 0; i < m; i++ {
		arow := ap[i*as:]
		crow := cp[i*cs:]
		for p := 0; p < k; p++ {
			aip := arow[p]
			brow := bp[p*bs:]
			for j := 0; j < n; j++ {
				crow[j] += aip * brow[j]
			}
		}
	}
}

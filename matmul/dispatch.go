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

import (
	"github.com/ajroetker/go-amx/amx"
	"github.com/ajroetker/go-amx/matrix"
)

const (
	// Tile is the edge of the output tile one micro-kernel invocation
	// produces, fixed by the coprocessor register width.
	Tile = amx.Tile

	// kUnroll is the reduction chunk processed per register-file load:
	// all 8 X and all 8 Y registers in flight.
	kUnroll = amx.NumXRegs

	// singleThreadMaxRows keeps small multiplies on the calling
	// goroutine. Below this the dispatch overhead beats the speedup.
	singleThreadMaxRows = 64
)

// MatMul computes a * b, returning a fresh (a.Rows x b.Cols) matrix.
// It returns matrix.ErrShapeMismatch when a.Cols != b.Rows. The
// strategy (coprocessor or scalar) is chosen silently; results across
// strategies agree within a K-proportional tolerance.
func MatMul(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if a.Cols() != b.Rows() {
		return nil, matrix.ErrShapeMismatch
	}
	c, err := matrix.NewZeros(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}

	// Sub-tile outputs never amortize packing, and the kernel cannot
	// produce partial tiles on its own.
	if amx.IsAvailable() && a.Rows() >= Tile && b.Cols() >= Tile {
		matmulCoproc(a, b, c)
	} else {
		matmulScalar(a, b, c)
	}
	return c, nil
}

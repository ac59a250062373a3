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

// Package matmul implements tiled, packed, multi-threaded matrix
// multiplication on the Apple AMX coprocessor, with a scalar fallback
// for other platforms and small problems.
//
// Example:
//
//	a, _ := matrix.NewFill(256, 256, 1.0)
//	b, _ := matrix.NewFill(256, 256, 2.0)
//	c, err := matmul.MatMul(a, b) // every element is 512.0
//
// MatMul picks the strategy itself: the 16x16 outer-product micro-kernel
// over packed A panels when the coprocessor is present and both output
// dimensions reach a full tile, the reference triple loop otherwise.
// Work is split over the performance cores by contiguous, tile-aligned
// row ranges; each worker owns a private packing buffer and brackets its
// instruction stream with amx.Enable/Disable on a locked OS thread.
//
// The accelerated path fixes a reduction order (chunks of 8, then the
// remainder) that differs from the scalar loop, so the two strategies
// agree within a K-proportional tolerance but not bit-for-bit.
package matmul

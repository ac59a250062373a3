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

//go:build !darwin || !arm64

package matmul

// microKernel16x16 is unreachable off darwin/arm64: MatMul gates on
// amx.IsAvailable before entering the accelerated path.
func microKernel16x16(panel, b, c []float32, k, bStride, cStride int) {
	panic("matmul: micro-kernel invoked without AMX")
}

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

package amx

import "unsafe"

// Raw instruction issue. Each function emits one reserved instruction
// word with the pre-encoded operand in x0. Implemented in
// raw_darwin_arm64.s.

//go:noescape
func amxLDX(operand uint64)

//go:noescape
func amxLDY(operand uint64)

//go:noescape
func amxLDZ(operand uint64)

//go:noescape
func amxSTX(operand uint64)

//go:noescape
func amxSTY(operand uint64)

//go:noescape
func amxSTZ(operand uint64)

//go:noescape
func amxFMA32(operand uint64)

//go:noescape
func amxFMS32(operand uint64)

//go:noescape
func amxSet()

//go:noescape
func amxClr()

// Enable turns the coprocessor on for the current OS thread. It must be
// paired 1:1 with Disable and is not reentrant. Callers must hold the
// thread with runtime.LockOSThread for the whole Enable/Disable window.
func Enable() {
	amxSet()
}

// Disable turns the coprocessor off for the current OS thread.
func Disable() {
	amxClr()
}

// LoadX loads 64 bytes from p into X register reg (0-7).
// With pair set, 128 bytes are loaded into reg and reg+1.
func LoadX(p unsafe.Pointer, reg uint64, pair bool) {
	amxLDX(encodeXY(uintptr(p), reg, pair))
}

// LoadY loads 64 bytes from p into Y register reg (0-7).
// With pair set, 128 bytes are loaded into reg and reg+1.
func LoadY(p unsafe.Pointer, reg uint64, pair bool) {
	amxLDY(encodeXY(uintptr(p), reg, pair))
}

// LoadZ loads 64 bytes from p into Z row (0-63).
// With pair set, 128 bytes are loaded into row and row+1.
func LoadZ(p unsafe.Pointer, row uint64, pair bool) {
	amxLDZ(encodeZ(uintptr(p), row, pair))
}

// StoreX stores 64 bytes from X register reg (0-7) to p.
// With pair set, 128 bytes are stored from reg and reg+1.
func StoreX(p unsafe.Pointer, reg uint64, pair bool) {
	amxSTX(encodeXY(uintptr(p), reg, pair))
}

// StoreY stores 64 bytes from Y register reg (0-7) to p.
// With pair set, 128 bytes are stored from reg and reg+1.
func StoreY(p unsafe.Pointer, reg uint64, pair bool) {
	amxSTY(encodeXY(uintptr(p), reg, pair))
}

// StoreZ stores 64 bytes from Z row (0-63) to p.
// With pair set, 128 bytes are stored from row and row+1.
func StoreZ(p unsafe.Pointer, row uint64, pair bool) {
	amxSTZ(encodeZ(uintptr(p), row, pair))
}

// FMA32 issues a float32 fused multiply-add. In outer-product mode
// (vector=false) it computes Z[j][i] += X[i] * Y[j] over the 16x16
// accumulator selected by zRow; in vector mode it computes the
// pointwise Z[zRow][i] += X[i] * Y[i]. xOff and yOff are byte offsets
// into the register files (0-511).
func FMA32(xOff, yOff, zRow uint64, vector bool) {
	amxFMA32(encodeFMA(xOff, yOff, zRow, vector))
}

// FMS32 is the subtracting counterpart of FMA32: Z -= X * Y with the
// same operand semantics.
func FMS32(xOff, yOff, zRow uint64, vector bool) {
	amxFMS32(encodeFMA(xOff, yOff, zRow, vector))
}

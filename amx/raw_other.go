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

package amx

import "unsafe"

// Stubs for platforms without the coprocessor. Detect reports LevelNone
// there, so every gated caller takes the scalar path and these are
// unreachable. Reaching one means the caller skipped the gate.

func unavailable() {
	panic("amx: coprocessor not available on this platform")
}

// Enable turns the coprocessor on for the current OS thread.
func Enable() { unavailable() }

// Disable turns the coprocessor off for the current OS thread.
func Disable() { unavailable() }

// LoadX loads 64 bytes from p into X register reg (0-7).
func LoadX(p unsafe.Pointer, reg uint64, pair bool) { unavailable() }

// LoadY loads 64 bytes from p into Y register reg (0-7).
func LoadY(p unsafe.Pointer, reg uint64, pair bool) { unavailable() }

// LoadZ loads 64 bytes from p into Z row (0-63).
func LoadZ(p unsafe.Pointer, row uint64, pair bool) { unavailable() }

// StoreX stores 64 bytes from X register reg (0-7) to p.
func StoreX(p unsafe.Pointer, reg uint64, pair bool) { unavailable() }

// StoreY stores 64 bytes from Y register reg (0-7) to p.
func StoreY(p unsafe.Pointer, reg uint64, pair bool) { unavailable() }

// StoreZ stores 64 bytes from Z row (0-63) to p.
func StoreZ(p unsafe.Pointer, row uint64, pair bool) { unavailable() }

// FMA32 issues a float32 fused multiply-add.
func FMA32(xOff, yOff, zRow uint64, vector bool) { unavailable() }

// FMS32 issues a float32 fused multiply-subtract.
func FMS32(xOff, yOff, zRow uint64, vector bool) { unavailable() }

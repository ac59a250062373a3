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

// Package amx provides access to the Apple AMX matrix coprocessor.
//
// AMX is an undocumented per-core coprocessor present on Apple Silicon.
// It is reached through reserved instruction encodings in the 0x00201000
// opcode space and exposes a register file of 8 X registers, 8 Y registers
// and 64 Z rows of 64 bytes each. A single outer-product FMA instruction
// computes a rank-1 update of a 16x16 float32 accumulator tile.
//
// This package has two layers:
//
//   - Capability detection: Detect, IsAvailable and PerformanceCores
//     identify the coprocessor generation once per process and cache
//     the result. On anything other than Apple Silicon, Detect reports
//     LevelNone and the instruction layer must not be used.
//
//   - Instruction issue: Enable, Disable, LoadX, LoadY, LoadZ, StoreZ
//     and FMA32 wrap the raw instructions with typed operand encoding.
//     These are only compiled to real instructions on darwin/arm64;
//     elsewhere they panic.
//
// The instruction layer is a trusted-caller boundary. Callers must
// bracket every instruction sequence with Enable/Disable on a locked
// OS thread, pass 64-byte aligned addresses backed by at least 64
// (128 for paired transfers) valid bytes, and keep register and row
// indices in range. Violations are undefined behavior, not errors.
//
// Set AMX_FORCE_SCALAR in the environment to make Detect report
// LevelNone regardless of hardware.
package amx

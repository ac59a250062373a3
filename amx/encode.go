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

package amx

// Register file geometry. These are hardware constants; the panel and
// tile layouts in the matmul package are derived from them.
const (
	// NumXRegs and NumYRegs are the number of 64-byte X and Y registers.
	NumXRegs = 8
	NumYRegs = 8

	// NumZRows is the number of 64-byte Z accumulator rows. In float32
	// outer-product mode every 4th row holds one tile row, giving a
	// 16x16 accumulator.
	NumZRows = 64

	// RegBytes is the width of every register and Z row in bytes.
	RegBytes = 64

	// Tile is the edge of the float32 output tile: RegBytes / 4.
	Tile = 16

	// Align is the memory alignment required by load/store operands.
	Align = 64
)

// Operand bit layout, shared by all load/store instructions:
//
//	bit  62     pair flag (transfer 128 bytes into consecutive regs/rows)
//	bits 56-61  register index (X/Y: 0-7) or Z row (0-63)
//	bits 0-55   memory address
//
// FMA operands:
//
//	bit  63     vector mode (pointwise) instead of outer product
//	bits 20-25  Z row
//	bits 10-18  X byte offset (0-511)
//	bits 0-8    Y byte offset (0-511)
const (
	addrMask = (1 << 56) - 1

	pairBit   = 1 << 62
	vectorBit = 1 << 63

	regShift = 56
	regMask  = 0x7
	rowMask  = 0x3F

	fmaZRowShift = 20
	fmaXShift    = 10
	fmaOffMask   = 0x1FF
)

// encodeXY packs a load/store operand for the X or Y register file.
func encodeXY(addr uintptr, reg uint64, pair bool) uint64 {
	op := (reg&regMask)<<regShift | uint64(addr)&addrMask
	if pair {
		op |= pairBit
	}
	return op
}

// encodeZ packs a load/store operand for a Z accumulator row.
func encodeZ(addr uintptr, row uint64, pair bool) uint64 {
	op := (row&rowMask)<<regShift | uint64(addr)&addrMask
	if pair {
		op |= pairBit
	}
	return op
}

// encodeFMA packs a fused-multiply-add operand. xOff and yOff are byte
// offsets into the X and Y register files. In outer-product mode
// (vector=false) the Z row selects the accumulator group and the high
// bits are ignored by hardware.
func encodeFMA(xOff, yOff, zRow uint64, vector bool) uint64 {
	op := (zRow&rowMask)<<fmaZRowShift | (xOff&fmaOffMask)<<fmaXShift | yOff&fmaOffMask
	if vector {
		op |= vectorBit
	}
	return op
}

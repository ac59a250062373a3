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

import "testing"

func TestEncodeXY(t *testing.T) {
	tests := []struct {
		name string
		addr uintptr
		reg  uint64
		pair bool
		want uint64
	}{
		{"zero", 0, 0, false, 0},
		{"addr only", 0x1000, 0, false, 0x1000},
		{"reg 7", 0, 7, false, 7 << 56},
		{"pair", 0, 0, true, 1 << 62},
		{"reg masked to 3 bits", 0, 0xF, false, 7 << 56},
		{"addr truncated to 56 bits", ^uintptr(0), 0, false, (1 << 56) - 1},
		{"combined", 0x4000, 3, true, 1<<62 | 3<<56 | 0x4000},
	}
	for _, tt := range tests {
		if got := encodeXY(tt.addr, tt.reg, tt.pair); got != tt.want {
			t.Errorf("%s: encodeXY = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestEncodeZ(t *testing.T) {
	tests := []struct {
		name string
		addr uintptr
		row  uint64
		pair bool
		want uint64
	}{
		{"row 63", 0, 63, false, 63 << 56},
		{"row masked to 6 bits", 0, 0x7F, false, 63 << 56},
		{"pair with row", 0x40, 60, true, 1<<62 | 60<<56 | 0x40},
	}
	for _, tt := range tests {
		if got := encodeZ(tt.addr, tt.row, tt.pair); got != tt.want {
			t.Errorf("%s: encodeZ = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestEncodeFMA(t *testing.T) {
	tests := []struct {
		name       string
		xOff, yOff uint64
		zRow       uint64
		vector     bool
		want       uint64
	}{
		{"zero", 0, 0, 0, false, 0},
		{"y offset", 0, 0x1FF, 0, false, 0x1FF},
		{"x offset", 0x1FF, 0, 0, false, 0x1FF << 10},
		{"z row", 0, 0, 63, false, 63 << 20},
		{"offsets masked to 9 bits", 0x3FF, 0x3FF, 0, false, 0x1FF<<10 | 0x1FF},
		{"vector mode", 0, 0, 0, true, 1 << 63},
		{"register 7 offsets", 7 * RegBytes, 7 * RegBytes, 0, false, 448<<10 | 448},
	}
	for _, tt := range tests {
		if got := encodeFMA(tt.xOff, tt.yOff, tt.zRow, tt.vector); got != tt.want {
			t.Errorf("%s: encodeFMA = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestRegisterFileGeometry(t *testing.T) {
	// The float32 tile edge is fixed by the register width.
	if Tile*4 != RegBytes {
		t.Errorf("Tile = %d does not fill a %d-byte register", Tile, RegBytes)
	}
	if NumXRegs*RegBytes != 512 || NumYRegs*RegBytes != 512 {
		t.Error("X/Y register files must span the 512-byte FMA offset range")
	}
}

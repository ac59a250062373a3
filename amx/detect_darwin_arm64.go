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

import (
	"strings"

	"golang.org/x/sys/unix"
)

// queryPlatform identifies the coprocessor generation from the CPU brand
// string and reads the performance-core count. AMX has shipped on every
// Apple Silicon generation, so presence of the vendor marker is enough.
func queryPlatform() (Level, int) {
	cores := 1
	if n, err := unix.SysctlUint32("hw.perflevel0.logicalcpu"); err == nil && n > 0 {
		cores = int(n)
	}

	brand, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return LevelNone, cores
	}
	if !strings.Contains(brand, "Apple") {
		return LevelNone, cores
	}

	// Newest first: "Apple M1 Max" style strings all contain "M1" etc.
	switch {
	case strings.Contains(brand, "M4"):
		return LevelM4, cores
	case strings.Contains(brand, "M3"):
		return LevelM3, cores
	case strings.Contains(brand, "M2"):
		return LevelM2, cores
	case strings.Contains(brand, "M1"):
		return LevelM1, cores
	default:
		return LevelUnknown, cores
	}
}

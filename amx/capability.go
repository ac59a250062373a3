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

import (
	"os"
	"sync"
)

// Level identifies the detected AMX coprocessor generation.
type Level int

const (
	// LevelNone means no AMX coprocessor is present.
	LevelNone Level = iota

	// LevelUnknown means the CPU is recognized as Apple Silicon but the
	// generation is not. AMX is assumed present.
	LevelUnknown

	LevelM1
	LevelM2
	LevelM3
	LevelM4
)

// String returns a human-readable name for the capability level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelUnknown:
		return "apple-unknown"
	case LevelM1:
		return "m1"
	case LevelM2:
		return "m2"
	case LevelM3:
		return "m3"
	case LevelM4:
		return "m4"
	default:
		return "invalid"
	}
}

// maxPerformanceCores bounds the parallelism hint. Matches the widest
// performance-core cluster shipped on Apple Silicon to date.
const maxPerformanceCores = 16

// detector performs the one-time platform query. The query function is a
// field so tests can substitute a counting double.
type detector struct {
	once  sync.Once
	query func() (Level, int)

	level Level
	cores int
}

func (d *detector) detect() (Level, int) {
	d.once.Do(func() {
		d.level, d.cores = d.query()
		if d.cores < 1 {
			d.cores = 1
		}
		if d.cores > maxPerformanceCores {
			d.cores = maxPerformanceCores
		}
	})
	return d.level, d.cores
}

var global = detector{query: queryPlatform}

// Detect returns the AMX capability level of the current machine.
// The platform query runs at most once per process; all callers,
// including concurrent first callers, observe the same cached result.
// Query failures degrade to LevelNone rather than returning an error.
func Detect() Level {
	if forceScalarEnv() {
		return LevelNone
	}
	level, _ := global.detect()
	return level
}

// IsAvailable reports whether the AMX coprocessor can be used.
func IsAvailable() bool {
	return Detect() != LevelNone
}

// PerformanceCores returns the number of performance cores to target
// for parallel kernels, clamped to [1, 16]. Returns 1 when the core
// count cannot be determined.
func PerformanceCores() int {
	_, cores := global.detect()
	return cores
}

// forceScalarEnv reports whether AMX has been disabled via the
// AMX_FORCE_SCALAR environment variable.
func forceScalarEnv() bool {
	return os.Getenv("AMX_FORCE_SCALAR") != ""
}

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

import "runtime"

// queryPlatform on anything other than macOS on Apple Silicon: the
// coprocessor does not exist. The core hint still reflects the host so
// diagnostic tools report something sensible.
func queryPlatform() (Level, int) {
	return LevelNone, runtime.GOMAXPROCS(0)
}

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

package matmul

import (
	"runtime"
	"sync"

	"github.com/ajroetker/go-amx/amx"
	"github.com/ajroetker/go-amx/matrix"
)

// task is one worker's share of a multiply: shared read-only operand
// buffers, an exclusive row range of the output, and a private packing
// buffer. Row ranges across a call's tasks partition [0, M) exactly.
type task struct {
	a, b, c  []float32
	panel    []float32
	k, n     int
	aStride  int
	bStride  int
	cStride  int
	rowStart int
	rowEnd   int
}

// allocPanel allocates one K*Tile packing buffer. A var so tests can
// inject failure and exercise the scalar demotion path; returning nil
// demotes the whole call.
var allocPanel = func(k int) []float32 {
	return matrix.AlignedBuffer(k * Tile)
}

// rowRange is one contiguous, tile-aligned chunk of output rows.
type rowRange struct {
	start, end int
}

// splitRows partitions [0, m) into at most workers contiguous chunks.
// Every boundary except the last is a multiple of Tile and the last
// chunk absorbs the remainder, so no worker ever receives a partial
// tile that another worker also touches.
func splitRows(m, workers int) []rowRange {
	tiles := (m + Tile - 1) / Tile
	if workers > tiles {
		workers = tiles
	}
	if workers < 1 {
		workers = 1
	}
	per := (tiles / workers) * Tile
	if per < Tile {
		per = Tile
	}

	ranges := make([]rowRange, 0, workers)
	for w := 0; w < workers; w++ {
		start := w * per
		if start >= m {
			break
		}
		end := start + per
		if w == workers-1 || end > m {
			end = m
		}
		ranges = append(ranges, rowRange{start, end})
		if end == m {
			break
		}
	}
	return ranges
}

// matmulCoproc runs the accelerated path. The output buffer of c is
// zeroed in full first (the micro-kernel stores over, and the edge loop
// accumulates into, zeroed destinations). Any panel allocation failure
// demotes the entire call to the scalar path; there is no partial
// acceleration.
func matmulCoproc(a, b, c *matrix.Matrix) {
	m, k, n := a.Rows(), a.Cols(), b.Cols()

	cp := c.Data()
	for i := range cp {
		cp[i] = 0
	}

	base := task{
		a: a.Data(), b: b.Data(), c: c.Data(),
		k: k, n: n,
		aStride: a.Stride(), bStride: b.Stride(), cStride: c.Stride(),
	}

	tiles := (m + Tile - 1) / Tile
	workers := min(tiles, amx.PerformanceCores())

	if m <= singleThreadMaxRows || workers <= 1 {
		panel := allocPanel(k)
		if panel == nil {
			matmulScalar(a, b, c)
			return
		}
		t := base
		t.panel = panel
		t.rowStart, t.rowEnd = 0, m
		t.run()
		return
	}

	panels := make([][]float32, workers)
	for i := range panels {
		if panels[i] = allocPanel(k); panels[i] == nil {
			matmulScalar(a, b, c)
			return
		}
	}

	var wg sync.WaitGroup
	for i, r := range splitRows(m, workers) {
		t := base
		t.panel = panels[i]
		t.rowStart, t.rowEnd = r.start, r.end
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.run()
		}()
	}
	wg.Wait()
}

// run processes the task's row range: one panel pack per 16-row band,
// reused across every column tile in the band; full tiles go to the
// micro-kernel, edge tiles to the scalar loop. The coprocessor bracket
// is per OS thread, so the thread is locked for its duration and
// Disable runs on every exit path.
func (t *task) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	amx.Enable()
	defer amx.Disable()

	for i := t.rowStart; i < t.rowEnd; i += Tile {
		iEnd := min(i+Tile, t.rowEnd)
		PackPanel(t.a, t.panel, i, iEnd, t.k, t.aStride)

		for j := 0; j < t.n; j += Tile {
			jEnd := min(j+Tile, t.n)
			if iEnd-i == Tile && jEnd-j == Tile {
				microKernel16x16(
					t.panel,
					t.b[j:],
					t.c[i*t.cStride+j:],
					t.k, t.bStride, t.cStride,
				)
			} else {
				t.edgeTile(i, iEnd, j, jEnd)
			}
		}
	}
}

// edgeTile handles output tiles short of Tile in either dimension with
// a per-element loop. It reads the same packed panel as the kernel but
// writes only the valid sub-rectangle, accumulating into the
// pre-zeroed output.
func (t *task) edgeTile(i, iEnd, j, jEnd int) {
	rows := iEnd - i
	cols := jEnd - j
	for ii := 0; ii < rows; ii++ {
		crow := t.c[(i+ii)*t.cStride+j:]
		for kk := 0; kk < t.k; kk++ {
			av := t.panel[kk*Tile+ii]
			brow := t.b[kk*t.bStride+j:]
			for jj := 0; jj < cols; jj++ {
				crow[jj] += av * brow[jj]
			}
		}
	}
}

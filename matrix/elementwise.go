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

package matrix

// Element-wise operations over the logical (unpadded) shape. Each
// returns a freshly allocated result.

// Transpose returns m transposed.
func Transpose(m *Matrix) (*Matrix, error) {
	r, err := NewZeros(m.cols, m.rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.strd:]
		for j := 0; j < m.cols; j++ {
			r.data[j*r.strd+i] = row[j]
		}
	}
	return r, nil
}

// Add returns a + b. Shapes must match exactly.
func Add(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrShapeMismatch
	}
	c, err := NewZeros(a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		ar := a.data[i*a.strd:]
		br := b.data[i*b.strd:]
		cr := c.data[i*c.strd:]
		for j := 0; j < a.cols; j++ {
			cr[j] = ar[j] + br[j]
		}
	}
	return c, nil
}

// Sub returns a - b. Shapes must match exactly.
func Sub(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrShapeMismatch
	}
	c, err := NewZeros(a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		ar := a.data[i*a.strd:]
		br := b.data[i*b.strd:]
		cr := c.data[i*c.strd:]
		for j := 0; j < a.cols; j++ {
			cr[j] = ar[j] - br[j]
		}
	}
	return c, nil
}

// Scale returns m with every element multiplied by s.
func Scale(m *Matrix, s float32) (*Matrix, error) {
	r, err := NewZeros(m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		src := m.data[i*m.strd:]
		dst := r.data[i*r.strd:]
		for j := 0; j < m.cols; j++ {
			dst[j] = src[j] * s
		}
	}
	return r, nil
}

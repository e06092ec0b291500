/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/gomix/sample"
	"gonum.org/v1/gonum/floats"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error if len is negative.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	if len < 0 {
		return nil, fmt.Errorf("vector length should be non-negative, got %d", len)
	}
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	return append(Vector(nil), v...)
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// CheckBound checks whether the absolute values of all vector elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (v Vector) CheckBound(bound float64) error {
	for _, c := range v {
		if !(math.Abs(c) < bound) {
			return fmt.Errorf("all coordinates of a vector should be smaller than bound")
		}
	}

	return nil
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vectors should be of same length")
	}

	return floats.AddTo(make(Vector, len(v)), v, other), nil
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vectors should be of same length")
	}

	return floats.SubTo(make(Vector, len(v)), v, other), nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// Sum returns the sum of the elements of v.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := make([]string, len(v))
	for i, yi := range v {
		vStr[i] = strconv.FormatFloat(yi, 'g', -1, 64)
	}
	return strings.Join(vStr, " ")
}

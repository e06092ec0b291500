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

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary holds descriptive statistics of a vector.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Summary computes descriptive statistics of v.
// The standard deviation is the population one.
// It returns an error if v is empty.
func (v Vector) Summary() (Summary, error) {
	s := Summary{Count: len(v)}
	in := stats.Float64Data(v)

	var err error
	if s.Mean, err = in.Mean(); err != nil {
		return s, errors.Wrap(err, "cannot compute mean")
	}
	if s.StdDev, err = in.StandardDeviation(); err != nil {
		return s, errors.Wrap(err, "cannot compute standard deviation")
	}
	if s.Min, err = in.Min(); err != nil {
		return s, errors.Wrap(err, "cannot compute minimum")
	}
	if s.Median, err = in.Median(); err != nil {
		return s, errors.Wrap(err, "cannot compute median")
	}
	if s.Max, err = in.Max(); err != nil {
		return s, errors.Wrap(err, "cannot compute maximum")
	}

	return s, nil
}

// Frequencies returns the proportion of each index 0, ..., k-1
// in components. An empty components yields a zero vector.
// It returns an error if k < 1 or an index is out of range.
func Frequencies(components []int, k int) (Vector, error) {
	if k < 1 {
		return nil, fmt.Errorf("number of components should be positive, got %d", k)
	}
	freq := make(Vector, k)
	for i, c := range components {
		if c < 0 || c >= k {
			return nil, fmt.Errorf("component %d at position %d is out of range [0, %d)", c, i, k)
		}
		freq[c]++
	}
	if len(components) == 0 {
		return freq, nil
	}

	return freq.MulScalar(1 / float64(len(components))), nil
}

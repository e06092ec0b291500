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

package sample

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// WeightTolerance is the maximal allowed deviation of the sum
// of the weights from 1.
const WeightTolerance = 1e-8

// Categorical samples indices from a finite set {0, ..., k-1},
// where index i is chosen with probability weights[i].
type Categorical struct {
	dist distuv.Categorical
}

// NewCategorical returns an instance of Categorical sampler drawing
// from src. A nil src is replaced by a Fresh source. Weights must be
// non-negative and sum to 1, otherwise InvalidMixtureSpec is returned.
func NewCategorical(weights []float64, src *Source) (*Categorical, error) {
	if err := checkWeights(weights); err != nil {
		return nil, err
	}
	return newCategorical(weights, orFresh(src)), nil
}

func newCategorical(weights []float64, src *Source) *Categorical {
	return &Categorical{
		dist: distuv.NewCategorical(weights, src),
	}
}

// Index samples an index.
func (c *Categorical) Index() int {
	return int(c.dist.Rand())
}

// Sample samples an index and returns it as a float64.
func (c *Categorical) Sample() float64 {
	return c.dist.Rand()
}

// checkWeights checks that weights form a probability vector.
func checkWeights(weights []float64) error {
	if len(weights) == 0 {
		return errors.Wrap(InvalidMixtureSpec, "no weights")
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return errors.Wrapf(InvalidMixtureSpec, "weight %d is %v", i, w)
		}
	}
	if sum := floats.Sum(weights); math.Abs(sum-1) > WeightTolerance {
		return errors.Wrapf(InvalidMixtureSpec, "weights sum to %v", sum)
	}
	return nil
}

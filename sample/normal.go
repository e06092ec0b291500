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
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal samples random values from the Normal (Gaussian)
// probability distribution with the given mean and standard deviation.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler drawing from src.
// A nil src is replaced by a Fresh source. It returns an error if
// mean is not finite or sigma is not a finite positive number.
func NewNormal(mean, sigma float64, src *Source) (*Normal, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, errors.Errorf("mean %v is not finite", mean)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, errors.Errorf("standard deviation %v is not positive and finite", sigma)
	}
	return newNormal(mean, sigma, orFresh(src)), nil
}

func newNormal(mean, sigma float64, src *Source) *Normal {
	return &Normal{
		dist: distuv.Normal{Mu: mean, Sigma: sigma, Src: src},
	}
}

// Sample samples a value from the normal distribution.
func (c *Normal) Sample() float64 {
	return c.dist.Rand()
}

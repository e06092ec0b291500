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

// NormalMixture is a finite mixture of one-dimensional normal
// components. Component i has weight weights[i], mean means[i]
// and standard deviation stds[i]. A NormalMixture is immutable.
type NormalMixture struct {
	weights []float64
	means   []float64
	stds    []float64
}

// MixtureBatch holds n draws from a NormalMixture. Components[i]
// is the index of the component that produced Samples[i].
type MixtureBatch struct {
	Samples    []float64
	Components []int
}

// NewNormalMixture returns a NormalMixture with the given parameters.
// The slices are copied. It returns an error wrapping
// InvalidMixtureSpec if the slices differ in length, are empty, the
// weights are not a probability vector, a mean is not finite,
// or a standard deviation is not a finite positive number.
func NewNormalMixture(weights, means, stds []float64) (*NormalMixture, error) {
	if len(weights) != len(means) || len(weights) != len(stds) {
		return nil, errors.Wrapf(InvalidMixtureSpec,
			"got %d weights, %d means and %d standard deviations",
			len(weights), len(means), len(stds))
	}
	if err := checkWeights(weights); err != nil {
		return nil, err
	}
	for i := range means {
		if math.IsNaN(means[i]) || math.IsInf(means[i], 0) {
			return nil, errors.Wrapf(InvalidMixtureSpec, "mean %d is %v", i, means[i])
		}
		if !(stds[i] > 0) || math.IsInf(stds[i], 0) {
			return nil, errors.Wrapf(InvalidMixtureSpec, "standard deviation %d is %v", i, stds[i])
		}
	}

	return &NormalMixture{
		weights: copyOf(weights),
		means:   copyOf(means),
		stds:    copyOf(stds),
	}, nil
}

// SampleNormalMixture draws n samples from the mixture given by
// weights, means and stds. It is a shorthand for NewNormalMixture
// followed by Sample.
func SampleNormalMixture(n int, weights, means, stds []float64, src *Source) (*MixtureBatch, error) {
	m, err := NewNormalMixture(weights, means, stds)
	if err != nil {
		return nil, err
	}
	return m.Sample(n, src)
}

// K returns the number of components.
func (m *NormalMixture) K() int {
	return len(m.weights)
}

// Weights returns a copy of the component weights.
func (m *NormalMixture) Weights() []float64 { return copyOf(m.weights) }

// Means returns a copy of the component means.
func (m *NormalMixture) Means() []float64 { return copyOf(m.means) }

// Stds returns a copy of the component standard deviations.
func (m *NormalMixture) Stds() []float64 { return copyOf(m.stds) }

// Sample draws n independent samples from the mixture using src.
// A nil src is replaced by a Fresh source.
//
// First all n component indices are drawn from the categorical
// distribution given by the weights, then for each index j a value
// is drawn from the normal component Components[j]. Both stages draw
// from src in this order, so a seeded src gives reproducible output.
// If n is negative, an error wrapping InvalidSampleCount is returned
// and src is not advanced.
func (m *NormalMixture) Sample(n int, src *Source) (*MixtureBatch, error) {
	if n < 0 {
		return nil, errors.Wrapf(InvalidSampleCount, "cannot draw %d samples", n)
	}
	b := &MixtureBatch{
		Samples:    make([]float64, n),
		Components: make([]int, n),
	}
	if n == 0 {
		return b, nil
	}

	src = orFresh(src)
	cat := newCategorical(m.weights, src)
	for i := range b.Components {
		b.Components[i] = cat.Index()
	}

	comps := m.normals(src)
	for i, c := range b.Components {
		b.Samples[i] = comps[c].Sample()
	}

	return b, nil
}

// Sampler returns a Sampler that draws one mixture value per call,
// choosing the component first and then drawing from it.
// A nil src is replaced by a Fresh source.
func (m *NormalMixture) Sampler(src *Source) Sampler {
	src = orFresh(src)
	return &mixtureSampler{
		cat:   newCategorical(m.weights, src),
		comps: m.normals(src),
	}
}

// Mean returns the mean of the mixture distribution.
func (m *NormalMixture) Mean() float64 {
	return floats.Dot(m.weights, m.means)
}

// Variance returns the variance of the mixture distribution.
func (m *NormalMixture) Variance() float64 {
	second := 0.0
	for i, w := range m.weights {
		second += w * (m.stds[i]*m.stds[i] + m.means[i]*m.means[i])
	}
	mean := m.Mean()
	return second - mean*mean
}

// Prob returns the probability density of the mixture at x.
func (m *NormalMixture) Prob(x float64) float64 {
	p := 0.0
	for i, w := range m.weights {
		p += w * distuv.Normal{Mu: m.means[i], Sigma: m.stds[i]}.Prob(x)
	}
	return p
}

// LogProb returns the natural logarithm of the probability density
// of the mixture at x.
func (m *NormalMixture) LogProb(x float64) float64 {
	terms := make([]float64, len(m.weights))
	for i, w := range m.weights {
		terms[i] = math.Log(w) + distuv.Normal{Mu: m.means[i], Sigma: m.stds[i]}.LogProb(x)
	}
	return floats.LogSumExp(terms)
}

func (m *NormalMixture) normals(src *Source) []*Normal {
	comps := make([]*Normal, len(m.means))
	for i := range comps {
		comps[i] = newNormal(m.means[i], m.stds[i], src)
	}
	return comps
}

type mixtureSampler struct {
	cat   *Categorical
	comps []*Normal
}

func (s *mixtureSampler) Sample() float64 {
	return s.comps[s.cat.Index()].Sample()
}

func copyOf(v []float64) []float64 {
	return append([]float64(nil), v...)
}

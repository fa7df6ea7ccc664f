// Copyright 2024 survsets Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomGenerator is the seeded random generator for survsets. Every sampling
// routine takes one of these instead of touching global random state, so two
// generators with distinct seeds never interfere.
type RandomGenerator struct {
	*rand.Rand
}

// NewRandomGenerator creates a RandomGenerator.
func NewRandomGenerator(seed uint64) RandomGenerator {
	return RandomGenerator{rand.New(rand.NewSource(seed))}
}

// UniformVector64 makes a vec filled with uniform random floats.
func (rng RandomGenerator) UniformVector64(size int, low, high float64) []float64 {
	ret := make([]float64, size)
	scale := high - low
	for i := 0; i < len(ret); i++ {
		ret[i] = rng.Float64()*scale + low
	}
	return ret
}

// UniformMatrix64 makes a matrix filled with uniform random floats.
func (rng RandomGenerator) UniformMatrix64(row, col int, low, high float64) [][]float64 {
	ret := make([][]float64, row)
	for i := range ret {
		ret[i] = rng.UniformVector64(col, low, high)
	}
	return ret
}

// NormalVector64 makes a vec filled with normal random floats.
func (rng RandomGenerator) NormalVector64(size int, mean, stdDev float64) []float64 {
	ret := make([]float64, size)
	for i := 0; i < len(ret); i++ {
		ret[i] = rng.NormFloat64()*stdDev + mean
	}
	return ret
}

// Exponential draws a single value from an exponential distribution with the
// given mean.
func (rng RandomGenerator) Exponential(mean float64) float64 {
	return distuv.Exponential{Rate: 1 / mean, Src: rng.Rand}.Rand()
}

// ExponentialVector makes a vec of exponential random floats with the given mean.
func (rng RandomGenerator) ExponentialVector(size int, mean float64) []float64 {
	d := distuv.Exponential{Rate: 1 / mean, Src: rng.Rand}
	ret := make([]float64, size)
	for i := 0; i < len(ret); i++ {
		ret[i] = d.Rand()
	}
	return ret
}

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

package dataset

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/juju/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/survlab/survsets/base"
)

// Simulation methods supported by SimulatedData.Generate.
const (
	MethodLinear   = "linear"
	MethodGaussian = "gaussian"
)

// GaussianConfig tunes the gaussian risk surface: the risk score peaks where
// the first two covariates equal Center and decays with radius Radius.
type GaussianConfig struct {
	Center float64
	Radius float64
}

// defaultGaussianConfig is used when Generate receives a nil config.
var defaultGaussianConfig = GaussianConfig{Center: 0.0, Radius: 0.5}

// SimulatedData generates synthetic survival records from a hazard-ratio
// model: covariates determine a risk score, the risk score scales an
// exponential baseline hazard, and times past EndTime are censored.
//
// The construction follows Austin, "Generating survival times to simulate Cox
// proportional hazards models with time-varying covariates", Statistics in
// Medicine 31(29), 2012.
type SimulatedData struct {
	// HRRatio is the hazard ratio between the maximal and the minimal risk
	// score, lambda_max.
	HRRatio float64
	// AverageDeath is the mean of the exponential baseline, in months.
	AverageDeath float64
	// EndTime is the end-of-study censoring time, in months.
	EndTime float64
	// NumFeatures is the size of the observation vector.
	NumFeatures int
	// NumVar is the number of covariates the risk score depends on.
	NumVar int
}

// Sample is a batch of generated survival records. The three fields are
// row-aligned by subject: X[i] is the feature vector, E[i] the event indicator
// and T[i] the observed time of subject i.
type Sample struct {
	X [][]float64
	E []int
	T []float64
}

// NewSimulatedData creates a generator. Parameters are validated eagerly, so
// Generate never fails on the construction-time ones.
func NewSimulatedData(hrRatio, averageDeath, endTime float64, numFeatures, numVar int) (*SimulatedData, error) {
	if hrRatio <= 0 {
		return nil, errors.NotValidf("hazard ratio %v", hrRatio)
	}
	if averageDeath <= 0 {
		return nil, errors.NotValidf("average death time %v", averageDeath)
	}
	if endTime <= 0 {
		return nil, errors.NotValidf("end time %v", endTime)
	}
	if numFeatures <= 0 {
		return nil, errors.NotValidf("number of features %d", numFeatures)
	}
	if numVar <= 0 || numVar > numFeatures {
		return nil, errors.NotValidf("number of variables %d with %d features", numVar, numFeatures)
	}
	return &SimulatedData{
		HRRatio:      hrRatio,
		AverageDeath: averageDeath,
		EndTime:      endTime,
		NumFeatures:  numFeatures,
		NumVar:       numVar,
	}, nil
}

// Generate produces n survival records. The run is deterministic: the same
// parameters and seed always return a bit-identical sample. A nil cfg uses the
// default gaussian configuration; cfg is ignored by the linear method.
func (s *SimulatedData) Generate(n int, method string, cfg *GaussianConfig, seed uint64) (*Sample, error) {
	if n <= 0 {
		return nil, errors.NotValidf("sample size %d", n)
	}
	switch method {
	case MethodLinear:
	case MethodGaussian:
		if s.NumFeatures < 2 {
			return nil, errors.NotValidf("gaussian method with %d features", s.NumFeatures)
		}
		if cfg == nil {
			cfg = &defaultGaussianConfig
		} else if cfg.Radius <= 0 {
			return nil, errors.NotValidf("gaussian radius %v", cfg.Radius)
		}
	default:
		return nil, errors.NotSupportedf("method %s", method)
	}

	rng := base.NewRandomGenerator(seed)
	x := rng.UniformMatrix64(n, s.NumFeatures, -1, 1)

	risk := make([]float64, n)
	switch method {
	case MethodLinear:
		weights := s.linearWeights()
		for i := range risk {
			risk[i] = linearRisk(x[i], weights)
		}
	case MethodGaussian:
		for i := range risk {
			risk[i] = s.gaussianRisk(x[i], cfg)
		}
	}
	// Center the risk scores so the population dies at the baseline rate.
	meanRisk := stat.Mean(risk, nil)

	sample := &Sample{
		X: x,
		E: make([]int, n),
		T: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		deathTime := rng.Exponential(s.AverageDeath) / math.Exp(risk[i]-meanRisk)
		sample.T[i], sample.E[i] = censor(deathTime, s.EndTime)
	}
	return sample, nil
}

// linearWeights builds the risk weights of the linear method: the first NumVar
// covariates get weights proportional to 1..NumVar, scaled so the extreme risk
// scores over [-1, 1] covariates differ by ln(HRRatio). A subject at the
// maximal risk score then experiences HRRatio times the hazard of a subject at
// the minimal one.
func (s *SimulatedData) linearWeights() []float64 {
	total := float64(s.NumVar*(s.NumVar+1)) / 2
	scale := math.Log(s.HRRatio) / 2 / total
	weights := make([]float64, s.NumVar)
	for i := range weights {
		weights[i] = float64(i+1) * scale
	}
	return weights
}

func linearRisk(x, weights []float64) float64 {
	var risk float64
	for i, w := range weights {
		risk += w * x[i]
	}
	return risk
}

// gaussianRisk scores a subject by a gaussian bump over the first two
// covariates: ln(HRRatio) at the center, decaying towards zero, so the
// extreme-hazard ratio is again HRRatio.
func (s *SimulatedData) gaussianRisk(x []float64, cfg *GaussianConfig) float64 {
	z := (x[0]-cfg.Center)*(x[0]-cfg.Center) + (x[1]-cfg.Center)*(x[1]-cfg.Center)
	return math.Log(s.HRRatio) * math.Exp(-z/(2*cfg.Radius*cfg.Radius))
}

// censor caps a true death time at the end-of-study time. Equality counts as
// an observed event: the indicator is 0 only when the death time strictly
// exceeds endTime.
func censor(deathTime, endTime float64) (t float64, e int) {
	if deathTime > endTime {
		return endTime, 0
	}
	return deathTime, 1
}

// LoadSimulatedData generates a simulated survival dataset as a frame with
// columns x_0 .. x_{numFeatures-1}, e and t.
func LoadSimulatedData(hrRatio float64, n, numFeatures, numVar int,
	averageDeath, endTime float64, method string, cfg *GaussianConfig, seed uint64) (dataframe.DataFrame, error) {
	generator, err := NewSimulatedData(hrRatio, averageDeath, endTime, numFeatures, numVar)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	sample, err := generator.Generate(n, method, cfg, seed)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	columns := make([]series.Series, 0, numFeatures+2)
	for j := 0; j < numFeatures; j++ {
		column := make([]float64, n)
		for i := 0; i < n; i++ {
			column[i] = sample.X[i][j]
		}
		columns = append(columns, series.New(column, series.Float, fmt.Sprintf("x_%d", j)))
	}
	columns = append(columns,
		series.New(sample.E, series.Int, DefaultEventCol),
		series.New(sample.T, series.Float, DefaultTimeCol))
	df := dataframe.New(columns...)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Trace(df.Err)
	}
	return df, nil
}

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
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/juju/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/survlab/survsets/base"
	"github.com/survlab/survsets/base/log"
)

// defaultSplitSeed seeds the shuffle of LoadDataSplit when LoadOptions.Seed is
// left zero.
const defaultSplitSeed = 64

// LoadOptions configures LoadData and LoadDataSplit.
type LoadOptions struct {
	// TimeCol is the name of the observed time column. Required.
	TimeCol string
	// EventCol is the name of the 0/1 event indicator column. Required.
	EventCol string
	// ExcludedCols are dropped from the table before the feature partition.
	// Naming an absent column is an error.
	ExcludedCols []string
	// Normalize rescales every feature column as (x - mean(x)) / (max(x) - min(x)).
	// This is mean-centered min-max scaling, not z-score standardization; the
	// formula is a convention of the source datasets and is kept verbatim.
	// A constant column (max == min) rescales to all zeros.
	Normalize bool
	// Seed seeds the shuffle of LoadDataSplit. Zero falls back to 64.
	Seed uint64
}

// LoadData reads a survival dataset from a CSV file. The returned frame holds
// the feature columns in their original order followed by the time and event
// columns.
func LoadData(path string, opts LoadOptions) (dataframe.DataFrame, error) {
	df, features, err := prepareData(path, opts)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	log.Logger().Debug("load dataset",
		zap.String("path", path),
		zap.Int("rows", df.Nrow()),
		zap.Int("features", len(features)))
	return df, nil
}

// LoadDataSplit reads a survival dataset from a CSV file and shuffle-splits it
// into a train and a test frame. The train frame takes floor(splitRatio * rows)
// rows; the two frames partition the input. The split is reproducible for a
// fixed seed.
func LoadDataSplit(path string, splitRatio float64, opts LoadOptions) (train, test dataframe.DataFrame, err error) {
	if splitRatio <= 0 || splitRatio >= 1 {
		return dataframe.DataFrame{}, dataframe.DataFrame{},
			errors.NotValidf("split ratio %v", splitRatio)
	}
	df, features, err := prepareData(path, opts)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, errors.Trace(err)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = defaultSplitSeed
	}
	rng := base.NewRandomGenerator(seed)
	perm := rng.Perm(df.Nrow())
	trainSize := int(splitRatio * float64(df.Nrow()))
	train = df.Subset(perm[:trainSize])
	test = df.Subset(perm[trainSize:])
	if train.Err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, errors.Trace(train.Err)
	}
	if test.Err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, errors.Trace(test.Err)
	}
	log.Logger().Debug("load dataset with split",
		zap.String("path", path),
		zap.Int("train_rows", train.Nrow()),
		zap.Int("test_rows", test.Nrow()),
		zap.Int("features", len(features)))
	return train, test, nil
}

// prepareData reads the file, partitions its columns and applies optional
// normalization.
func prepareData(path string, opts LoadOptions) (dataframe.DataFrame, []string, error) {
	df, err := readCSVFile(path)
	if err != nil {
		return dataframe.DataFrame{}, nil, errors.Trace(err)
	}
	features, err := partitionColumns(df, opts.TimeCol, opts.EventCol, opts.ExcludedCols)
	if err != nil {
		return dataframe.DataFrame{}, nil, errors.Trace(err)
	}
	df = df.Select(append(append([]string{}, features...), opts.TimeCol, opts.EventCol))
	if df.Err != nil {
		return dataframe.DataFrame{}, nil, errors.Trace(df.Err)
	}
	if opts.Normalize {
		df = normalizeColumns(df, features)
		if df.Err != nil {
			return dataframe.DataFrame{}, nil, errors.Trace(df.Err)
		}
	}
	return df, features, nil
}

// normalizeColumns rescales the named columns as (x - mean(x)) / (max(x) - min(x)).
// Constant columns become all zeros.
func normalizeColumns(df dataframe.DataFrame, cols []string) dataframe.DataFrame {
	for _, col := range cols {
		values := df.Col(col).Float()
		mean := stat.Mean(values, nil)
		span := floats.Max(values) - floats.Min(values)
		scaled := make([]float64, len(values))
		if span > 0 {
			for i, v := range values {
				scaled[i] = (v - mean) / span
			}
		}
		df = df.Mutate(series.New(scaled, series.Float, col))
		if df.Err != nil {
			return df
		}
	}
	return df
}

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
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/juju/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/survlab/survsets/base/log"
)

// Stats are descriptive statistics of a survival table.
type Stats struct {
	Rows       int
	Events     int
	EventRatio float64
	MinTime    float64
	MaxTime    float64
	MeanTime   float64
	MedianTime float64
}

// SurvivalStats computes descriptive statistics of a survival table and logs
// a summary.
func SurvivalStats(df dataframe.DataFrame, tCol, eCol string) (Stats, error) {
	if err := checkColumns(df, tCol, eCol); err != nil {
		return Stats{}, errors.Trace(err)
	}
	times := df.Col(tCol).Float()
	events := df.Col(eCol).Float()
	stats := Stats{
		Rows:    df.Nrow(),
		MinTime: floats.Min(times),
		MaxTime: floats.Max(times),
	}
	for _, e := range events {
		if e != 0 {
			stats.Events++
		}
	}
	stats.EventRatio = float64(stats.Events) / float64(stats.Rows)
	stats.MeanTime = stat.Mean(times, nil)
	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)
	stats.MedianTime = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	log.Logger().Info("survival statistics",
		zap.Int("rows", stats.Rows),
		zap.Int("events", stats.Events),
		zap.Float64("event_ratio", stats.EventRatio),
		zap.Float64("min_time", stats.MinTime),
		zap.Float64("max_time", stats.MaxTime))
	return stats, nil
}

// survivalLabels encodes observed times and event indicators into a single
// label vector: the time itself for an observed event, its negation for a
// censored record.
func survivalLabels(df dataframe.DataFrame, tCol, eCol string) []float64 {
	times := df.Col(tCol).Float()
	events := df.Col(eCol).Float()
	labels := make([]float64, len(times))
	for i := range labels {
		if events[i] != 0 {
			labels[i] = times[i]
		} else {
			labels[i] = -times[i]
		}
	}
	return labels
}

// SurvivalLabel replaces the time and event columns of a survival table with
// a single label column Y holding the sign-encoded observed time: positive for
// events, negative for censored records.
func SurvivalLabel(df dataframe.DataFrame, tCol, eCol string) (dataframe.DataFrame, error) {
	features, err := partitionColumns(df, tCol, eCol, nil)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	labels := survivalLabels(df, tCol, eCol)
	labeled := df.Select(features).Mutate(series.New(labels, series.Float, "Y"))
	if labeled.Err != nil {
		return dataframe.DataFrame{}, errors.Trace(labeled.Err)
	}
	return labeled, nil
}

// SurvivalMatrix converts a survival table into a dense feature matrix and an
// aligned sign-encoded label vector, the form numeric training code consumes.
func SurvivalMatrix(df dataframe.DataFrame, tCol, eCol string) (*mat.Dense, []float64, error) {
	features, err := partitionColumns(df, tCol, eCol, nil)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	rows := df.Nrow()
	matrix := mat.NewDense(rows, len(features), nil)
	for j, name := range features {
		matrix.SetCol(j, df.Col(name).Float())
	}
	return matrix, survivalLabels(df, tCol, eCol), nil
}

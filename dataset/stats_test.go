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
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFrame() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"age", "bmi", "t", "e"},
		{"50", "22.5", "10", "1"},
		{"60", "25.0", "5", "0"},
		{"70", "27.5", "20", "1"},
	})
}

func TestSurvivalStats(t *testing.T) {
	stats, err := SurvivalStats(newStatsFrame(), "t", "e")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 2, stats.Events)
	assert.InDelta(t, 2.0/3.0, stats.EventRatio, 1e-9)
	assert.Equal(t, 5.0, stats.MinTime)
	assert.Equal(t, 20.0, stats.MaxTime)
	assert.InDelta(t, 35.0/3.0, stats.MeanTime, 1e-9)
	assert.Equal(t, 10.0, stats.MedianTime)
}

func TestSurvivalStats_ColumnNotFound(t *testing.T) {
	_, err := SurvivalStats(newStatsFrame(), "time", "e")
	assert.True(t, errors.IsNotFound(err))
}

func TestSurvivalLabel(t *testing.T) {
	labeled, err := SurvivalLabel(newStatsFrame(), "t", "e")
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "bmi", "Y"}, labeled.Names())
	// censored records carry negated times
	assert.Equal(t, []float64{10, -5, 20}, labeled.Col("Y").Float())
}

func TestSurvivalMatrix(t *testing.T) {
	matrix, labels, err := SurvivalMatrix(newStatsFrame(), "t", "e")
	require.NoError(t, err)
	rows, cols := matrix.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 50.0, matrix.At(0, 0))
	assert.Equal(t, 27.5, matrix.At(2, 1))
	assert.Equal(t, []float64{10, -5, 20}, labels)
}

func TestSurvivalMatrix_ColumnNotFound(t *testing.T) {
	_, _, err := SurvivalMatrix(newStatsFrame(), "t", "event")
	assert.True(t, errors.IsNotFound(err))
}

func TestSurvivalStatsOnSimulatedData(t *testing.T) {
	df, err := LoadSimulatedData(2000, 500, 10, 2, 5, 15, MethodLinear, nil, 42)
	require.NoError(t, err)
	stats, err := SurvivalStats(df, DefaultTimeCol, DefaultEventCol)
	require.NoError(t, err)
	assert.Equal(t, 500, stats.Rows)
	assert.False(t, stats.MaxTime > 15)
	assert.False(t, stats.MinTime < 0)
	assert.True(t, stats.EventRatio > 0.5)
}

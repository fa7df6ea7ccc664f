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

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const ratioEpsilon = 1e-4

func TestLoadMetabric(t *testing.T) {
	df, err := LoadMetabric()
	require.NoError(t, err)
	assert.Equal(t, 1903, df.Nrow())
	assert.Equal(t, 11, len(df.Names()))
	assert.Contains(t, df.Names(), DefaultTimeCol)
	assert.Contains(t, df.Names(), DefaultEventCol)
	events := df.Col(DefaultEventCol).Float()
	assert.InDelta(t, 0.5796, stat.Mean(events, nil), ratioEpsilon)
	times := df.Col(DefaultTimeCol).Float()
	assert.Equal(t, 1.0, floats.Min(times))
	assert.Equal(t, 356.0, floats.Max(times))
}

func TestLoadMetabricSplits(t *testing.T) {
	train, err := LoadMetabricTrain()
	require.NoError(t, err)
	test, err := LoadMetabricTest()
	require.NoError(t, err)
	assert.Equal(t, 1903, train.Nrow()+test.Nrow())
	assert.Equal(t, train.Names(), test.Names())
}

func TestLoadWhas(t *testing.T) {
	df, err := LoadWhas()
	require.NoError(t, err)
	assert.Equal(t, 1638, df.Nrow())
	assert.Equal(t, 7, len(df.Names()))
	events := df.Col(DefaultEventCol).Float()
	assert.InDelta(t, 0.4212, stat.Mean(events, nil), ratioEpsilon)
	times := df.Col(DefaultTimeCol).Float()
	assert.Equal(t, 1.0, floats.Min(times))
	assert.Equal(t, 67.0, floats.Max(times))
}

func TestLoadWhasSplits(t *testing.T) {
	train, err := LoadWhasTrain()
	require.NoError(t, err)
	test, err := LoadWhasTest()
	require.NoError(t, err)
	assert.Equal(t, 1638, train.Nrow()+test.Nrow())
	assert.Equal(t, train.Names(), test.Names())
}

func TestLoadBuiltinNotFound(t *testing.T) {
	_, err := loadBuiltin("unknown.csv")
	assert.True(t, errors.IsNotFound(err))
}

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
	"bytes"
	"embed"

	"github.com/go-gota/gota/dataframe"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/survlab/survsets/base/log"
)

//go:embed src/*.csv
var builtinFS embed.FS

// loadBuiltin reads a bundled CSV resource into a frame.
func loadBuiltin(name string) (dataframe.DataFrame, error) {
	data, err := builtinFS.ReadFile("src/" + name)
	if err != nil {
		return dataframe.DataFrame{}, errors.NotFoundf("dataset %s", name)
	}
	df := dataframe.ReadCSV(bytes.NewReader(data))
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Annotatef(df.Err, "parse %s", name)
	}
	log.Logger().Debug("load built-in dataset",
		zap.String("name", name), zap.Int("rows", df.Nrow()))
	return df, nil
}

// concatBuiltin loads a train/test pair and row-binds the two splits. Frames
// carry no row index, so reindexing the combined table is implicit.
func concatBuiltin(trainName, testName string) (dataframe.DataFrame, error) {
	train, err := loadBuiltin(trainName)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	test, err := loadBuiltin(testName)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	combined := train.RBind(test)
	if combined.Err != nil {
		return dataframe.DataFrame{}, errors.Trace(combined.Err)
	}
	return combined, nil
}

// LoadMetabricTrain loads the training split of METABRIC.
//
// See LoadMetabric for more details.
func LoadMetabricTrain() (dataframe.DataFrame, error) {
	return loadBuiltin("metabric_train.csv")
}

// LoadMetabricTest loads the test split of METABRIC.
//
// See LoadMetabric for more details.
func LoadMetabricTest() (dataframe.DataFrame, error) {
	return loadBuiltin("metabric_test.csv")
}

// LoadMetabric loads the METABRIC dataset.
//
// The Molecular Taxonomy of Breast Cancer International Consortium (METABRIC)
// investigates the effect of gene and protein expression profiles on breast
// cancer survival. 1903 rows, 9 feature columns plus event and time, 57.96%
// event ratio, times between 1 and 356 months.
func LoadMetabric() (dataframe.DataFrame, error) {
	return concatBuiltin("metabric_train.csv", "metabric_test.csv")
}

// LoadWhasTrain loads the training split of WHAS.
//
// See LoadWhas for more details.
func LoadWhasTrain() (dataframe.DataFrame, error) {
	return loadBuiltin("whas_train.csv")
}

// LoadWhasTest loads the test split of WHAS.
//
// See LoadWhas for more details.
func LoadWhasTest() (dataframe.DataFrame, error) {
	return loadBuiltin("whas_test.csv")
}

// LoadWhas loads the WHAS dataset.
//
// The Worcester Heart Attack Study (WHAS) studies the survival of acute
// myocardial infarction. 1638 rows, 5 feature columns plus event and time,
// 42.12% event ratio, times between 1 and 67 months.
func LoadWhas() (dataframe.DataFrame, error) {
	return concatBuiltin("whas_train.csv", "whas_test.csv")
}

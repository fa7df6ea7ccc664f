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

// Package dataset loads survival-analysis datasets: the bundled METABRIC and
// WHAS tables, simulated survival data from a hazard-ratio model, and arbitrary
// CSV files with optional normalization and train/test splitting.
//
// Every table is a gota dataframe whose rows are subjects. Survival tables
// carry a non-negative observed time column (months) and a 0/1 event column:
// 1 means the event was observed, 0 means the record was censored.
package dataset

import (
	"bufio"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-gota/gota/dataframe"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Column names used by the bundled datasets and the simulator.
const (
	DefaultTimeCol  = "t"
	DefaultEventCol = "e"
)

// checkColumns fails with a not-found error on the first column absent from
// the frame.
func checkColumns(df dataframe.DataFrame, cols ...string) error {
	names := mapset.NewSet(df.Names()...)
	for _, col := range cols {
		if !names.Contains(col) {
			return errors.NotFoundf("column %s", col)
		}
	}
	return nil
}

// partitionColumns splits the frame's columns into features and targets. The
// feature list preserves the input column order and omits the time column, the
// event column and the excluded columns.
func partitionColumns(df dataframe.DataFrame, tCol, eCol string, excluded []string) ([]string, error) {
	if err := checkColumns(df, append([]string{tCol, eCol}, excluded...)...); err != nil {
		return nil, errors.Trace(err)
	}
	dropped := mapset.NewSet(append([]string{tCol, eCol}, excluded...)...)
	features := lo.Filter(df.Names(), func(name string, _ int) bool {
		return !dropped.Contains(name)
	})
	return features, nil
}

// readCSVFile reads a CSV file into a frame.
func readCSVFile(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dataframe.DataFrame{}, errors.NotFoundf("file %s", path)
		}
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	defer file.Close()
	df := dataframe.ReadCSV(bufio.NewReader(file))
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Annotatef(df.Err, "parse %s", path)
	}
	return df, nil
}

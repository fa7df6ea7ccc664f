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

package log

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDevelopmentLogger(t *testing.T) {
	temp, err := os.MkdirTemp("", "test_survsets")
	assert.NoError(t, err)
	// set existed path
	SetDevelopmentLogger(temp + "/survsets.log")
	_, err = os.Stat(temp + "/survsets.log")
	assert.NoError(t, err)
	// set non-existed path
	SetDevelopmentLogger(temp + "/survsets/survsets.log")
	_, err = os.Stat(temp + "/survsets/survsets.log")
	assert.NoError(t, err)
	// permission denied
	assert.Panics(t, func() {
		SetDevelopmentLogger("/survsets.log")
	})
	assert.Panics(t, func() {
		SetDevelopmentLogger("/survsets/survsets.log")
	})
}

func TestSetProductionLogger(t *testing.T) {
	temp, err := os.MkdirTemp("", "test_survsets")
	assert.NoError(t, err)
	// set existed path
	SetProductionLogger(temp + "/survsets.log")
	_, err = os.Stat(temp + "/survsets.log")
	assert.NoError(t, err)
	// set non-existed path
	SetProductionLogger(temp + "/survsets/survsets.log")
	_, err = os.Stat(temp + "/survsets/survsets.log")
	assert.NoError(t, err)
	// permission denied
	assert.Panics(t, func() {
		SetProductionLogger("/survsets.log")
	})
	assert.Panics(t, func() {
		SetProductionLogger("/survsets/survsets.log")
	})
}

func TestLogger(t *testing.T) {
	assert.NotNil(t, Logger())
	CloseLogger()
	assert.NotNil(t, Logger())
}

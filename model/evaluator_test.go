// Copyright 2024 lowrank Project Authors
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

package model

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowrank-io/lowrank/dataset"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, RatingFloor, Clamp(-1))
	assert.Equal(t, RatingFloor, Clamp(0.2))
	assert.Equal(t, 3.0, Clamp(3))
	assert.Equal(t, RatingCeil, Clamp(6))
}

func TestEvaluate(t *testing.T) {
	// rank-1 factors with known predictions: u0*i0 = 1, u1*i1 = 6 -> 5
	mf := &FunkMF{
		UserFactor: [][]float64{{1}, {2}},
		ItemFactor: [][]float64{{1}, {3}},
	}
	matrix := [][]float64{{2, 0}, {0, 4}}
	test := []dataset.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	score, err := Evaluate(mf, test, matrix)
	require.NoError(t, err)
	// residuals are 2-1 = 1 and 4-5 = -1
	assert.Equal(t, 1.0, score.MSE)
	assert.Equal(t, 1.0, score.MAE)
}

func TestEvaluate_Duplicates(t *testing.T) {
	mf := &FunkMF{
		UserFactor: [][]float64{{1}},
		ItemFactor: [][]float64{{2}},
	}
	matrix := [][]float64{{4}}
	// a duplicated coordinate contributes twice
	test := []dataset.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 0}}
	score, err := Evaluate(mf, test, matrix)
	require.NoError(t, err)
	assert.Equal(t, 4.0, score.MSE)
	assert.Equal(t, 2.0, score.MAE)
}

func TestEvaluate_Empty(t *testing.T) {
	mf := &FunkMF{}
	_, err := Evaluate(mf, nil, nil)
	assert.True(t, errors.IsNotValid(err))
	_, err = Evaluate(mf, []dataset.Coordinate{}, nil)
	assert.True(t, errors.IsNotValid(err))
}

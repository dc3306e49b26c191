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

package dataset

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataset(t *testing.T) *Dataset {
	observations := []Observation{
		{UserId: 1, ItemId: 10, Rating: 5},
		{UserId: 1, ItemId: 20, Rating: 3},
		{UserId: 2, ItemId: 10, Rating: 4},
		{UserId: 2, ItemId: 30, Rating: 2},
		{UserId: 3, ItemId: 20, Rating: 1},
	}
	data, err := New(observations)
	require.NoError(t, err)
	return data
}

func TestSplit(t *testing.T) {
	data := newTestDataset(t)
	split, err := data.Split(0.8, 0)
	require.NoError(t, err)
	// cut at floor(0.8 * 5)
	assert.Equal(t, 4, len(split.Train))
	assert.Equal(t, 1, len(split.Test))
	// train and test are disjoint and exhaustive
	seen := make(map[Coordinate]int)
	for _, c := range split.Train {
		seen[c]++
	}
	for _, c := range split.Test {
		seen[c]++
	}
	assert.Equal(t, len(data.Coordinates), len(split.Train)+len(split.Test))
	for _, c := range data.Coordinates {
		assert.Equal(t, 1, seen[c])
	}
	// the dataset's own coordinate order is untouched
	assert.Equal(t, newTestDataset(t).Coordinates, data.Coordinates)
}

func TestSplit_TrainMatrix(t *testing.T) {
	data := newTestDataset(t)
	split, err := data.Split(0.6, 42)
	require.NoError(t, err)
	for _, c := range split.Train {
		assert.Equal(t, data.Matrix[c.Row][c.Col], split.TrainMatrix[c.Row][c.Col])
	}
	// every rating in this dataset is positive, so masked cells read zero
	for _, c := range split.Test {
		assert.Zero(t, split.TrainMatrix[c.Row][c.Col])
	}
	// a nonzero cell always belongs to a train coordinate
	trainSet := make(map[Coordinate]bool)
	for _, c := range split.Train {
		trainSet[c] = true
	}
	for row := range split.TrainMatrix {
		for col, value := range split.TrainMatrix[row] {
			if value != 0 {
				assert.True(t, trainSet[Coordinate{Row: int32(row), Col: int32(col)}])
			}
		}
	}
}

func TestSplit_Seeded(t *testing.T) {
	data := newTestDataset(t)
	a, err := data.Split(0.6, 7)
	require.NoError(t, err)
	b, err := data.Split(0.6, 7)
	require.NoError(t, err)
	assert.Equal(t, a.Train, b.Train)
	assert.Equal(t, a.Test, b.Test)
}

func TestSplit_Bounds(t *testing.T) {
	data := newTestDataset(t)
	// ratio 1 trains on everything, leaving nothing to test
	full, err := data.Split(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, len(full.Train))
	assert.Empty(t, full.Test)
	// ratio 0 is a legal degenerate split
	empty, err := data.Split(0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.Train)
	assert.Equal(t, 5, len(empty.Test))
	// out of range
	_, err = data.Split(-0.1, 0)
	assert.True(t, errors.IsNotValid(err))
	_, err = data.Split(1.1, 0)
	assert.True(t, errors.IsNotValid(err))
}

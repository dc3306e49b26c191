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
	"github.com/juju/errors"

	"github.com/lowrank-io/lowrank/base"
)

// Split partitions the observed coordinates into disjoint train and test sets.
// TrainMatrix holds the original ratings at the train coordinates and zero
// everywhere else, so test observations are indistinguishable from missing
// cells during training.
type Split struct {
	Train       []Coordinate
	Test        []Coordinate
	TrainMatrix [][]float64
}

// Split shuffles a copy of the coordinate list with a generator built from
// seed and cuts it at floor(ratio * count). The first part becomes the train
// set, the remainder the test set. ratio = 1 yields an empty test set (the
// evaluator rejects it); ratio = 0 yields an empty train set, which is a legal
// degenerate run leaving the factors at their initialization.
func (d *Dataset) Split(ratio float64, seed int64) (*Split, error) {
	if ratio < 0 || ratio > 1 {
		return nil, errors.NotValidf("split ratio %v outside [0,1]", ratio)
	}
	perm := make([]Coordinate, len(d.Coordinates))
	copy(perm, d.Coordinates)
	rng := base.NewRandomGenerator(seed)
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	cut := int(ratio * float64(len(perm)))
	split := &Split{
		Train:       perm[:cut],
		Test:        perm[cut:],
		TrainMatrix: NewMatrix(d.UserCount(), d.ItemCount()),
	}
	for _, c := range split.Train {
		split.TrainMatrix[c.Row][c.Col] = d.Matrix[c.Row][c.Col]
	}
	return split, nil
}

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
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
)

// Observation is a single raw rating record. The timestamp is carried from
// ingestion but unused by the pipeline.
type Observation struct {
	UserId    int
	ItemId    int
	Rating    float64
	Timestamp int64
}

// Coordinate locates an observed cell in the rating matrix.
type Coordinate struct {
	Row int32
	Col int32
}

// Dataset contains the dense rating matrix together with the coordinates of
// genuine observations. A zero cell and a missing cell are bit-identical in
// the matrix; Coordinates is the only record of observedness. Duplicate
// observations overwrite the cell but keep their coordinate entries.
type Dataset struct {
	UserIndexer *Indexer
	ItemIndexer *Indexer
	Matrix      [][]float64
	Coordinates []Coordinate
}

// BuildIndexers collects the distinct user and item ids from observations and
// returns an indexer for each.
func BuildIndexers(observations []Observation) (*Indexer, *Indexer) {
	userIds := mapset.NewSet[int]()
	itemIds := mapset.NewSet[int]()
	for _, o := range observations {
		userIds.Add(o.UserId)
		itemIds.Add(o.ItemId)
	}
	return NewIndexer(userIds), NewIndexer(itemIds)
}

// Build allocates the rating matrix and fills it from observations. An
// observation whose id is unknown to an indexer fails fast instead of
// corrupting indices; this only happens when Build is called with indexers
// built from different observations.
func Build(observations []Observation, userIndexer, itemIndexer *Indexer) (*Dataset, error) {
	d := &Dataset{
		UserIndexer: userIndexer,
		ItemIndexer: itemIndexer,
		Matrix:      NewMatrix(int(userIndexer.Len()), int(itemIndexer.Len())),
		Coordinates: make([]Coordinate, 0, len(observations)),
	}
	for _, o := range observations {
		row := userIndexer.ToIndex(o.UserId)
		if row == NotId {
			return nil, errors.NotFoundf("user id %d in user indexer", o.UserId)
		}
		col := itemIndexer.ToIndex(o.ItemId)
		if col == NotId {
			return nil, errors.NotFoundf("item id %d in item indexer", o.ItemId)
		}
		d.Matrix[row][col] = o.Rating
		d.Coordinates = append(d.Coordinates, Coordinate{Row: row, Col: col})
	}
	return d, nil
}

// New builds a dataset from raw observations. Rebuilding for a different set
// of observations means constructing a new Dataset value; no state is shared
// between datasets.
func New(observations []Observation) (*Dataset, error) {
	userIndexer, itemIndexer := BuildIndexers(observations)
	d, err := Build(observations, userIndexer, itemIndexer)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return d, nil
}

// Count returns the number of observations, duplicates included.
func (d *Dataset) Count() int {
	return len(d.Coordinates)
}

// UserCount returns the number of distinct users.
func (d *Dataset) UserCount() int {
	return int(d.UserIndexer.Len())
}

// ItemCount returns the number of distinct items.
func (d *Dataset) ItemCount() int {
	return int(d.ItemIndexer.Len())
}

// NewMatrix makes a zero-filled matrix.
func NewMatrix(row, col int) [][]float64 {
	ret := make([][]float64, row)
	for i := range ret {
		ret[i] = make([]float64, col)
	}
	return ret
}

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
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// NotId represents an id doesn't exist.
const NotId = int32(-1)

// Indexer manages the map between sparse external ids and dense indices. A
// sparse id is a user id or item id from the raw observations. The dense index
// is the internal row or column index used for matrix access. Indices follow
// the ascending order of the distinct ids, so the assignment is fully
// determined by the id set and independent of record order.
type Indexer struct {
	Indices map[int]int32 // sparse id -> dense index
	Ids     []int         // dense index -> sparse id
}

// NewIndexer creates an Indexer over a set of distinct ids.
func NewIndexer(ids mapset.Set[int]) *Indexer {
	sorted := ids.ToSlice()
	sort.Ints(sorted)
	indexer := &Indexer{
		Indices: make(map[int]int32, len(sorted)),
		Ids:     sorted,
	}
	for i, id := range sorted {
		indexer.Indices[id] = int32(i)
	}
	return indexer
}

// Len returns the number of indexed ids.
func (idx *Indexer) Len() int32 {
	if idx == nil {
		return 0
	}
	return int32(len(idx.Ids))
}

// ToIndex converts a sparse id to a dense index.
func (idx *Indexer) ToIndex(id int) int32 {
	if index, exist := idx.Indices[id]; exist {
		return index
	}
	return NotId
}

// ToId converts a dense index to a sparse id.
func (idx *Indexer) ToId(index int32) int {
	return idx.Ids[index]
}

// GetIds returns all ids in current indexer, in index order.
func (idx *Indexer) GetIds() []int {
	return idx.Ids
}

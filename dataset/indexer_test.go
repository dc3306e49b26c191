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

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
)

func TestIndexer(t *testing.T) {
	// insertion order must not matter
	indexer := NewIndexer(mapset.NewSet[int](42, 7, 1000, 3))
	assert.Equal(t, int32(4), indexer.Len())
	assert.Equal(t, []int{3, 7, 42, 1000}, indexer.GetIds())
	// indices follow ascending id order
	assert.Equal(t, int32(0), indexer.ToIndex(3))
	assert.Equal(t, int32(1), indexer.ToIndex(7))
	assert.Equal(t, int32(2), indexer.ToIndex(42))
	assert.Equal(t, int32(3), indexer.ToIndex(1000))
	// round trip
	for _, id := range indexer.GetIds() {
		assert.Equal(t, id, indexer.ToId(indexer.ToIndex(id)))
	}
	// unknown id
	assert.Equal(t, NotId, indexer.ToIndex(5))
}

func TestIndexer_Empty(t *testing.T) {
	indexer := NewIndexer(mapset.NewSet[int]())
	assert.Equal(t, int32(0), indexer.Len())
	assert.Equal(t, NotId, indexer.ToIndex(1))
	var nilIndexer *Indexer
	assert.Equal(t, int32(0), nilIndexer.Len())
}

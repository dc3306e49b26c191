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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRatings(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "ratings.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadObservations(t *testing.T) {
	path := writeRatings(t, "196\t242\t3\t881250949\n186\t302\t3.5\t891717742\n22\t377\t1\t878887116\n")
	observations, err := LoadObservations(path, "\t", false)
	require.NoError(t, err)
	assert.Equal(t, []Observation{
		{UserId: 196, ItemId: 242, Rating: 3, Timestamp: 881250949},
		{UserId: 186, ItemId: 302, Rating: 3.5, Timestamp: 891717742},
		{UserId: 22, ItemId: 377, Rating: 1, Timestamp: 878887116},
	}, observations)
}

func TestLoadObservations_Header(t *testing.T) {
	path := writeRatings(t, "user,item,rating\n1,10,5\n2,20,4\n")
	observations, err := LoadObservations(path, ",", true)
	require.NoError(t, err)
	assert.Equal(t, []Observation{
		{UserId: 1, ItemId: 10, Rating: 5},
		{UserId: 2, ItemId: 20, Rating: 4},
	}, observations)
}

func TestLoadObservations_NoTimestamp(t *testing.T) {
	path := writeRatings(t, "1\t10\t5\n\n2\t20\t4\n")
	observations, err := LoadObservations(path, "\t", false)
	require.NoError(t, err)
	assert.Len(t, observations, 2)
	assert.Zero(t, observations[0].Timestamp)
}

func TestLoadObservations_Malformed(t *testing.T) {
	path := writeRatings(t, "a\t10\t5\n")
	_, err := LoadObservations(path, "\t", false)
	assert.Error(t, err)
	_, err = LoadObservations(filepath.Join(t.TempDir(), "missing.tsv"), "\t", false)
	assert.Error(t, err)
}

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
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// LoadObservations loads raw observations from a delimited text file. Each
// line is expected to be:
//
//	<user id> <sep> <item id> <sep> <rating> [<sep> <timestamp>]
//
// For example, `u.data` from MovieLens 100K:
//
//	196\t242\t3\t881250949
//	186\t302\t3\t891717742
//	22\t377\t1\t878887116
//
// Empty lines are skipped. A missing timestamp field is tolerated.
func LoadObservations(fileName, sep string, hasHeader bool) ([]Observation, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	observations := make([]Observation, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore header
		if hasHeader {
			hasHeader = false
			continue
		}
		fields := strings.Split(line, sep)
		// Ignore empty line
		if len(fields) < 3 {
			continue
		}
		userId, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Annotatef(err, "parse user id %q", fields[0])
		}
		itemId, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Annotatef(err, "parse item id %q", fields[1])
		}
		rating, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Annotatef(err, "parse rating %q", fields[2])
		}
		var timestamp int64
		if len(fields) > 3 {
			timestamp, err = strconv.ParseInt(fields[3], 10, 64)
			if err != nil {
				return nil, errors.Annotatef(err, "parse timestamp %q", fields[3])
			}
		}
		observations = append(observations, Observation{
			UserId:    userId,
			ItemId:    itemId,
			Rating:    rating,
			Timestamp: timestamp,
		})
	}
	return observations, errors.Trace(scanner.Err())
}

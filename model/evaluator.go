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
	"math"

	"github.com/juju/errors"

	"github.com/lowrank-io/lowrank/dataset"
)

// Rating bounds of the 5-star scale. Every prediction is clamped into
// [RatingFloor, RatingCeil] before it contributes to a metric.
const (
	RatingFloor = 0.5
	RatingCeil  = 5.0
)

// Score is the outcome of evaluating a fitted model on a test set.
type Score struct {
	MSE float64
	MAE float64
}

// Clamp truncates a raw prediction into the rating scale.
func Clamp(prediction float64) float64 {
	return math.Min(math.Max(prediction, RatingFloor), RatingCeil)
}

// Evaluate computes MSE and MAE of a fitted model over the test coordinates,
// reading the held-out truth from the full rating matrix. Each coordinate
// contributes one residual, duplicates included. An empty test set is an
// error: silently returning zero would be indistinguishable from a perfect
// score.
func Evaluate(mf *FunkMF, test []dataset.Coordinate, matrix [][]float64) (Score, error) {
	if len(test) == 0 {
		return Score{}, errors.NotValidf("empty test set")
	}
	var sumSquares, sumAbs float64
	for _, c := range test {
		prediction := Clamp(mf.internalPredict(c.Row, c.Col))
		residual := matrix[c.Row][c.Col] - prediction
		sumSquares += residual * residual
		sumAbs += math.Abs(residual)
	}
	count := float64(len(test))
	return Score{
		MSE: sumSquares / count,
		MAE: sumAbs / count,
	}, nil
}

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
	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/lowrank-io/lowrank/base/log"
	"github.com/lowrank-io/lowrank/dataset"
)

// RatioResult is the outcome of one split-fit-evaluate run.
type RatioResult struct {
	Ratio     float64
	TrainSize int
	TestSize  int
	Score     Score
}

// RunRatio splits the dataset at the given ratio, fits a fresh FunkMF model
// on the train partition and evaluates it on the test partition. The truth
// for the test residuals comes from the full rating matrix.
func RunRatio(d *dataset.Dataset, ratio float64, params Params, seed int64) (RatioResult, error) {
	split, err := d.Split(ratio, seed)
	if err != nil {
		return RatioResult{}, errors.Trace(err)
	}
	mf := NewFunkMF(params)
	mf.Fit(d, split, nil)
	score, err := Evaluate(mf, split.Test, d.Matrix)
	if err != nil {
		return RatioResult{}, errors.Trace(err)
	}
	return RatioResult{
		Ratio:     ratio,
		TrainSize: len(split.Train),
		TestSize:  len(split.Test),
		Score:     score,
	}, nil
}

// SweepRatios runs RunRatio once per ratio. Each run gets its own shuffle
// seed, derived from the base seed and the run index, so runs are independent
// yet the whole sweep replays from a single seed.
func SweepRatios(d *dataset.Dataset, ratios []float64, params Params, seed int64) ([]RatioResult, error) {
	bar := progressbar.Default(int64(len(ratios)), "sweep ratios")
	results := make([]RatioResult, 0, len(ratios))
	for i, ratio := range ratios {
		result, err := RunRatio(d, ratio, params, seed+int64(i))
		if err != nil {
			return nil, errors.Annotatef(err, "ratio %v", ratio)
		}
		log.Logger().Info("sweep ratio complete",
			zap.Float64("ratio", result.Ratio),
			zap.Int("train_size", result.TrainSize),
			zap.Int("test_size", result.TestSize),
			zap.Float64("mse", result.Score.MSE),
			zap.Float64("mae", result.Score.MAE))
		results = append(results, result)
		_ = bar.Add(1)
	}
	return results, nil
}

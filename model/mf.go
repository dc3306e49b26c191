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
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/lowrank-io/lowrank/base/log"
	"github.com/lowrank-io/lowrank/dataset"
)

type FitConfig struct {
	Verbose int
}

func NewFitConfig() *FitConfig {
	return &FitConfig{
		Verbose: 10,
	}
}

func (config *FitConfig) SetVerbose(verbose int) *FitConfig {
	config.Verbose = verbose
	return config
}

func (config *FitConfig) LoadDefaultIfNil() *FitConfig {
	if config == nil {
		return NewFitConfig()
	}
	return config
}

// FunkMF is the unregularized matrix factorization popularized by Simon Funk
// during the Netflix Prize, without bias terms. The prediction \hat{r}_{ui}
// is set as:
//
//	\hat{r}_{ui} = q_i^T p_u
//
// Hyper-parameters:
//
//	Lr         - The learning rate of SGD. Default is 0.01.
//	NFactors   - The number of latent factors. Default is 15.
//	NEpochs    - The number of iterations of the SGD procedure. Default is 10.
//	InitMean   - The mean of initial random latent factors. Default is 0.
//	InitStdDev - The standard deviation of initial random latent factors. Default is 0.1.
type FunkMF struct {
	BaseModel
	// Model parameters
	UserFactor [][]float64 // p_u
	ItemFactor [][]float64 // q_i
	// Indexers
	UserIndexer *dataset.Indexer
	ItemIndexer *dataset.Indexer
	// Hyper parameters
	nFactors   int
	nEpochs    int
	lr         float64
	initMean   float64
	initStdDev float64
}

// NewFunkMF creates a FunkMF model.
func NewFunkMF(params Params) *FunkMF {
	mf := new(FunkMF)
	mf.SetParams(params)
	return mf
}

// SetParams sets hyper-parameters of the FunkMF model.
func (mf *FunkMF) SetParams(params Params) {
	mf.BaseModel.SetParams(params)
	mf.nFactors = mf.Params.GetInt(NFactors, 15)
	mf.nEpochs = mf.Params.GetInt(NEpochs, 10)
	mf.lr = mf.Params.GetFloat64(Lr, 0.01)
	mf.initMean = mf.Params.GetFloat64(InitMean, 0)
	mf.initStdDev = mf.Params.GetFloat64(InitStdDev, 0.1)
}

// Predict the rating given by a user to an item. External ids are converted
// through the indexers captured at fit time; an unknown user or item yields
// zero since its factors were never allocated.
func (mf *FunkMF) Predict(userId, itemId int) float64 {
	userIndex := mf.UserIndexer.ToIndex(userId)
	itemIndex := mf.ItemIndexer.ToIndex(itemId)
	if userIndex == dataset.NotId {
		log.Logger().Warn("unknown user", zap.Int("user_id", userId))
		return 0
	}
	if itemIndex == dataset.NotId {
		log.Logger().Warn("unknown item", zap.Int("item_id", itemId))
		return 0
	}
	return mf.internalPredict(userIndex, itemIndex)
}

func (mf *FunkMF) internalPredict(userIndex, itemIndex int32) float64 {
	return floats.Dot(mf.UserFactor[userIndex], mf.ItemFactor[itemIndex])
}

// Fit the FunkMF model on the train partition of a split. The train
// coordinates are visited in their stored order every epoch; the shuffle
// happened once, at split time. Updates are strictly sequential: each update
// depends on the rows mutated by the previous one, so coordinates sharing a
// row cannot be processed concurrently. There is no convergence check and no
// guard against divergence; a too-large learning rate grows the factors
// without bound.
func (mf *FunkMF) Fit(d *dataset.Dataset, split *dataset.Split, config *FitConfig) {
	config = config.LoadDefaultIfNil()
	log.Logger().Info("fit funk mf",
		zap.Int("train_set_size", len(split.Train)),
		zap.Int("test_set_size", len(split.Test)),
		zap.String("params", mf.Params.ToString()))
	mf.Init(d)
	fitStart := time.Now()
	for epoch := 1; epoch <= mf.nEpochs; epoch++ {
		for _, c := range split.Train {
			userFactor := mf.UserFactor[c.Row]
			itemFactor := mf.ItemFactor[c.Col]
			// e_{ui} = r_{ui} - q_i^T p_u
			err := split.TrainMatrix[c.Row][c.Col] - floats.Dot(userFactor, itemFactor)
			// p_u <- p_u + lr * e_{ui} * q_i (pre-update q_i)
			floats.AddScaled(userFactor, mf.lr*err, itemFactor)
			// q_i <- q_i + lr * e_{ui} * p_u, where p_u is the row written
			// above. The item update reads the fresh user row, not the
			// pre-update value.
			floats.AddScaled(itemFactor, mf.lr*err, userFactor)
		}
		if epoch%config.Verbose == 0 || epoch == mf.nEpochs {
			log.Logger().Debug(fmt.Sprintf("fit funk mf %v/%v", epoch, mf.nEpochs),
				zap.String("fit_time", time.Since(fitStart).String()))
		}
	}
	log.Logger().Info("fit funk mf complete",
		zap.String("fit_time", time.Since(fitStart).String()))
}

// Init allocates the latent factors from normal draws of the model's seeded
// generator. Called once per Fit, before the first epoch.
func (mf *FunkMF) Init(d *dataset.Dataset) {
	mf.UserIndexer = d.UserIndexer
	mf.ItemIndexer = d.ItemIndexer
	mf.UserFactor = mf.rng.NormalMatrix(d.UserCount(), mf.nFactors, mf.initMean, mf.initStdDev)
	mf.ItemFactor = mf.rng.NormalMatrix(d.ItemCount(), mf.nFactors, mf.initMean, mf.initStdDev)
}

// Clear model weights.
func (mf *FunkMF) Clear() {
	mf.UserIndexer = nil
	mf.ItemIndexer = nil
	mf.UserFactor = nil
	mf.ItemFactor = nil
}

// Invalid reports whether the model has not been fitted.
func (mf *FunkMF) Invalid() bool {
	return mf == nil ||
		mf.UserIndexer == nil ||
		mf.ItemIndexer == nil ||
		mf.UserFactor == nil ||
		mf.ItemFactor == nil
}

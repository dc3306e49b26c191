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

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"

	"github.com/lowrank-io/lowrank/model"
)

// Config is the configuration for the pipeline.
type Config struct {
	Data  DataConfig  `mapstructure:"data"`
	Model ModelConfig `mapstructure:"model"`
	Split SplitConfig `mapstructure:"split"`
}

// DataConfig describes the ratings file.
type DataConfig struct {
	Path      string `mapstructure:"path" validate:"required"`
	Separator string `mapstructure:"separator" validate:"required"`
	HasHeader bool   `mapstructure:"has_header"`
}

// ModelConfig holds the FunkMF hyper-parameters.
type ModelConfig struct {
	NFactors    int     `mapstructure:"n_factors" validate:"gt=0"`
	NEpochs     int     `mapstructure:"n_epochs" validate:"gt=0"`
	Lr          float64 `mapstructure:"lr" validate:"gt=0"`
	RandomState int64   `mapstructure:"random_state"`
	InitMean    float64 `mapstructure:"init_mean"`
	InitStdDev  float64 `mapstructure:"init_std_dev" validate:"gte=0"`
}

// SplitConfig controls the train/test partitioning.
type SplitConfig struct {
	Ratios []float64 `mapstructure:"ratios" validate:"required,min=1,dive,gte=0,lte=1"`
	Seed   int64     `mapstructure:"seed"`
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Separator: "\t",
		},
		Model: ModelConfig{
			NFactors:    15,
			NEpochs:     10,
			Lr:          0.01,
			RandomState: 0,
			InitMean:    0,
			InitStdDev:  0.1,
		},
		Split: SplitConfig{
			Ratios: []float64{0.8},
			Seed:   0,
		},
	}
}

// ToParams converts the model section to hyper-parameters.
func (config *ModelConfig) ToParams() model.Params {
	return model.Params{
		model.NFactors:    config.NFactors,
		model.NEpochs:     config.NEpochs,
		model.Lr:          config.Lr,
		model.RandomState: config.RandomState,
		model.InitMean:    config.InitMean,
		model.InitStdDev:  config.InitStdDev,
	}
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	// [data]
	viper.SetDefault("data.separator", defaultConfig.Data.Separator)
	viper.SetDefault("data.has_header", defaultConfig.Data.HasHeader)
	// [model]
	viper.SetDefault("model.n_factors", defaultConfig.Model.NFactors)
	viper.SetDefault("model.n_epochs", defaultConfig.Model.NEpochs)
	viper.SetDefault("model.lr", defaultConfig.Model.Lr)
	viper.SetDefault("model.random_state", defaultConfig.Model.RandomState)
	viper.SetDefault("model.init_mean", defaultConfig.Model.InitMean)
	viper.SetDefault("model.init_std_dev", defaultConfig.Model.InitStdDev)
	// [split]
	viper.SetDefault("split.ratios", defaultConfig.Split.Ratios)
	viper.SetDefault("split.seed", defaultConfig.Split.Seed)
}

// LoadConfig loads and validates the configuration from a TOML file.
// Environment variables prefixed with LOWRANK_ override file values, for
// example LOWRANK_DATA_PATH overrides data.path.
func LoadConfig(path string) (*Config, error) {
	setDefault()
	viper.SetConfigFile(path)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("lowrank")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}
	conf := new(Config)
	if err := viper.Unmarshal(conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return conf, nil
}

// Validate checks the configuration against the struct tags. Hyper-parameter
// positivity is enforced here, before anything reaches the model.
func (config *Config) Validate() error {
	validate := validator.New()
	return errors.Trace(validate.Struct(config))
}

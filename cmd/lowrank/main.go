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

package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lowrank-io/lowrank/base/log"
	"github.com/lowrank-io/lowrank/cmd/version"
	"github.com/lowrank-io/lowrank/config"
	"github.com/lowrank-io/lowrank/dataset"
	"github.com/lowrank-io/lowrank/model"
)

var rootCommand = &cobra.Command{
	Use:   "lowrank",
	Short: "Matrix factorization for rating prediction.",
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}

		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)

		// load config
		configPath, _ := cmd.PersistentFlags().GetString("config")
		log.Logger().Info("load config", zap.String("config", configPath))
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}

		// load ratings
		observations, err := dataset.LoadObservations(conf.Data.Path, conf.Data.Separator, conf.Data.HasHeader)
		if err != nil {
			log.Logger().Fatal("failed to load ratings", zap.Error(err))
		}
		data, err := dataset.New(observations)
		if err != nil {
			log.Logger().Fatal("failed to build dataset", zap.Error(err))
		}
		log.Logger().Info("dataset ready",
			zap.Int("users", data.UserCount()),
			zap.Int("items", data.ItemCount()),
			zap.Int("observations", data.Count()))

		// run one split-fit-evaluate pass per ratio
		results, err := model.SweepRatios(data, conf.Split.Ratios, conf.Model.ToParams(), conf.Split.Seed)
		if err != nil {
			log.Logger().Fatal("failed to sweep ratios", zap.Error(err))
		}

		// report
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Ratio", "Train", "Test", "MSE", "MAE")
		rows := lo.Map(results, func(r model.RatioResult, _ int) []string {
			return []string{
				fmt.Sprintf("%.2f", r.Ratio),
				fmt.Sprintf("%d", r.TrainSize),
				fmt.Sprintf("%d", r.TestSize),
				fmt.Sprintf("%.6f", r.Score.MSE),
				fmt.Sprintf("%.6f", r.Score.MAE),
			}
		})
		for _, row := range rows {
			if err := table.Append(row); err != nil {
				log.Logger().Fatal("failed to append row", zap.Error(err))
			}
		}
		if err := table.Render(); err != nil {
			log.Logger().Fatal("failed to render table", zap.Error(err))
		}
	},
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().BoolP("version", "v", false, "lowrank version")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}

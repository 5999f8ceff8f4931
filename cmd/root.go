// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
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

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/M3nin0/go-stac-client/client"
	"github.com/M3nin0/go-stac-client/common"
	"github.com/M3nin0/go-stac-client/stac"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stac-browse CATALOG_URL",
	Short: "Walk a STAC catalog from its root URL",
	Long: `stac-browse fetches a STAC root catalog and walks its child links
depth-first, printing one line per entity reached. Traversal is lazy:
each printed entity is one HTTP round trip, and the walk stops as soon
as the visit budget is consumed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		ctx := context.Background()

		opts := []client.ServiceOption{
			client.WithFetcher(client.NewHTTP(
				client.WithTimeout(viper.GetDuration("browse.timeout")),
			)),
		}
		if token := viper.GetString("browse.access_token"); token != "" {
			opts = append(opts, client.WithAccessToken(token))
		}

		service := client.NewService(args[0], opts...)

		catalog, err := service.Catalog(ctx)
		if err != nil {
			log.Fatal().Err(err).Str("url", args[0]).Msg("could not fetch root catalog")
		}

		// Cycle guard: the walk itself does no cycle detection, so the
		// CLI bounds consumption.
		budget := viper.GetInt("browse.max_visits")

		visited := 0
		for visit, err := range stac.Walk(ctx, catalog) {
			if err != nil {
				log.Fatal().Err(err).Msg("walk failed")
			}

			id, err := visit.Resource.ID()
			if err != nil {
				log.Fatal().Err(err).Msg("entity has no id")
			}
			printEntity(id, visit.Resource)

			for item, err := range visit.Items {
				if err != nil {
					log.Fatal().Err(err).Msg("item fetch failed")
				}
				if node, ok := item.(stac.Node); ok {
					itemID, err := node.ID()
					if err != nil {
						log.Fatal().Err(err).Msg("item has no id")
					}
					printEntity("  "+itemID, node)
				}
			}

			visited++
			if visited >= budget {
				log.Warn().Int("max_visits", budget).Msg("visit budget reached; stopping walk")
				break
			}
		}
	},
}

func printEntity(id string, node stac.Node) {
	kind := "document"
	switch node.(type) {
	case *stac.Collection:
		kind = "collection"
	case *stac.Catalog:
		kind = "catalog"
	case *stac.Item:
		kind = "item"
	}
	fmt.Printf("%-12s %s\n", kind, id)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stac-browse.toml)")

	// browse flags

	if err := viper.BindEnv("browse.access_token", "STAC_ACCESS_TOKEN"); err != nil {
		log.Panic().Err(err).Msg("could not bind STAC_ACCESS_TOKEN")
	}
	rootCmd.Flags().String("access-token", "", "Access token sent as the access_token query parameter")
	if err := viper.BindPFlag("browse.access_token", rootCmd.Flags().Lookup("access-token")); err != nil {
		log.Panic().Err(err).Msg("could not bind access-token")
	}

	rootCmd.Flags().Duration("timeout", 30*time.Second, "Per-request HTTP timeout")
	if err := viper.BindPFlag("browse.timeout", rootCmd.Flags().Lookup("timeout")); err != nil {
		log.Panic().Err(err).Msg("could not bind timeout")
	}

	rootCmd.Flags().Int("max-visits", 1000, "Stop the walk after this many entities")
	if err := viper.BindPFlag("browse.max_visits", rootCmd.Flags().Lookup("max-visits")); err != nil {
		log.Panic().Err(err).Msg("could not bind max-visits")
	}

	// Logging configuration
	if err := viper.BindEnv("log.level", "LOG_LEVEL"); err != nil {
		log.Panic().Err(err).Msg("could not bind LOG_LEVEL")
	}
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level")
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Panic().Err(err).Msg("could not bind log-level")
	}

	if err := viper.BindEnv("log.output", "LOG_OUTPUT"); err != nil {
		log.Panic().Err(err).Msg("could not bind LOG_OUTPUT")
	}
	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	if err := viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output")); err != nil {
		log.Panic().Err(err).Msg("could not bind log-output")
	}

	rootCmd.PersistentFlags().Bool("log-pretty", true, "Human readable console logs")
	if err := viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty")); err != nil {
		log.Panic().Err(err).Msg("could not bind log-pretty")
	}

	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	if err := viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller")); err != nil {
		log.Panic().Err(err).Msg("could not bind log-report-caller")
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(fmt.Sprintf("%s/.config", home))
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".stac-browse.toml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// The config file is optional for a client CLI.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFile", viper.ConfigFileUsed()).Msg("Loaded config file")
	}
}

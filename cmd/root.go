/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/perevodchik/internal/config"
)

var version = "0.1.0"

var (
	cfgFile  string
	envFiles []string
	debug    bool
)

// v holds flags, environment and the optional config file.
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "perevodchik",
	Short: "Translate text with an LLM and grade the result with a second LLM",
	Long: `A small web application that sends text to a hosted-model API for
translation and, on request, asks a second model to grade the translation
(LLM-as-a-Judge).

Use "perevodchik serve" to start the web form,
"perevodchik translate --help" for one-shot use from the shell.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotenv(envFiles...)
		if err := config.ReadFile(v, cfgFile); err != nil {
			return err
		}
		if err := v.BindPFlag(config.KeyDebug, cmd.Flags().Lookup("debug")); err != nil {
			return err
		}
		setupLogging(v.GetBool(config.KeyDebug))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Dotenv files to load (default .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

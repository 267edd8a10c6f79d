// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	viper.SetEnvPrefix("RABBITLINT")
	viper.AutomaticEnv()
}

var rootCmd = &cobra.Command{
	Use:   "rabbitlint",
	Short: "rabbitlint - Lint CodeRabbit YAML configuration files",
	Long:  "rabbitlint - Validate .coderabbit.yaml review-automation settings against the expected schema",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetHandler(clihandler.New(os.Stderr))
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func Execute() error {

	rootCmd.AddCommand(Validate())
	rootCmd.AddCommand(GenerateConfig())
	rootCmd.AddCommand(Init())

	return rootCmd.Execute()
}

// mustBindPFlag binds a flag to viper. Binding can only fail on a
// programming error, so it panics.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

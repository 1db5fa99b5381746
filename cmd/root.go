/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"minter/domain/config"

	"github.com/spf13/cobra"
)

var (
	configFile string
	useMemory  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minter",
	Short: "Multisig gated master agent minting",
	Long: `Collects multisig signatures for minting master agents and, once the threshold
is reached, creates the master agent record together with its token and metadata.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.ReadConfig(configFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "keep accounts in memory instead of postgres (dry run)")
}

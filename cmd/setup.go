/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"minter/domain"
	"minter/domain/config"
	"minter/interface/repository"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Creates the tables and the multisig account",
	Long: `Creates the account tables and the multisig account from the configured signers
and threshold. The multisig can only be created once.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		ctx := context.Background()

		var multisig *domain.Multisig
		var err error
		if useMemory {
			// the in-memory store is set up while wiring dependencies
			multisig, err = multisigInteractor.Load(ctx)
		} else {
			var schemaHandler repository.SchemaHandler = dbHandler
			if err := schemaHandler.Migrate(repository.Schema); err != nil {
				log.Fatalf("❌ Unable to create tables - %v\n", err.Error())
			}
			multisig, err = multisigInteractor.Setup(ctx, config.GetSigners(), config.GetThreshold())
		}
		if err != nil {
			fmt.Printf("❌ Multisig is not created due to error: %v\n", err.Error())
			return
		}

		fmt.Printf("✅ Multisig %v (bump %v), %v of %v signers:\n", multisig.Address, multisig.Bump, multisig.Threshold, len(multisig.Signers))
		for i, signer := range multisig.Signers {
			fmt.Printf("#%d - %v\n", i, signer)
		}
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

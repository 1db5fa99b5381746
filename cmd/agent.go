/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minter/domain"
	"minter/domain/util"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:   "agent <mint>",
	Short: "Shows the master agent of a mint",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		mint, err := solana.PublicKeyFromBase58(args[0])
		if err != nil {
			fmt.Printf("❌ Invalid mint: %v\n", err.Error())
			return
		}

		printMasterAgent(mint)
	},
}

func printMasterAgent(mint solana.PublicKey) {
	ctx := context.Background()

	agent, err := mintInteractor.FindMasterAgent(ctx, mint)
	if errors.Is(err, domain.ErrorAccountNotFound) {
		fmt.Printf("No master agent is minted for %v\n", mint)
		return
	}
	if err != nil {
		fmt.Printf("❌ Unable to load master agent: %v\n", err.Error())
		return
	}

	fmt.Printf("------------- MASTER AGENT -----------------\n")
	fmt.Printf("mint:           %v\n", agent.Mint)
	fmt.Printf("authority:      %v\n", agent.Authority)
	fmt.Printf("price:          %v\n", util.LamportsToSolString(agent.Price))
	fmt.Printf("w_yield:        %v\n", util.BasisPointsString(agent.WYield))
	fmt.Printf("max supply:     %v\n", util.SupplyString(agent.MaxSupply))
	fmt.Printf("trading status: %v\n", agent.TradingStatus)
	fmt.Printf("auto relist:    %v\n", agent.AutoRelist)
	fmt.Printf("created:        %v\n", time.Unix(agent.CurrentTime, 0).UTC().Format(time.RFC3339))

	metadata, err := mintInteractor.FindTokenMetadata(ctx, mint)
	if err != nil {
		return
	}
	fmt.Printf("metadata:       %v (%v, %v)\n", metadata.Metadata, metadata.Name, metadata.Symbol)
	fmt.Printf("master edition: %v\n", metadata.MasterEdition)
	fmt.Printf("token account:  %v\n", metadata.TokenAccount)
	fmt.Printf("uri:            %v\n", metadata.URI)
}

func init() {
	rootCmd.AddCommand(agentCmd)
}

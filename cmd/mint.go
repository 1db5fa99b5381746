/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"minter/domain"
	"minter/domain/config"
	"minter/usecase"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

var mintFlags struct {
	params    domain.MintMasterAgentParams
	mint      string
	cosigners []string
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Signs a mint master agent instruction",
	Long: `Signs a mint master agent instruction with the configured key. Every signer has to
run it with identical parameters; the run that reaches the threshold mints the agent.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		mint, err := parseMint(mintFlags.mint)
		if err != nil {
			fmt.Printf("❌ Invalid mint: %v\n", err.Error())
			return
		}

		cosigners := make([]solana.PublicKey, 0, len(mintFlags.cosigners))
		for _, value := range mintFlags.cosigners {
			key, err := solana.PublicKeyFromBase58(value)
			if err != nil {
				fmt.Printf("❌ Invalid co-signer %v: %v\n", value, err.Error())
				return
			}
			cosigners = append(cosigners, key)
		}

		digest, err := domain.InstructionDigest(domain.AdminInstructionDeployAgent, mintFlags.params)
		if err != nil {
			fmt.Printf("❌ Invalid parameters: %v\n", err.Error())
			return
		}

		signer, err := domain.NewSigner(config.GetSignerPrivateKey(), digest)
		if err != nil {
			fmt.Printf("❌ Unable to sign instruction: %v\n", err.Error())
			return
		}

		remaining, err := mintInteractor.MintMasterAgent(context.Background(), usecase.MintMasterAgentRequest{
			Signer:    signer,
			Cosigners: cosigners,
			Mint:      mint,
			Params:    mintFlags.params,
		})
		if err != nil {
			fmt.Printf("❌ Instruction %v is rejected: %v\n", digest, err.Error())
			return
		}

		if remaining > 0 {
			fmt.Printf("🟡 Instruction %v signed by %v, %v more signature(s) required.\n", digest, signer.Key, remaining)
			return
		}

		fmt.Printf("✅ Master agent minted, mint %v.\n", mint)
		printMasterAgent(mint)
	},
}

// parseMint reads the mint flag, or generates a fresh mint address when it is empty.
func parseMint(value string) (solana.PublicKey, error) {
	if value != "" {
		return solana.PublicKeyFromBase58(value)
	}

	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solana.PublicKey{}, err
	}
	return key.PublicKey(), nil
}

func init() {
	rootCmd.AddCommand(mintCmd)

	flags := mintCmd.Flags()
	flags.StringVar(&mintFlags.params.Name, "name", "", "token name")
	flags.StringVar(&mintFlags.params.Symbol, "symbol", "", "token symbol")
	flags.StringVar(&mintFlags.params.URI, "uri", "", "token metadata uri")
	flags.Uint16Var(&mintFlags.params.SellerFeeBasisPoints, "seller-fee", 0, "royalty in basis points")
	flags.Uint64Var(&mintFlags.params.Price, "price", 0, "agent price in lamports")
	flags.Uint64Var(&mintFlags.params.WYield, "w-yield", 0, "agent yield weight in basis points")
	flags.Uint64Var(&mintFlags.params.MaxSupply, "max-supply", 0, "maximum number of agent tokens")
	flags.StringVar(&mintFlags.mint, "mint", "", "mint address of the new token, generated when empty")
	flags.StringSliceVar(&mintFlags.cosigners, "cosigner", nil, "accounts of the other signers taking part")

	_ = mintCmd.MarkFlagRequired("name")
	_ = mintCmd.MarkFlagRequired("symbol")
	_ = mintCmd.MarkFlagRequired("uri")
}

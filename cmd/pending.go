/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"minter/domain"

	"github.com/spf13/cobra"
)

var pendingDigest string

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Lists instructions waiting for signatures",
	Long: `Lists instructions waiting for signatures. Pending signatures never expire; an
instruction stays listed until enough signers approve it.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		var filter domain.Digest
		if pendingDigest != "" {
			var err error
			filter, err = domain.DigestFromBase58(pendingDigest)
			if err != nil {
				fmt.Printf("❌ Invalid digest: %v\n", err.Error())
				return
			}
		}

		pending, err := multisigInteractor.Pending(context.Background(), filter)
		if err != nil {
			fmt.Printf("❌ Unable to load multisig: %v\n", err.Error())
			return
		}

		fmt.Printf("------------- PENDING INSTRUCTIONS -----------------\n")
		for i, p := range pending {
			fmt.Printf("#%03d - %v [ %v more, signed by", i+1, p.Digest, p.Remaining)
			for _, signer := range p.Signed {
				fmt.Printf(" %v", signer.Short(4))
			}
			fmt.Printf(" ]\n")
		}
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)

	pendingCmd.Flags().StringVar(&pendingDigest, "digest", "", "show only the instruction with this base58 digest")
}

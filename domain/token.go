package domain

import (
	"github.com/gagliardetto/solana-go"
)

const (
	MaxNameLength           = 32
	MaxSymbolLength         = 10
	MaxURILength            = 200
	MaxSellerFeeBasisPoints = 10_000
)

// MintRequest is what the token/metadata program is asked to create for a new agent.
type MintRequest struct {
	Authority            solana.PublicKey
	Mint                 solana.PublicKey
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
}

// TokenMetadata records a minted agent token and its metadata accounts.
type TokenMetadata struct {
	Mint                 solana.PublicKey `json:"mint"`
	Authority            solana.PublicKey `json:"authority"`
	Metadata             solana.PublicKey `json:"metadata"`
	MasterEdition        solana.PublicKey `json:"master_edition"`
	TokenAccount         solana.PublicKey `json:"token_account"`
	Name                 string           `json:"name"`
	Symbol               string           `json:"symbol"`
	URI                  string           `json:"uri"`
	SellerFeeBasisPoints uint16           `json:"seller_fee_basis_points"`
	Decimals             uint8            `json:"decimals"`
	Supply               uint64           `json:"supply"`
}

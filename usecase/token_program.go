package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"minter/domain"
)

var (
	ErrorNameTooLong      = fmt.Errorf("name is longer than %v bytes", domain.MaxNameLength)
	ErrorSymbolTooLong    = fmt.Errorf("symbol is longer than %v bytes", domain.MaxSymbolLength)
	ErrorURITooLong       = fmt.Errorf("uri is longer than %v bytes", domain.MaxURILength)
	ErrorInvalidSellerFee = fmt.Errorf("seller fee exceeds %v basis points", domain.MaxSellerFeeBasisPoints)
	ErrorInvalidMetadata  = fmt.Errorf("metadata must be valid utf-8")
)

// TokenProgram creates the token mint and its metadata for a new master agent.
// It runs inside the caller's transaction.
type TokenProgram interface {
	CreateMintAndMetadata(ctx context.Context, tx domain.AccountTx, req domain.MintRequest) error
}

// MetadataProgram mints a single edition token to the authority and records its metadata accounts.
type MetadataProgram struct{}

func NewMetadataProgram() *MetadataProgram {
	return &MetadataProgram{}
}

func (program *MetadataProgram) CreateMintAndMetadata(ctx context.Context, tx domain.AccountTx, req domain.MintRequest) error {
	if err := validateMetadata(req); err != nil {
		return err
	}

	metadata, _, err := domain.GetMetadataPDA(req.Mint)
	if err != nil {
		return err
	}
	edition, _, err := domain.GetMasterEditionPDA(req.Mint)
	if err != nil {
		return err
	}
	tokenAccount, _, err := domain.GetAssociatedTokenAddress(req.Authority, req.Mint)
	if err != nil {
		return err
	}

	return tx.InitTokenMetadata(&domain.TokenMetadata{
		Mint:                 req.Mint,
		Authority:            req.Authority,
		Metadata:             metadata,
		MasterEdition:        edition,
		TokenAccount:         tokenAccount,
		Name:                 req.Name,
		Symbol:               req.Symbol,
		URI:                  req.URI,
		SellerFeeBasisPoints: req.SellerFeeBasisPoints,
		Decimals:             0,
		Supply:               1,
	})
}

func validateMetadata(req domain.MintRequest) error {
	switch {
	case len(req.Name) > domain.MaxNameLength:
		return ErrorNameTooLong
	case len(req.Symbol) > domain.MaxSymbolLength:
		return ErrorSymbolTooLong
	case len(req.URI) > domain.MaxURILength:
		return ErrorURITooLong
	case req.SellerFeeBasisPoints > domain.MaxSellerFeeBasisPoints:
		return ErrorInvalidSellerFee
	case !utf8.ValidString(req.Name) || !utf8.ValidString(req.Symbol) || !utf8.ValidString(req.URI):
		return ErrorInvalidMetadata
	}
	return nil
}

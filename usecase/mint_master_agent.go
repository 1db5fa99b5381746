package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"minter/domain"

	"github.com/gagliardetto/solana-go"
)

type MintMasterAgentRequest struct {
	Signer    domain.Signer
	Cosigners []solana.PublicKey
	// Mint is the new token. Only the signer that completes the threshold needs to provide it.
	Mint   solana.PublicKey
	Params domain.MintMasterAgentParams
}

type MintMasterAgentInteractor struct {
	accounts  domain.AccountStore
	clock     Clock
	tokens    TokenProgram
	programID solana.PublicKey
}

func NewMintMasterAgentInteractor(accounts domain.AccountStore,
	clock Clock,
	tokens TokenProgram,
	programID solana.PublicKey) *MintMasterAgentInteractor {
	interactor := &MintMasterAgentInteractor{
		accounts:  accounts,
		clock:     clock,
		tokens:    tokens,
		programID: programID,
	}
	return interactor
}

// MintMasterAgent adds the signer's approval for params and, once the threshold is met,
// creates the master agent and its token. It returns the number of signatures still missing.
func (interactor *MintMasterAgentInteractor) MintMasterAgent(ctx context.Context, req MintMasterAgentRequest) (uint8, error) {
	digest, err := domain.InstructionDigest(domain.AdminInstructionDeployAgent, req.Params)
	if err != nil {
		log.Printf("🔴 hashing instruction - %v\n", err.Error())
		return 0, err
	}

	multisigAddress, _, err := domain.GetMultisigPDA(interactor.programID)
	if err != nil {
		return 0, domain.ErrorInvalidBump
	}

	var remaining uint8
	err = interactor.accounts.Atomically(ctx, func(tx domain.AccountTx) error {
		multisig, err := tx.Multisig(multisigAddress)
		if err != nil {
			if errors.Is(err, domain.ErrorAccountNotFound) {
				return domain.ErrorInvalidBump
			}
			return err
		}

		remaining, err = multisig.Sign(interactor.programID, req.Signer, req.Cosigners, digest)
		if err != nil {
			return err
		}

		if err := tx.PutMultisig(multisig); err != nil {
			return err
		}

		if remaining > 0 {
			log.Printf("Instruction %v has been signed but more signatures are required: %v\n", digest, remaining)
			return nil
		}

		return interactor.deployAgent(ctx, tx, req)
	})
	if err != nil {
		log.Printf("🔴 minting master agent [instruction: %v, error: %v] - %v\n", digest, domain.ErrorName(err), err.Error())
		return 0, err
	}

	if remaining == 0 {
		log.Printf("master agent minted [mint: %v, instruction: %v]\n", req.Mint, digest)
	}
	return remaining, nil
}

func (interactor *MintMasterAgentInteractor) deployAgent(ctx context.Context, tx domain.AccountTx, req MintMasterAgentRequest) error {
	currentTime, err := interactor.clock.UnixTime(ctx)
	if err != nil {
		return err
	}

	address, bump, err := domain.GetMasterAgentPDA(req.Mint, interactor.programID)
	if err != nil {
		return err
	}
	authority, _, err := domain.GetTransferAuthorityPDA(interactor.programID)
	if err != nil {
		return err
	}

	agent := &domain.MasterAgent{}
	err = agent.Initialize(domain.MasterAgentInitParams{
		Authority:     authority,
		Mint:          req.Mint,
		Price:         req.Params.Price,
		WYield:        req.Params.WYield,
		TradingStatus: domain.TradingStatusWhiteList,
		MaxSupply:     req.Params.MaxSupply,
		AutoRelist:    true,
		CurrentTime:   currentTime,
		Bump:          bump,
	})
	if err != nil {
		return err
	}

	if err := agent.Validate(); err != nil {
		return err
	}

	if err := tx.InitMasterAgent(address, agent); err != nil {
		return err
	}

	err = interactor.tokens.CreateMintAndMetadata(ctx, tx, domain.MintRequest{
		Authority:            authority,
		Mint:                 req.Mint,
		Name:                 req.Params.Name,
		Symbol:               req.Params.Symbol,
		URI:                  req.Params.URI,
		SellerFeeBasisPoints: req.Params.SellerFeeBasisPoints,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrorInvalidInstructionHash, err)
	}

	return nil
}

func (interactor *MintMasterAgentInteractor) FindMasterAgent(ctx context.Context, mint solana.PublicKey) (*domain.MasterAgent, error) {
	address, _, err := domain.GetMasterAgentPDA(mint, interactor.programID)
	if err != nil {
		return nil, err
	}
	return interactor.accounts.FindMasterAgent(ctx, address)
}

func (interactor *MintMasterAgentInteractor) FindTokenMetadata(ctx context.Context, mint solana.PublicKey) (*domain.TokenMetadata, error) {
	return interactor.accounts.FindTokenMetadata(ctx, mint)
}

package usecase

import (
	"context"
	"log"

	"minter/domain"

	"github.com/gagliardetto/solana-go"
)

type PendingInstruction struct {
	Digest    domain.Digest
	Signed    []solana.PublicKey
	Remaining uint8
}

type MultisigInteractor struct {
	accounts  domain.AccountStore
	programID solana.PublicKey
}

func NewMultisigInteractor(accounts domain.AccountStore, programID solana.PublicKey) *MultisigInteractor {
	interactor := &MultisigInteractor{
		accounts:  accounts,
		programID: programID,
	}
	return interactor
}

// Setup creates the multisig account. It can only succeed once per program.
func (interactor *MultisigInteractor) Setup(ctx context.Context, signers []solana.PublicKey, threshold uint8) (*domain.Multisig, error) {
	multisig, err := domain.NewMultisig(interactor.programID, signers, threshold)
	if err != nil {
		log.Printf("🔴 creating multisig - %v\n", err.Error())
		return nil, err
	}

	err = interactor.accounts.Atomically(ctx, func(tx domain.AccountTx) error {
		return tx.InitMultisig(multisig)
	})
	if err != nil {
		log.Printf("🔴 storing multisig - %v\n", err.Error())
		return nil, err
	}

	log.Printf("multisig %v created with %v signers, threshold %v\n", multisig.Address, len(signers), threshold)
	return multisig, nil
}

func (interactor *MultisigInteractor) Load(ctx context.Context) (*domain.Multisig, error) {
	address, _, err := domain.GetMultisigPDA(interactor.programID)
	if err != nil {
		return nil, err
	}
	return interactor.accounts.LoadMultisig(ctx, address)
}

// Pending lists the instructions waiting for signatures, or only filter when it is not zero.
func (interactor *MultisigInteractor) Pending(ctx context.Context, filter domain.Digest) ([]PendingInstruction, error) {
	multisig, err := interactor.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PendingInstruction, 0, len(multisig.Pending))
	for _, digest := range multisig.PendingDigests() {
		if !filter.IsZero() && digest != filter {
			continue
		}
		signed := multisig.Pending[digest]
		p := PendingInstruction{
			Digest:    digest,
			Remaining: multisig.Remaining(digest),
		}
		for i, signer := range multisig.Signers {
			if signed.Has(i) {
				p.Signed = append(p.Signed, signer)
			}
		}
		result = append(result, p)
	}

	return result, nil
}

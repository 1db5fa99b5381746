package usecase

import (
	"context"

	"minter/domain"

	"github.com/gagliardetto/solana-go"
)

// StatisticResult summarizes the stored accounts for the metrics exporter.
type StatisticResult struct {
	PendingInstructions int
	PendingSignatures   int
	MasterAgents        int
}

type StatisticInteractor struct {
	accounts  domain.AccountStore
	programID solana.PublicKey
}

func NewStatisticInteractor(accounts domain.AccountStore, programID solana.PublicKey) *StatisticInteractor {
	interactor := &StatisticInteractor{
		accounts:  accounts,
		programID: programID,
	}
	return interactor
}

func (interactor *StatisticInteractor) Statistic(ctx context.Context) (*StatisticResult, error) {
	address, _, err := domain.GetMultisigPDA(interactor.programID)
	if err != nil {
		return nil, err
	}

	multisig, err := interactor.accounts.LoadMultisig(ctx, address)
	if err != nil {
		return nil, err
	}

	result := StatisticResult{PendingInstructions: len(multisig.Pending)}
	for _, signed := range multisig.Pending {
		result.PendingSignatures += int(signed.Count())
	}

	result.MasterAgents, err = interactor.accounts.CountMasterAgents(ctx)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

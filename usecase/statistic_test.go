package usecase

import (
	"context"
	"testing"

	"minter/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticReflectsStoredAccounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 3, nil)
	statistic := NewStatisticInteractor(f.accounts, f.programID)

	result, err := statistic.Statistic(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatisticResult{}, *result)

	other := sampleParams()
	other.URI = "https://example.com/agent2.json"
	mint := solana.NewWallet().PublicKey()

	for _, req := range []MintMasterAgentRequest{
		f.request(t, 0, mint, sampleParams()),
		f.request(t, 1, mint, sampleParams()),
		f.request(t, 2, mint, other),
	} {
		_, err := f.mint.MintMasterAgent(ctx, req)
		require.NoError(t, err)
	}

	// Signatures recorded by another interactor are visible through the store.
	result, err = statistic.Statistic(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatisticResult{PendingInstructions: 2, PendingSignatures: 3}, *result)

	_, err = f.mint.MintMasterAgent(ctx, f.request(t, 2, mint, sampleParams()))
	require.NoError(t, err)

	result, err = statistic.Statistic(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatisticResult{PendingInstructions: 1, PendingSignatures: 1, MasterAgents: 1}, *result)
}

func TestStatisticWithoutMultisig(t *testing.T) {
	f := newFixture(t, 1, 1, nil)
	statistic := NewStatisticInteractor(f.accounts, solana.NewWallet().PublicKey())

	_, err := statistic.Statistic(context.Background())
	assert.ErrorIs(t, err, domain.ErrorAccountNotFound)
}

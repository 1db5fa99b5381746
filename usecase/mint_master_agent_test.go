package usecase

import (
	"context"
	"testing"

	"minter/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintMasterAgentBelowThresholdCreatesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 2, nil)
	mint := solana.NewWallet().PublicKey()

	remaining, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, sampleParams()))
	require.NoError(t, err)
	assert.Equal(t, uint8(1), remaining)

	_, err = f.mint.FindMasterAgent(ctx, mint)
	assert.ErrorIs(t, err, domain.ErrorAccountNotFound)
	_, err = f.mint.FindTokenMetadata(ctx, mint)
	assert.ErrorIs(t, err, domain.ErrorAccountNotFound)

	pending, err := f.multisig.Pending(ctx, domain.Digest{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, []solana.PublicKey{f.keys[0].PublicKey()}, pending[0].Signed)
}

func TestMintMasterAgentAtThreshold(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 2, nil)
	mint := solana.NewWallet().PublicKey()
	params := sampleParams()

	_, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, solana.PublicKey{}, params))
	require.NoError(t, err)

	remaining, err := f.mint.MintMasterAgent(ctx, f.request(t, 1, mint, params))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), remaining)

	agent, err := f.mint.FindMasterAgent(ctx, mint)
	require.NoError(t, err)

	authority, _, err := domain.GetTransferAuthorityPDA(f.programID)
	require.NoError(t, err)
	_, bump, err := domain.GetMasterAgentPDA(mint, f.programID)
	require.NoError(t, err)

	assert.Equal(t, domain.MasterAgent{
		Authority:     authority,
		Mint:          mint,
		Price:         params.Price,
		WYield:        params.WYield,
		TradingStatus: domain.TradingStatusWhiteList,
		MaxSupply:     params.MaxSupply,
		AutoRelist:    true,
		CurrentTime:   fixedTime,
		Bump:          bump,
	}, *agent)

	metadata, err := f.mint.FindTokenMetadata(ctx, mint)
	require.NoError(t, err)
	assert.Equal(t, params.Name, metadata.Name)
	assert.Equal(t, params.URI, metadata.URI)
	assert.Equal(t, authority, metadata.Authority)
	assert.Equal(t, uint64(1), metadata.Supply)

	pending, err := f.multisig.Pending(ctx, domain.Digest{})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMintMasterAgentRepeatedSignerIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 2, nil)
	mint := solana.NewWallet().PublicKey()

	_, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, sampleParams()))
	require.NoError(t, err)

	_, err = f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, sampleParams()))
	assert.ErrorIs(t, err, domain.ErrorAlreadySigned)

	_, err = f.mint.FindMasterAgent(ctx, mint)
	assert.ErrorIs(t, err, domain.ErrorAccountNotFound)
}

func TestMintMasterAgentOutsiderIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 2, nil)
	params := sampleParams()

	outsider, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	digest, err := domain.InstructionDigest(domain.AdminInstructionDeployAgent, params)
	require.NoError(t, err)
	signer, err := domain.NewSigner(outsider, digest)
	require.NoError(t, err)

	_, err = f.mint.MintMasterAgent(ctx, MintMasterAgentRequest{Signer: signer, Params: params})
	assert.ErrorIs(t, err, domain.ErrorNotAuthorized)

	pending, err := f.multisig.Pending(ctx, domain.Digest{})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMintMasterAgentDifferentParamsStartFresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 2, nil)
	mint := solana.NewWallet().PublicKey()

	_, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, sampleParams()))
	require.NoError(t, err)

	other := sampleParams()
	other.URI = "https://example.com/agent2.json"
	remaining, err := f.mint.MintMasterAgent(ctx, f.request(t, 1, mint, other))
	require.NoError(t, err)
	assert.Equal(t, uint8(1), remaining)

	pending, err := f.multisig.Pending(ctx, domain.Digest{})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestMintMasterAgentResubmissionForExistingMint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 2, nil)
	mint := solana.NewWallet().PublicKey()
	params := sampleParams()

	_, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, params))
	require.NoError(t, err)
	_, err = f.mint.MintMasterAgent(ctx, f.request(t, 1, mint, params))
	require.NoError(t, err)

	// The approved digest is consumed, so the same params start a new approval.
	remaining, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, params))
	require.NoError(t, err)
	assert.Equal(t, uint8(1), remaining)

	_, err = f.mint.MintMasterAgent(ctx, f.request(t, 2, mint, params))
	assert.ErrorIs(t, err, domain.ErrorAlreadyInitialized)

	count, err := f.accounts.CountMasterAgents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMintMasterAgentTokenFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	tokens := &failingTokenProgram{}
	f := newFixture(t, 3, 2, tokens)
	mint := solana.NewWallet().PublicKey()
	params := sampleParams()

	_, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, params))
	require.NoError(t, err)

	_, err = f.mint.MintMasterAgent(ctx, f.request(t, 1, mint, params))
	assert.ErrorIs(t, err, domain.ErrorInvalidInstructionHash)
	assert.Equal(t, 1, tokens.calls)

	_, err = f.mint.FindMasterAgent(ctx, mint)
	assert.ErrorIs(t, err, domain.ErrorAccountNotFound)

	// The failed execution did not record the second signature.
	pending, err := f.multisig.Pending(ctx, domain.Digest{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint8(1), pending[0].Remaining)

	_, err = f.mint.MintMasterAgent(ctx, f.request(t, 1, mint, params))
	assert.ErrorIs(t, err, domain.ErrorInvalidInstructionHash)
	assert.Equal(t, 2, tokens.calls)
}

func TestMintMasterAgentInvalidParamsRollBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1, 1, nil)
	mint := solana.NewWallet().PublicKey()

	params := sampleParams()
	params.MaxSupply = 0
	_, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, mint, params))
	assert.ErrorIs(t, err, domain.ErrorInvalidParams)

	params = sampleParams()
	_, err = f.mint.MintMasterAgent(ctx, f.request(t, 0, solana.PublicKey{}, params))
	assert.ErrorIs(t, err, domain.ErrorInvalidParams)

	count, err := f.accounts.CountMasterAgents(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMintMasterAgentInvalidMetadata(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1, 1, nil)

	params := sampleParams()
	params.Symbol = "TOOLONGSYMBOL"
	_, err := f.mint.MintMasterAgent(ctx, f.request(t, 0, solana.NewWallet().PublicKey(), params))
	assert.ErrorIs(t, err, domain.ErrorInvalidInstructionHash)
}

func TestMintMasterAgentWithoutMultisig(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1, 1, nil)
	other := NewMintMasterAgentInteractor(f.accounts, fixedClock{time: fixedTime}, NewMetadataProgram(), solana.NewWallet().PublicKey())

	_, err := other.MintMasterAgent(ctx, f.request(t, 0, solana.NewWallet().PublicKey(), sampleParams()))
	assert.ErrorIs(t, err, domain.ErrorInvalidBump)
}

func TestMintMasterAgentClockFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1, 1, nil)
	clockErr := assert.AnError
	interactor := NewMintMasterAgentInteractor(f.accounts, fixedClock{err: clockErr}, NewMetadataProgram(), f.programID)

	_, err := interactor.MintMasterAgent(ctx, f.request(t, 0, solana.NewWallet().PublicKey(), sampleParams()))
	assert.ErrorIs(t, err, clockErr)

	multisig, err := f.multisig.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, multisig.Pending)
}

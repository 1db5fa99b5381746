package usecase

import (
	"context"
	"errors"
	"testing"

	"minter/domain"
	"minter/interface/repository"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

const fixedTime int64 = 1_700_000_000

type fixedClock struct {
	time int64
	err  error
}

func (c fixedClock) UnixTime(ctx context.Context) (int64, error) {
	return c.time, c.err
}

var errorTokenProgram = errors.New("token program failed")

type failingTokenProgram struct {
	calls int
}

func (p *failingTokenProgram) CreateMintAndMetadata(ctx context.Context, tx domain.AccountTx, req domain.MintRequest) error {
	p.calls++
	return errorTokenProgram
}

type fixture struct {
	accounts  *repository.MemoryAccounts
	programID solana.PublicKey
	keys      []solana.PrivateKey
	multisig  *MultisigInteractor
	mint      *MintMasterAgentInteractor
}

func newFixture(t *testing.T, signers int, threshold uint8, tokens TokenProgram) *fixture {
	t.Helper()

	f := &fixture{
		accounts:  repository.NewMemoryAccounts(),
		programID: solana.NewWallet().PublicKey(),
	}
	for i := 0; i < signers; i++ {
		key, err := solana.NewRandomPrivateKey()
		require.NoError(t, err)
		f.keys = append(f.keys, key)
	}

	if tokens == nil {
		tokens = NewMetadataProgram()
	}
	f.multisig = NewMultisigInteractor(f.accounts, f.programID)
	f.mint = NewMintMasterAgentInteractor(f.accounts, fixedClock{time: fixedTime}, tokens, f.programID)

	_, err := f.multisig.Setup(context.Background(), f.signerKeys(), threshold)
	require.NoError(t, err)
	return f
}

func (f *fixture) signerKeys() []solana.PublicKey {
	keys := make([]solana.PublicKey, len(f.keys))
	for i, key := range f.keys {
		keys[i] = key.PublicKey()
	}
	return keys
}

func (f *fixture) request(t *testing.T, signer int, mint solana.PublicKey, params domain.MintMasterAgentParams) MintMasterAgentRequest {
	t.Helper()

	digest, err := domain.InstructionDigest(domain.AdminInstructionDeployAgent, params)
	require.NoError(t, err)
	s, err := domain.NewSigner(f.keys[signer], digest)
	require.NoError(t, err)

	return MintMasterAgentRequest{Signer: s, Mint: mint, Params: params}
}

func sampleParams() domain.MintMasterAgentParams {
	return domain.MintMasterAgentParams{
		Name:                 "Agent1",
		Symbol:               "AGT",
		URI:                  "https://example.com/agent1.json",
		SellerFeeBasisPoints: 500,
		Price:                100,
		WYield:               250,
		MaxSupply:            1000,
	}
}

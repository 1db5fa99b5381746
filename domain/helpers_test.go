package domain

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func newPrivateKeys(t *testing.T, n int) []solana.PrivateKey {
	t.Helper()

	keys := make([]solana.PrivateKey, n)
	for i := range keys {
		key, err := solana.NewRandomPrivateKey()
		require.NoError(t, err)
		keys[i] = key
	}
	return keys
}

func publicKeys(keys []solana.PrivateKey) []solana.PublicKey {
	result := make([]solana.PublicKey, len(keys))
	for i, key := range keys {
		result[i] = key.PublicKey()
	}
	return result
}

func newProgramID(t *testing.T) solana.PublicKey {
	t.Helper()
	return newPrivateKeys(t, 1)[0].PublicKey()
}

func sampleParams() MintMasterAgentParams {
	return MintMasterAgentParams{
		Name:                 "Agent1",
		Symbol:               "AGT",
		URI:                  "https://example.com/agent1.json",
		SellerFeeBasisPoints: 500,
		Price:                100,
		WYield:               250,
		MaxSupply:            1000,
	}
}

func signWith(t *testing.T, key solana.PrivateKey, digest Digest) Signer {
	t.Helper()

	signer, err := NewSigner(key, digest)
	require.NoError(t, err)
	return signer
}

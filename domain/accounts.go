package domain

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// AccountStore holds the program accounts. Atomically runs fn as one transaction:
// its writes are committed together when fn returns nil and discarded otherwise.
type AccountStore interface {
	Atomically(ctx context.Context, fn func(tx AccountTx) error) error

	LoadMultisig(ctx context.Context, address solana.PublicKey) (*Multisig, error)
	FindMasterAgent(ctx context.Context, address solana.PublicKey) (*MasterAgent, error)
	FindTokenMetadata(ctx context.Context, mint solana.PublicKey) (*TokenMetadata, error)
	CountMasterAgents(ctx context.Context) (int, error)
}

// AccountTx is the view of the accounts inside one transaction.
type AccountTx interface {
	// Multisig returns ErrorAccountNotFound when no account exists at address.
	Multisig(address solana.PublicKey) (*Multisig, error)
	InitMultisig(m *Multisig) error
	PutMultisig(m *Multisig) error

	// InitMasterAgent fails with ErrorAlreadyInitialized when address is taken.
	InitMasterAgent(address solana.PublicKey, agent *MasterAgent) error
	InitTokenMetadata(metadata *TokenMetadata) error
}

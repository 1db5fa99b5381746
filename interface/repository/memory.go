package repository

import (
	"context"
	"sync"

	"minter/domain"

	"github.com/gagliardetto/solana-go"
)

// MemoryAccounts keeps the program accounts in process memory. Transactions are serialized
// and work on a copy of the state that replaces it only on success.
type MemoryAccounts struct {
	mu    sync.Mutex
	state memoryState
}

type memoryState struct {
	multisigs     map[solana.PublicKey]*domain.Multisig
	masterAgents  map[solana.PublicKey]domain.MasterAgent
	tokenMetadata map[solana.PublicKey]domain.TokenMetadata
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{
		state: memoryState{
			multisigs:     make(map[solana.PublicKey]*domain.Multisig),
			masterAgents:  make(map[solana.PublicKey]domain.MasterAgent),
			tokenMetadata: make(map[solana.PublicKey]domain.TokenMetadata),
		},
	}
}

func (s memoryState) clone() memoryState {
	c := memoryState{
		multisigs:     make(map[solana.PublicKey]*domain.Multisig, len(s.multisigs)),
		masterAgents:  make(map[solana.PublicKey]domain.MasterAgent, len(s.masterAgents)),
		tokenMetadata: make(map[solana.PublicKey]domain.TokenMetadata, len(s.tokenMetadata)),
	}
	for k, v := range s.multisigs {
		c.multisigs[k] = v.Clone()
	}
	for k, v := range s.masterAgents {
		c.masterAgents[k] = v
	}
	for k, v := range s.tokenMetadata {
		c.tokenMetadata[k] = v
	}
	return c
}

func (repo *MemoryAccounts) Atomically(ctx context.Context, fn func(tx domain.AccountTx) error) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{state: repo.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}

	repo.state = tx.state
	return nil
}

func (repo *MemoryAccounts) LoadMultisig(ctx context.Context, address solana.PublicKey) (*domain.Multisig, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	m, ok := repo.state.multisigs[address]
	if !ok {
		return nil, domain.ErrorAccountNotFound
	}
	return m.Clone(), nil
}

func (repo *MemoryAccounts) FindMasterAgent(ctx context.Context, address solana.PublicKey) (*domain.MasterAgent, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	agent, ok := repo.state.masterAgents[address]
	if !ok {
		return nil, domain.ErrorAccountNotFound
	}
	return &agent, nil
}

func (repo *MemoryAccounts) FindTokenMetadata(ctx context.Context, mint solana.PublicKey) (*domain.TokenMetadata, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	metadata, ok := repo.state.tokenMetadata[mint]
	if !ok {
		return nil, domain.ErrorAccountNotFound
	}
	return &metadata, nil
}

func (repo *MemoryAccounts) CountMasterAgents(ctx context.Context) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return len(repo.state.masterAgents), nil
}

type memoryTx struct {
	state memoryState
}

func (tx *memoryTx) Multisig(address solana.PublicKey) (*domain.Multisig, error) {
	m, ok := tx.state.multisigs[address]
	if !ok {
		return nil, domain.ErrorAccountNotFound
	}
	return m.Clone(), nil
}

func (tx *memoryTx) InitMultisig(m *domain.Multisig) error {
	if _, exist := tx.state.multisigs[m.Address]; exist {
		return domain.ErrorAlreadyInitialized
	}
	tx.state.multisigs[m.Address] = m.Clone()
	return nil
}

func (tx *memoryTx) PutMultisig(m *domain.Multisig) error {
	if _, exist := tx.state.multisigs[m.Address]; !exist {
		return domain.ErrorAccountNotFound
	}
	tx.state.multisigs[m.Address] = m.Clone()
	return nil
}

func (tx *memoryTx) InitMasterAgent(address solana.PublicKey, agent *domain.MasterAgent) error {
	if _, exist := tx.state.masterAgents[address]; exist {
		return domain.ErrorAlreadyInitialized
	}
	tx.state.masterAgents[address] = *agent
	return nil
}

func (tx *memoryTx) InitTokenMetadata(metadata *domain.TokenMetadata) error {
	if _, exist := tx.state.tokenMetadata[metadata.Mint]; exist {
		return domain.ErrorAlreadyInitialized
	}
	tx.state.tokenMetadata[metadata.Mint] = *metadata
	return nil
}

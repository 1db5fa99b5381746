package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"minter/domain"

	"github.com/behrang/sqlbatch"
	"github.com/gagliardetto/solana-go"
)

var (
	ErrorStaleAccount = fmt.Errorf("account changed by a concurrent transaction")
)

const (
	sqlMultisigFind = `
	select
		data, version
	from multisigs
	where address = $1
`

	sqlMultisigCount = `
	select count(*) from multisigs where address = $1
`

	sqlMultisigInsert = `
	insert into multisigs (
			address, data, version, update_time
		)
		values (
			$1, $2, 0, now()
		)
`

	sqlMultisigLockVersion = `
	select version from multisigs where address = $1 for update
`

	sqlMultisigUpdate = `
	update multisigs
		set data = $2, version = version + 1, update_time = now()
	where address = $1 and version = $3
`

	sqlMasterAgentCount = `
	select count(*) from master_agents where address = $1 or mint = $2
`

	sqlMasterAgentInsert = `
	insert into master_agents (
			address, authority, mint, price, w_yield, trading_status, max_supply, auto_relist, init_time, bump, create_time
		)
		values (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now()
		)
`

	sqlMasterAgentFind = `
	select
		authority, mint, price, w_yield, trading_status, max_supply, auto_relist, init_time, bump
	from master_agents
	where address = $1
`

	sqlMasterAgentCountAll = `
	select count(*) from master_agents
`

	sqlTokenMetadataCount = `
	select count(*) from token_metadata where mint = $1
`

	sqlTokenMetadataInsert = `
	insert into token_metadata (
			mint, authority, metadata, master_edition, token_account, name, symbol, uri, seller_fee_basis_points, decimals, supply, create_time
		)
		values (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now()
		)
`

	sqlTokenMetadataFind = `
	select
		mint, authority, metadata, master_edition, token_account, name, symbol, uri, seller_fee_basis_points, decimals, supply
	from token_metadata
	where mint = $1
`
)

// AccountRepository stores the program accounts in postgres.
type AccountRepository struct {
	batchHandler BatchHandler
	maxRetry     int
}

func NewAccountRepository(db BatchHandler, maxRetry int) *AccountRepository {
	return &AccountRepository{batchHandler: db, maxRetry: maxRetry}
}

type storedMultisig struct {
	data    []byte
	version int64
}

func readMultisig(scan func(...interface{}) error) (interface{}, error) {
	r := storedMultisig{}
	err := scan(&r.data, &r.version)
	return &r, err
}

func readMasterAgent(scan func(...interface{}) error) (interface{}, error) {
	var (
		authority, mint          string
		price, wYield, maxSupply int64
		status, bump             int16
		autoRelist               bool
		initTime                 int64
	)
	err := scan(&authority, &mint, &price, &wYield, &status, &maxSupply, &autoRelist, &initTime, &bump)
	if err != nil {
		return nil, err
	}

	r := domain.MasterAgent{
		Price:         uint64(price),
		WYield:        uint64(wYield),
		TradingStatus: domain.TradingStatus(status),
		MaxSupply:     uint64(maxSupply),
		AutoRelist:    autoRelist,
		CurrentTime:   initTime,
		Bump:          uint8(bump),
	}
	if r.Authority, err = solana.PublicKeyFromBase58(authority); err != nil {
		return nil, err
	}
	if r.Mint, err = solana.PublicKeyFromBase58(mint); err != nil {
		return nil, err
	}
	return &r, nil
}

func readTokenMetadata(scan func(...interface{}) error) (interface{}, error) {
	r := domain.TokenMetadata{}
	var (
		keys     [5]string
		fee      int32
		decimals int16
		supply   int64
	)
	err := scan(&keys[0], &keys[1], &keys[2], &keys[3], &keys[4], &r.Name, &r.Symbol, &r.URI, &fee, &decimals, &supply)
	if err != nil {
		return nil, err
	}

	targets := []*solana.PublicKey{&r.Mint, &r.Authority, &r.Metadata, &r.MasterEdition, &r.TokenAccount}
	for i, target := range targets {
		if *target, err = solana.PublicKeyFromBase58(keys[i]); err != nil {
			return nil, err
		}
	}
	r.SellerFeeBasisPoints = uint16(fee)
	r.Decimals = uint8(decimals)
	r.Supply = uint64(supply)
	return &r, nil
}

func readCount(scan func(...interface{}) error) (interface{}, error) {
	var count int64
	err := scan(&count)
	return count, err
}

// readAbsent guards an insert: it fails the batch when the account already exists.
func readAbsent(scan func(...interface{}) error) (interface{}, error) {
	var count int64
	if err := scan(&count); err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrorAlreadyInitialized
	}
	return count, nil
}

// readVersion guards an update: it fails the batch when the row moved past the expected version.
func readVersion(expected int64) func(scan func(...interface{}) error) (interface{}, error) {
	return func(scan func(...interface{}) error) (interface{}, error) {
		var version int64
		if err := scan(&version); err != nil {
			return nil, err
		}
		if version != expected {
			return nil, ErrorStaleAccount
		}
		return version, nil
	}
}

func (repo *AccountRepository) findOne(query string, args []interface{}, read func(scan func(...interface{}) error) (interface{}, error)) (interface{}, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   query,
			Args:    args,
			ReadOne: read,
		},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrorAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(results) == 0 || results[0] == nil {
		return nil, domain.ErrorAccountNotFound
	}
	return results[0], nil
}

func (repo *AccountRepository) findMultisig(address solana.PublicKey) (*domain.Multisig, int64, error) {
	result, err := repo.findOne(sqlMultisigFind, []interface{}{address.String()}, readMultisig)
	if err != nil {
		return nil, 0, err
	}

	stored, _ := result.(*storedMultisig)
	if stored == nil {
		return nil, 0, domain.ErrorAccountNotFound
	}

	m, err := domain.UnmarshalMultisigLayout(address, stored.data)
	if err != nil {
		return nil, 0, err
	}
	return m, stored.version, nil
}

func (repo *AccountRepository) LoadMultisig(ctx context.Context, address solana.PublicKey) (*domain.Multisig, error) {
	m, _, err := repo.findMultisig(address)
	return m, err
}

func (repo *AccountRepository) FindMasterAgent(ctx context.Context, address solana.PublicKey) (*domain.MasterAgent, error) {
	result, err := repo.findOne(sqlMasterAgentFind, []interface{}{address.String()}, readMasterAgent)
	if err != nil {
		return nil, err
	}
	agent, _ := result.(*domain.MasterAgent)
	if agent == nil {
		return nil, domain.ErrorAccountNotFound
	}
	return agent, nil
}

func (repo *AccountRepository) FindTokenMetadata(ctx context.Context, mint solana.PublicKey) (*domain.TokenMetadata, error) {
	result, err := repo.findOne(sqlTokenMetadataFind, []interface{}{mint.String()}, readTokenMetadata)
	if err != nil {
		return nil, err
	}
	metadata, _ := result.(*domain.TokenMetadata)
	if metadata == nil {
		return nil, domain.ErrorAccountNotFound
	}
	return metadata, nil
}

func (repo *AccountRepository) CountMasterAgents(ctx context.Context) (int, error) {
	result, err := repo.findOne(sqlMasterAgentCountAll, nil, readCount)
	if err != nil {
		return 0, err
	}
	count, _ := result.(int64)
	return int(count), nil
}

// Atomically runs fn against the stored accounts and writes everything it changed in one
// serializable batch. The whole run is repeated when the multisig changed underneath it.
func (repo *AccountRepository) Atomically(ctx context.Context, fn func(tx domain.AccountTx) error) error {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx := newAccountTx(repo)
		if err := fn(tx); err != nil {
			return err
		}

		commands, err := tx.commands()
		if err != nil {
			return err
		}
		if len(commands) == 0 {
			return nil
		}

		_, err = repo.batchHandler.Batch(&BatchOptionSerializable, commands)
		if errors.Is(err, ErrorStaleAccount) && attempt < repo.maxRetry {
			log.Printf("🟡 %v, retrying\n", err.Error())
			continue
		}
		return err
	}
}

type loadedMultisig struct {
	multisig *domain.Multisig
	version  int64
	created  bool
	dirty    bool
}

// accountTx reads through to the database and stages writes until commit.
type accountTx struct {
	repo      *AccountRepository
	multisigs map[solana.PublicKey]*loadedMultisig
	agents    map[solana.PublicKey]*domain.MasterAgent
	metadata  map[solana.PublicKey]*domain.TokenMetadata
	order     []sqlbatch.Command
}

func newAccountTx(repo *AccountRepository) *accountTx {
	return &accountTx{
		repo:      repo,
		multisigs: make(map[solana.PublicKey]*loadedMultisig),
		agents:    make(map[solana.PublicKey]*domain.MasterAgent),
		metadata:  make(map[solana.PublicKey]*domain.TokenMetadata),
	}
}

func (tx *accountTx) Multisig(address solana.PublicKey) (*domain.Multisig, error) {
	if loaded, ok := tx.multisigs[address]; ok {
		return loaded.multisig.Clone(), nil
	}

	m, version, err := tx.repo.findMultisig(address)
	if err != nil {
		return nil, err
	}

	tx.multisigs[address] = &loadedMultisig{multisig: m, version: version}
	return m.Clone(), nil
}

func (tx *accountTx) InitMultisig(m *domain.Multisig) error {
	if _, ok := tx.multisigs[m.Address]; ok {
		return domain.ErrorAlreadyInitialized
	}
	if _, err := tx.repo.findOne(sqlMultisigCount, []interface{}{m.Address.String()}, readAbsent); err != nil {
		return err
	}

	tx.multisigs[m.Address] = &loadedMultisig{multisig: m.Clone(), created: true, dirty: true}
	return nil
}

func (tx *accountTx) PutMultisig(m *domain.Multisig) error {
	loaded, ok := tx.multisigs[m.Address]
	if !ok {
		return fmt.Errorf("multisig %v was not loaded in this transaction", m.Address)
	}
	loaded.multisig = m.Clone()
	loaded.dirty = true
	return nil
}

func (tx *accountTx) InitMasterAgent(address solana.PublicKey, agent *domain.MasterAgent) error {
	if _, ok := tx.agents[address]; ok {
		return domain.ErrorAlreadyInitialized
	}
	if _, err := tx.repo.findOne(sqlMasterAgentCount, []interface{}{address.String(), agent.Mint.String()}, readAbsent); err != nil {
		return err
	}

	copied := *agent
	tx.agents[address] = &copied
	tx.order = append(tx.order,
		sqlbatch.Command{
			Query:   sqlMasterAgentCount,
			Args:    []interface{}{address.String(), agent.Mint.String()},
			ReadOne: readAbsent,
		},
		sqlbatch.Command{
			Query: sqlMasterAgentInsert,
			Args: []interface{}{
				address.String(), agent.Authority.String(), agent.Mint.String(),
				int64(agent.Price), int64(agent.WYield), int16(agent.TradingStatus), int64(agent.MaxSupply),
				agent.AutoRelist, agent.CurrentTime, int16(agent.Bump),
			},
			Affect: 1,
		})
	return nil
}

func (tx *accountTx) InitTokenMetadata(metadata *domain.TokenMetadata) error {
	if _, ok := tx.metadata[metadata.Mint]; ok {
		return domain.ErrorAlreadyInitialized
	}
	if _, err := tx.repo.findOne(sqlTokenMetadataCount, []interface{}{metadata.Mint.String()}, readAbsent); err != nil {
		return err
	}

	copied := *metadata
	tx.metadata[metadata.Mint] = &copied
	tx.order = append(tx.order,
		sqlbatch.Command{
			Query:   sqlTokenMetadataCount,
			Args:    []interface{}{metadata.Mint.String()},
			ReadOne: readAbsent,
		},
		sqlbatch.Command{
			Query: sqlTokenMetadataInsert,
			Args: []interface{}{
				metadata.Mint.String(), metadata.Authority.String(), metadata.Metadata.String(),
				metadata.MasterEdition.String(), metadata.TokenAccount.String(),
				metadata.Name, metadata.Symbol, metadata.URI,
				int32(metadata.SellerFeeBasisPoints), int16(metadata.Decimals), int64(metadata.Supply),
			},
			Affect: 1,
		})
	return nil
}

// commands returns the staged writes, multisig changes first.
func (tx *accountTx) commands() ([]sqlbatch.Command, error) {
	commands := make([]sqlbatch.Command, 0, len(tx.order)+2*len(tx.multisigs))

	for address, loaded := range tx.multisigs {
		if !loaded.dirty {
			continue
		}

		data, err := loaded.multisig.MarshalLayout()
		if err != nil {
			return nil, err
		}

		if loaded.created {
			commands = append(commands,
				sqlbatch.Command{
					Query:   sqlMultisigCount,
					Args:    []interface{}{address.String()},
					ReadOne: readAbsent,
				},
				sqlbatch.Command{
					Query:  sqlMultisigInsert,
					Args:   []interface{}{address.String(), data},
					Affect: 1,
				})
			continue
		}

		commands = append(commands,
			sqlbatch.Command{
				Query:   sqlMultisigLockVersion,
				Args:    []interface{}{address.String()},
				ReadOne: readVersion(loaded.version),
			},
			sqlbatch.Command{
				Query:  sqlMultisigUpdate,
				Args:   []interface{}{address.String(), data, loaded.version},
				Affect: 1,
			})
	}

	return append(commands, tx.order...), nil
}

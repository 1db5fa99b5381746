package domain

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

const (
	MaxAgentPrice  uint64 = 1_000_000_000_000_000_000
	MaxAgentWYield uint64 = 10_000
	MaxAgentSupply uint64 = 1_000_000
)

// TradingStatus controls who may buy editions of a master agent.
type TradingStatus uint8

const (
	// TradingStatusWhiteList admits listed buyers only. New agents start here.
	TradingStatusWhiteList TradingStatus = iota
	TradingStatusOpen
	TradingStatusPaused
	TradingStatusClosed
)

func (status TradingStatus) String() string {
	switch status {
	case TradingStatusWhiteList:
		return "WhiteList"
	case TradingStatusOpen:
		return "Open"
	case TradingStatusPaused:
		return "Paused"
	case TradingStatusClosed:
		return "Closed"
	default:
		return fmt.Sprintf("TradingStatus(%d)", uint8(status))
	}
}

func (status TradingStatus) IsValid() bool {
	return status <= TradingStatusClosed
}

// MasterAgent is the record created once per minted agent and kept for the life of the program.
type MasterAgent struct {
	Authority     solana.PublicKey `json:"authority"`
	Mint          solana.PublicKey `json:"mint"`
	Price         uint64           `json:"price"`
	WYield        uint64           `json:"w_yield"`
	TradingStatus TradingStatus    `json:"trading_status"`
	MaxSupply     uint64           `json:"max_supply"`
	AutoRelist    bool             `json:"auto_relist"`
	CurrentTime   int64            `json:"current_time"`
	Bump          uint8            `json:"bump"`
}

type MasterAgentInitParams struct {
	Authority     solana.PublicKey
	Mint          solana.PublicKey
	Price         uint64
	WYield        uint64
	TradingStatus TradingStatus
	MaxSupply     uint64
	AutoRelist    bool
	CurrentTime   int64
	Bump          uint8
}

func (agent *MasterAgent) IsInitialized() bool {
	return *agent != MasterAgent{}
}

func (agent *MasterAgent) Initialize(params MasterAgentInitParams) error {
	if agent.IsInitialized() {
		return ErrorAlreadyInitialized
	}

	*agent = MasterAgent{
		Authority:     params.Authority,
		Mint:          params.Mint,
		Price:         params.Price,
		WYield:        params.WYield,
		TradingStatus: params.TradingStatus,
		MaxSupply:     params.MaxSupply,
		AutoRelist:    params.AutoRelist,
		CurrentTime:   params.CurrentTime,
		Bump:          params.Bump,
	}
	return nil
}

// Validate must hold after every change to the record.
func (agent *MasterAgent) Validate() error {
	switch {
	case agent.Authority.IsZero():
		return fmt.Errorf("%w: authority is not set", ErrorInvalidParams)
	case agent.Mint.IsZero():
		return fmt.Errorf("%w: mint is not set", ErrorInvalidParams)
	case agent.Price > MaxAgentPrice:
		return fmt.Errorf("%w: price %v exceeds %v", ErrorInvalidParams, agent.Price, MaxAgentPrice)
	case agent.WYield > MaxAgentWYield:
		return fmt.Errorf("%w: w_yield %v exceeds %v", ErrorInvalidParams, agent.WYield, MaxAgentWYield)
	case agent.MaxSupply == 0 || agent.MaxSupply > MaxAgentSupply:
		return fmt.Errorf("%w: max_supply %v is outside 1..%v", ErrorInvalidParams, agent.MaxSupply, MaxAgentSupply)
	case !agent.TradingStatus.IsValid():
		return fmt.Errorf("%w: unknown trading status %v", ErrorInvalidParams, agent.TradingStatus)
	case agent.CurrentTime < 0:
		return fmt.Errorf("%w: negative timestamp %v", ErrorInvalidParams, agent.CurrentTime)
	}
	return nil
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInitParams(t *testing.T) MasterAgentInitParams {
	t.Helper()

	keys := publicKeys(newPrivateKeys(t, 2))
	return MasterAgentInitParams{
		Authority:     keys[0],
		Mint:          keys[1],
		Price:         100,
		WYield:        250,
		TradingStatus: TradingStatusWhiteList,
		MaxSupply:     1000,
		AutoRelist:    true,
		CurrentTime:   1_700_000_000,
		Bump:          254,
	}
}

func TestMasterAgentInitialize(t *testing.T) {
	params := sampleInitParams(t)

	var agent MasterAgent
	assert.False(t, agent.IsInitialized())

	require.NoError(t, agent.Initialize(params))
	assert.True(t, agent.IsInitialized())
	assert.Equal(t, params.Mint, agent.Mint)
	assert.Equal(t, TradingStatusWhiteList, agent.TradingStatus)
	assert.True(t, agent.AutoRelist)
	assert.NoError(t, agent.Validate())

	before := agent
	params.Price = 1
	assert.ErrorIs(t, agent.Initialize(params), ErrorAlreadyInitialized)
	assert.Equal(t, before, agent)
}

func TestMasterAgentValidate(t *testing.T) {
	cases := map[string]func(a *MasterAgent){
		"no authority":   func(a *MasterAgent) { a.Authority = [32]byte{} },
		"no mint":        func(a *MasterAgent) { a.Mint = [32]byte{} },
		"price":          func(a *MasterAgent) { a.Price = MaxAgentPrice + 1 },
		"w_yield":        func(a *MasterAgent) { a.WYield = MaxAgentWYield + 1 },
		"zero supply":    func(a *MasterAgent) { a.MaxSupply = 0 },
		"supply":         func(a *MasterAgent) { a.MaxSupply = MaxAgentSupply + 1 },
		"trading status": func(a *MasterAgent) { a.TradingStatus = TradingStatusClosed + 1 },
		"negative time":  func(a *MasterAgent) { a.CurrentTime = -1 },
	}

	for name, change := range cases {
		t.Run(name, func(t *testing.T) {
			var agent MasterAgent
			require.NoError(t, agent.Initialize(sampleInitParams(t)))
			change(&agent)
			assert.ErrorIs(t, agent.Validate(), ErrorInvalidParams)
		})
	}
}

func TestMasterAgentValidateLimits(t *testing.T) {
	var agent MasterAgent
	require.NoError(t, agent.Initialize(sampleInitParams(t)))

	agent.Price = MaxAgentPrice
	agent.WYield = MaxAgentWYield
	agent.MaxSupply = MaxAgentSupply
	agent.TradingStatus = TradingStatusClosed
	assert.NoError(t, agent.Validate())
}

func TestTradingStatusString(t *testing.T) {
	assert.Equal(t, "WhiteList", TradingStatusWhiteList.String())
	assert.Equal(t, "Open", TradingStatusOpen.String())
	assert.Equal(t, "Paused", TradingStatusPaused.String())
	assert.Equal(t, "Closed", TradingStatusClosed.String())
	assert.Equal(t, "TradingStatus(9)", TradingStatus(9).String())
}

package networks

import (
	"time"
)

var Baklava Network = NewBaklava()

type baklava struct{}

func NewBaklava() *baklava {
	return &baklava{}
}

func (self *baklava) GetName() string {
	return "baklava"
}

func (self *baklava) GetChainID() uint64 {
	return 62320
}

func (self *baklava) GetAlternativeNames() []string {
	return []string{"celo-baklava"}
}

func (self *baklava) GetNativeTokenSymbol() string {
	return "CELO"
}

func (self *baklava) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *baklava) GetBlockTime() time.Duration {
	return 5 * time.Second
}

func (self *baklava) GetNodeVariableName() string {
	return "CELO_BAKLAVA_NODE"
}

func (self *baklava) GetDefaultNodes() map[string]string {
	return map[string]string{
		"baklava-forno": "https://baklava-forno.celo-testnet.org",
	}
}

func (self *baklava) GetBlockExplorerURL() string {
	return "https://baklava-blockscout.celo-testnet.org"
}

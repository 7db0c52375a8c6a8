package networks

import (
	"time"
)

var CeloMainnet Network = NewCeloMainnet()

type celoMainnet struct{}

func NewCeloMainnet() *celoMainnet {
	return &celoMainnet{}
}

func (self *celoMainnet) GetName() string {
	return "mainnet"
}

func (self *celoMainnet) GetChainID() uint64 {
	return 42220
}

func (self *celoMainnet) GetAlternativeNames() []string {
	return []string{"celo", "celo-mainnet"}
}

func (self *celoMainnet) GetNativeTokenSymbol() string {
	return "CELO"
}

func (self *celoMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *celoMainnet) GetBlockTime() time.Duration {
	return 5 * time.Second
}

func (self *celoMainnet) GetNodeVariableName() string {
	return "CELO_MAINNET_NODE"
}

func (self *celoMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"forno": "https://forno.celo.org",
	}
}

func (self *celoMainnet) GetBlockExplorerURL() string {
	return "https://celoscan.io"
}

package networks

import (
	"time"
)

var Alfajores Network = NewAlfajores()

type alfajores struct{}

func NewAlfajores() *alfajores {
	return &alfajores{}
}

func (self *alfajores) GetName() string {
	return "alfajores"
}

func (self *alfajores) GetChainID() uint64 {
	return 44787
}

func (self *alfajores) GetAlternativeNames() []string {
	return []string{"celo-alfajores"}
}

func (self *alfajores) GetNativeTokenSymbol() string {
	return "CELO"
}

func (self *alfajores) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *alfajores) GetBlockTime() time.Duration {
	return 5 * time.Second
}

func (self *alfajores) GetNodeVariableName() string {
	return "CELO_ALFAJORES_NODE"
}

func (self *alfajores) GetDefaultNodes() map[string]string {
	return map[string]string{
		"alfajores-forno": "https://alfajores-forno.celo-testnet.org",
	}
}

func (self *alfajores) GetBlockExplorerURL() string {
	return "https://alfajores.celoscan.io"
}

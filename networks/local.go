package networks

import (
	"time"
)

var Local Network = NewLocal()

type local struct{}

func NewLocal() *local {
	return &local{}
}

func (self *local) GetName() string {
	return "local"
}

func (self *local) GetChainID() uint64 {
	return 1337
}

func (self *local) GetAlternativeNames() []string {
	return []string{"localhost", "devchain"}
}

func (self *local) GetNativeTokenSymbol() string {
	return "CELO"
}

func (self *local) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *local) GetBlockTime() time.Duration {
	return 1 * time.Second
}

func (self *local) GetNodeVariableName() string {
	return "CELO_LOCAL_NODE"
}

func (self *local) GetDefaultNodes() map[string]string {
	return map[string]string{
		"localhost": "http://localhost:8545",
	}
}

func (self *local) GetBlockExplorerURL() string {
	return ""
}

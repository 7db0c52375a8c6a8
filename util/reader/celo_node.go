package reader

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// CeloNode is a single JSON-RPC endpoint contract reads can be served from.
type CeloNode interface {
	NodeName() string
	NodeURL() string
	ReadContractToBytes(
		atBlock int64,
		from string,
		caddr string,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
}

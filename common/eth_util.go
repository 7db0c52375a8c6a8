package common

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// GetERC20ABI returns the parsed EIP-20 token ABI. The underlying JSON is a
// compile time constant so parsing cannot fail.
func GetERC20ABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(erc20abi))
	return &result
}

// GetRegistryABI returns the parsed ABI of the Celo core registry.
func GetRegistryABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(registryabi))
	return &result
}

// GetExchangeABI returns the parsed ABI of the Mento exchange.
func GetExchangeABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(exchangeabi))
	return &result
}

func HexToAddress(addr string) common.Address {
	return common.HexToAddress(addr)
}

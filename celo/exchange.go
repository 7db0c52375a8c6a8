package celo

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	celocommon "github.com/celo-tools/celophane/common"
	"github.com/celo-tools/celophane/util/reader"
)

// Exchange is a handle on the Mento exchange between CELO and cUSD.
type Exchange struct {
	Identifier string
	Address    common.Address

	reader *reader.CeloReader
}

func GetExchange(r *reader.CeloReader) (*Exchange, error) {
	addr, err := NewRegistry(r).AddressFor(ExchangeID)
	if err != nil {
		return nil, err
	}
	return &Exchange{
		Identifier: ExchangeID,
		Address:    addr,
		reader:     r,
	}, nil
}

// BuyTokenAmount quotes how much of the buy token selling sellAmount buys.
// sellGold true sells CELO for cUSD, false sells cUSD for CELO.
func (self *Exchange) BuyTokenAmount(sellAmount *big.Int, sellGold bool) (*big.Int, error) {
	var res *big.Int
	err := self.reader.ReadContractWithABI(
		&res,
		self.Address.Hex(),
		celocommon.GetExchangeABI(),
		"getBuyTokenAmount",
		sellAmount,
		sellGold,
	)
	if err != nil {
		direction := "CELO => cUSD"
		if !sellGold {
			direction = "cUSD => CELO"
		}
		return nil, fmt.Errorf("couldn't quote %s: %w", direction, err)
	}
	return res, nil
}

package celo

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/celo-tools/celophane/util/reader"
)

// Token is a registry-resolved ERC20 handle. Handles are constructed fresh
// per command run and never cached, so each run sees the registry's current
// state.
type Token struct {
	Symbol     string
	Identifier string
	Address    common.Address

	reader *reader.CeloReader
}

func getToken(r *reader.CeloReader, symbol, identifier string) (*Token, error) {
	addr, err := NewRegistry(r).AddressFor(identifier)
	if err != nil {
		return nil, err
	}
	return &Token{
		Symbol:     symbol,
		Identifier: identifier,
		Address:    addr,
		reader:     r,
	}, nil
}

// GetGoldToken returns the CELO handle. CELO balances are read through the
// GoldToken contract like any other ERC20, not via eth_getBalance.
func GetGoldToken(r *reader.CeloReader) (*Token, error) {
	return getToken(r, "CELO", GoldTokenID)
}

// GetStableToken returns the cUSD handle.
func GetStableToken(r *reader.CeloReader) (*Token, error) {
	return getToken(r, "cUSD", StableTokenID)
}

// GetStableTokenEUR returns the cEUR handle.
func GetStableTokenEUR(r *reader.CeloReader) (*Token, error) {
	return getToken(r, "cEUR", StableTokenEURID)
}

// BalanceOf reads the holder's balance in the token's smallest unit. When
// the token's identifier was missing from the registry the handle points at
// the zero address, which has no code, and the read fails on unpacking the
// empty result.
func (self *Token) BalanceOf(holder string) (*big.Int, error) {
	return self.reader.ERC20Balance(self.Address.Hex(), holder)
}

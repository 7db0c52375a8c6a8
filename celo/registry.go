package celo

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sahilm/fuzzy"

	celocommon "github.com/celo-tools/celophane/common"
	"github.com/celo-tools/celophane/util/reader"
)

// RegistryAddress is the registry's well-known address, identical on every
// Celo network.
const RegistryAddress = "0x000000000000000000000000000000000000ce10"

// Registry identifiers of the core contracts celophane reads directly.
const (
	GoldTokenID      = "GoldToken"
	StableTokenID    = "StableToken"
	StableTokenEURID = "StableTokenEUR"
	ExchangeID       = "Exchange"
)

// RegistryIDs is the canonical set of core contract identifiers, in the
// order listings display them.
var RegistryIDs = []string{
	"Accounts",
	"Attestations",
	"BlockchainParameters",
	"DoubleSigningSlasher",
	"DowntimeSlasher",
	"Election",
	"EpochRewards",
	"Escrow",
	"Exchange",
	"ExchangeEUR",
	"FeeCurrencyWhitelist",
	"Freezer",
	"GasPriceMinimum",
	"GoldToken",
	"Governance",
	"GovernanceSlasher",
	"GrandaMento",
	"LockedGold",
	"Random",
	"Reserve",
	"SortedOracles",
	"StableToken",
	"StableTokenEUR",
	"Validators",
}

// Registry resolves human-readable contract identifiers through the on-chain
// registry. Resolution is a single eth_call with no caching and no retries.
type Registry struct {
	reader *reader.CeloReader
}

func NewRegistry(r *reader.CeloReader) *Registry {
	return &Registry{reader: r}
}

// AddressFor resolves identifier via getAddressForString. An identifier the
// registry does not know yields the zero address rather than an error; the
// failure then surfaces on whatever call is made against that address.
// Callers that want to report the miss itself check IsZeroAddress.
func (self *Registry) AddressFor(identifier string) (common.Address, error) {
	var res common.Address
	err := self.reader.ReadContractWithABI(
		&res,
		RegistryAddress,
		celocommon.GetRegistryABI(),
		"getAddressForString",
		identifier,
	)
	if err != nil {
		return common.Address{}, fmt.Errorf("couldn't resolve %s: %w", identifier, err)
	}
	return res, nil
}

// IsZeroAddress reports whether addr is the zero address, the registry's way
// of saying "not registered".
func IsZeroAddress(addr common.Address) bool {
	return addr.Big().Cmp(big.NewInt(0)) == 0
}

// MatchIdentifier maps user input to canonical registry identifiers: an
// exact case-insensitive hit wins, otherwise fuzzy matches ranked
// best-first. An empty result means the input resembles nothing known.
func MatchIdentifier(input string) []string {
	for _, id := range RegistryIDs {
		if strings.EqualFold(input, id) {
			return []string{id}
		}
	}
	matches := fuzzy.Find(input, RegistryIDs)
	res := []string{}
	for _, m := range matches {
		res = append(res, m.Str)
	}
	return res
}

package cmd

import (
	"math/big"
	"reflect"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/celo-tools/celophane/config"
	"github.com/celo-tools/celophane/ui"
	"github.com/celo-tools/celophane/util/reader"
	"github.com/celo-tools/celophane/util/testnode"
)

const holder = "0x1E4e2b4068601e4BdB9b2AAa6a0ECba1B6abbE22"

func newChainAndReader(t *testing.T) (*testnode.TestNode, *reader.CeloReader) {
	t.Helper()
	node := testnode.NewCeloChain()
	t.Cleanup(node.Close)
	return node, reader.NewCeloReader(map[string]string{"mock": node.URL()})
}

func TestShowBalancesPrintsAllTokensInOrder(t *testing.T) {
	node, r := newChainAndReader(t)
	node.SetBalance(testnode.GoldTokenAddr, common.HexToAddress(holder), big.NewInt(100))
	node.SetBalance(testnode.StableTokenAddr, common.HexToAddress(holder), big.NewInt(200))

	u := ui.NewRecordingUI()
	if err := showBalances(u, r, holder); err != nil {
		t.Fatalf("expected balances to print, got: %s", err)
	}

	expected := []string{
		"All balances expressed in units of 10^-18.",
		"CELO: 100",
		"cUSD: 200",
		"cEUR: 0",
	}
	if !reflect.DeepEqual(u.InfoMessages(), expected) {
		t.Errorf("expected %v, got %v", expected, u.InfoMessages())
	}
}

func TestShowBalancesZeroHoldings(t *testing.T) {
	_, r := newChainAndReader(t)

	u := ui.NewRecordingUI()
	if err := showBalances(u, r, holder); err != nil {
		t.Fatalf("expected zero balances to print, got: %s", err)
	}

	expected := []string{
		"All balances expressed in units of 10^-18.",
		"CELO: 0",
		"cUSD: 0",
		"cEUR: 0",
	}
	if !reflect.DeepEqual(u.InfoMessages(), expected) {
		t.Errorf("expected %v, got %v", expected, u.InfoMessages())
	}
}

func TestShowBalancesOmitsUnresolvableToken(t *testing.T) {
	node, r := newChainAndReader(t)
	node.RemoveRegistryEntry("StableToken")
	node.SetBalance(testnode.GoldTokenAddr, common.HexToAddress(holder), big.NewInt(7))

	u := ui.NewRecordingUI()
	if err := showBalances(u, r, holder); err != nil {
		t.Fatalf("a missing token must not fail the command, got: %s", err)
	}

	expected := []string{
		"All balances expressed in units of 10^-18.",
		"CELO: 7",
		"cEUR: 0",
	}
	if !reflect.DeepEqual(u.InfoMessages(), expected) {
		t.Errorf("expected %v, got %v", expected, u.InfoMessages())
	}
	if u.HasMessage("cUSD") {
		t.Errorf("the unresolvable token must be absent from the output")
	}
}

func TestBalanceRejectsInvalidAddressBeforeAnyNetworkCall(t *testing.T) {
	node := testnode.NewCeloChain()
	t.Cleanup(node.Close)
	defer func(old string) { config.Endpoint = old }(config.Endpoint)
	config.Endpoint = node.URL()

	err := balanceCmd.RunE(balanceCmd, []string{"not-an-address"})
	if err == nil {
		t.Fatalf("expected an invalid address to be rejected")
	}
	if !strings.Contains(err.Error(), "not a valid hex address") {
		t.Errorf("unexpected error: %s", err)
	}
	if node.RequestCount() != 0 {
		t.Errorf("no network call should happen for an invalid address, got %d", node.RequestCount())
	}
}

func TestBalanceRejectsUnsupportedEndpointScheme(t *testing.T) {
	defer func(old string) { config.Endpoint = old }(config.Endpoint)
	config.Endpoint = "ftp://localhost:8545"

	err := balanceCmd.RunE(balanceCmd, []string{holder})
	if err == nil {
		t.Fatalf("expected the ftp endpoint to be rejected")
	}
	if !strings.Contains(err.Error(), "unsupported url scheme: ftp") {
		t.Errorf("expected the scheme error, got: %s", err)
	}
}

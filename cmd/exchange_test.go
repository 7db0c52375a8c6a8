package cmd

import (
	"math/big"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/celo-tools/celophane/config"
	"github.com/celo-tools/celophane/ui"
)

func TestShowQuotesBothDirectionsInFixedOrder(t *testing.T) {
	node, r := newChainAndReader(t)
	node.SetQuote(func(sellAmount *big.Int, sellGold bool) *big.Int {
		if sellGold {
			return new(big.Int).Mul(sellAmount, big.NewInt(2))
		}
		return new(big.Int).Div(sellAmount, big.NewInt(2))
	})

	u := ui.NewRecordingUI()
	amount, _ := new(big.Int).SetString("1000000000000000000", 10)
	if err := showQuotes(u, r, amount); err != nil {
		t.Fatalf("expected quotes to print, got: %s", err)
	}

	expected := []string{
		"1000000000000000000 CELO => 2000000000000000000 cUSD",
		"1000000000000000000 cUSD => 500000000000000000 CELO",
	}
	if !reflect.DeepEqual(u.InfoMessages(), expected) {
		t.Errorf("expected %v, got %v", expected, u.InfoMessages())
	}
}

func TestShowQuotesZeroAmount(t *testing.T) {
	_, r := newChainAndReader(t)

	u := ui.NewRecordingUI()
	if err := showQuotes(u, r, big.NewInt(0)); err != nil {
		t.Fatalf("expected zero quotes to print, got: %s", err)
	}

	expected := []string{
		"0 CELO => 0 cUSD",
		"0 cUSD => 0 CELO",
	}
	if !reflect.DeepEqual(u.InfoMessages(), expected) {
		t.Errorf("expected %v, got %v", expected, u.InfoMessages())
	}
}

func TestShowQuotesIndependentOfAnswerOrder(t *testing.T) {
	node, r := newChainAndReader(t)
	node.SetQuote(func(sellAmount *big.Int, sellGold bool) *big.Int {
		if sellGold {
			// the direction printed first answers last
			time.Sleep(150 * time.Millisecond)
			return big.NewInt(111)
		}
		return big.NewInt(222)
	})

	u := ui.NewRecordingUI()
	if err := showQuotes(u, r, big.NewInt(5)); err != nil {
		t.Fatalf("expected quotes to print, got: %s", err)
	}

	expected := []string{
		"5 CELO => 111 cUSD",
		"5 cUSD => 222 CELO",
	}
	if !reflect.DeepEqual(u.InfoMessages(), expected) {
		t.Errorf("expected %v, got %v", expected, u.InfoMessages())
	}
}

func TestShowQuotesFailureIsFatal(t *testing.T) {
	node, r := newChainAndReader(t)
	node.RemoveRegistryEntry("Exchange")

	u := ui.NewRecordingUI()
	err := showQuotes(u, r, big.NewInt(1))
	if err == nil {
		t.Fatalf("expected quoting against an unregistered exchange to fail")
	}
	if len(u.InfoMessages()) != 0 {
		t.Errorf("no quotes should print when quoting fails, got %v", u.InfoMessages())
	}
}

func TestExchangeShowValidatesAmount(t *testing.T) {
	defer func(old string) { config.Amount = old }(config.Amount)

	config.Amount = "abc"
	if err := exchangeShowCmd.RunE(exchangeShowCmd, nil); err == nil {
		t.Errorf("expected a non-integer amount to be rejected")
	}

	config.Amount = "-5"
	err := exchangeShowCmd.RunE(exchangeShowCmd, nil)
	if err == nil {
		t.Fatalf("expected a negative amount to be rejected")
	}
	if !strings.Contains(err.Error(), "must not be negative") {
		t.Errorf("unexpected error: %s", err)
	}
}

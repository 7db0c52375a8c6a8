package cmd

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/celo-tools/celophane/celo"
	celocommon "github.com/celo-tools/celophane/common"
	"github.com/celo-tools/celophane/ui"
	"github.com/celo-tools/celophane/util/reader"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Read accounts on the Celo network",
	Long:  ``,
}

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show CELO, cUSD and cEUR balances of an address",
	Long: `Shows the core token balances of an address in units of 10^-18. CELO is
read through the GoldToken contract like the stable tokens, so all three
reads go through the registry. A token that can't be resolved or read is
left out of the output; run with --debug to see why.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := args[0]
		if !common.IsHexAddress(address) {
			return fmt.Errorf("%s is not a valid hex address", address)
		}
		r, err := celoReader(cmd)
		if err != nil {
			return err
		}
		return showBalances(ui.NewTerminalUI(), r, address)
	},
}

type tokenGetter func(*reader.CeloReader) (*celo.Token, error)

type tokenBalanceResult struct {
	Symbol  string
	Balance *big.Int
	Error   error
}

// showBalances queries the three core tokens concurrently and prints the
// balances in fixed token order. A token whose resolution or read failed is
// omitted from the output on purpose; --debug traces the suppressed
// failures.
func showBalances(u ui.UI, r *reader.CeloReader, address string) error {
	getters := []struct {
		Symbol string
		Get    tokenGetter
	}{
		{"CELO", celo.GetGoldToken},
		{"cUSD", celo.GetStableToken},
		{"cEUR", celo.GetStableTokenEUR},
	}

	resCh := make(chan tokenBalanceResult, len(getters))
	for i := range getters {
		g := getters[i]
		go func() {
			token, err := g.Get(r)
			if err != nil {
				resCh <- tokenBalanceResult{Symbol: g.Symbol, Error: err}
				return
			}
			balance, err := token.BalanceOf(address)
			resCh <- tokenBalanceResult{Symbol: g.Symbol, Balance: balance, Error: err}
		}()
	}

	results := map[string]tokenBalanceResult{}
	for i := 0; i < len(getters); i++ {
		result := <-resCh
		results[result.Symbol] = result
	}

	u.Info("All balances expressed in units of 10^-18.")
	for _, g := range getters {
		result := results[g.Symbol]
		if result.Error != nil {
			celocommon.DebugPrintf("%s balance suppressed: %s\n", g.Symbol, result.Error)
			continue
		}
		u.Info("%s: %s", g.Symbol, result.Balance)
	}
	return nil
}

func init() {
	accountCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(accountCmd)
}

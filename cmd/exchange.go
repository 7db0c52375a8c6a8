package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/celo-tools/celophane/celo"
	celocommon "github.com/celo-tools/celophane/common"
	"github.com/celo-tools/celophane/config"
	"github.com/celo-tools/celophane/ui"
	"github.com/celo-tools/celophane/util/reader"
)

var exchangeCmd = &cobra.Command{
	Use:   "exchange",
	Short: "Read the Mento exchange between CELO and cUSD",
	Long:  ``,
}

var exchangeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current quotes in both directions",
	Long: `Quotes how much the exchange pays for selling --amount of CELO and for
selling --amount of cUSD. Amounts are raw integers in units of 10^-18 of
the sold token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := celocommon.StringToBigInt(config.Amount)
		if err != nil {
			return err
		}
		if amount.Sign() < 0 {
			return fmt.Errorf("--amount must not be negative, got %s", amount)
		}
		r, err := celoReader(cmd)
		if err != nil {
			return err
		}
		return showQuotes(ui.NewTerminalUI(), r, amount)
	},
}

type quoteResult struct {
	SellGold bool
	Buy      *big.Int
	Error    error
}

// showQuotes quotes both directions concurrently and prints them in fixed
// order, CELO => cUSD first. Unlike balances, a failed quote fails the
// whole command.
func showQuotes(u ui.UI, r *reader.CeloReader, amount *big.Int) error {
	exchange, err := celo.GetExchange(r)
	if err != nil {
		return err
	}

	resCh := make(chan quoteResult, 2)
	for _, sellGold := range []bool{true, false} {
		go func(sellGold bool) {
			buy, err := exchange.BuyTokenAmount(amount, sellGold)
			resCh <- quoteResult{SellGold: sellGold, Buy: buy, Error: err}
		}(sellGold)
	}

	results := map[bool]quoteResult{}
	for i := 0; i < 2; i++ {
		result := <-resCh
		results[result.SellGold] = result
	}

	for _, sellGold := range []bool{true, false} {
		if results[sellGold].Error != nil {
			return results[sellGold].Error
		}
	}

	u.Info("%s CELO => %s cUSD", amount, results[true].Buy)
	u.Info("%s cUSD => %s CELO", amount, results[false].Buy)
	return nil
}

func init() {
	exchangeShowCmd.Flags().StringVarP(&config.Amount, "amount", "a", "1000000000000000000", "amount to quote, in units of 10^-18 of the sold token")
	exchangeCmd.AddCommand(exchangeShowCmd)
	rootCmd.AddCommand(exchangeCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/celo-tools/celophane/networks"
	"github.com/celo-tools/celophane/ui"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the Celo networks celophane supports",
	Long:  ``,
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		listNetworks(ui.NewTerminalUI())
	},
}

func listNetworks(u ui.UI) {
	for i, n := range networks.GetSupportedNetworks() {
		u.Info("%d. %s", i+1, n.GetName())

		child := u.Indent()
		rows := [][2]string{
			{"Chain ID", fmt.Sprintf("%d", n.GetChainID())},
			{"Native token", fmt.Sprintf("%s (10^%d)", n.GetNativeTokenSymbol(), n.GetNativeTokenDecimal())},
			{"Block time", n.GetBlockTime().String()},
			{"Node env var", n.GetNodeVariableName()},
		}
		if alts := n.GetAlternativeNames(); len(alts) > 0 {
			rows = append(rows, [2]string{"Also known as", strings.Join(alts, ", ")})
		}
		if explorer := n.GetBlockExplorerURL(); explorer != "" {
			rows = append(rows, [2]string{"Explorer", explorer})
		}
		child.KeyValue(rows)

		child.Info("RPC nodes:")
		w := child.Indent().Writer()
		for name, node := range networks.GetNodes(n) {
			fmt.Fprintf(w, "- %s: %s\n", name, node)
		}
	}
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}

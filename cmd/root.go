package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/celo-tools/celophane/config"
	"github.com/celo-tools/celophane/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "celophane",
	Short: "Read Celo balances, core contracts and Mento exchange rates",
	Long: fmt.Sprintf(`Celophane is a command line tool to read the Celo blockchain: core token
balances of an account, the core contract registry and the Mento exchange
between CELO and cUSD.

By default celophane talks to a local node at %s. Use --endpoint
to point it at any http(s) or ws(s) JSON-RPC endpoint, or --network to use
the public nodes of a known network:
	1. For mainnet: it uses forno.celo.org
	2. For alfajores: it uses alfajores-forno.celo-testnet.org
	3. For baklava: it uses baklava-forno.celo-testnet.org
	4. For local: it uses localhost:8545
You can add your custom node to a network by setting the following env vars:
	1. For mainnet: %s
	2. For alfajores: %s
	3. For baklava: %s
	4. For local: %s

Note: celophane will only check if the env vars are not empty and take the
env vars blindly, it will not check if it is a valid url or not, the error
will pop up during its command execution instead.`,
		DefaultEndpoint,
		networks.CeloMainnet.GetNodeVariableName(),
		networks.Alfajores.GetNodeVariableName(),
		networks.Baklava.GetNodeVariableName(),
		networks.Local.GetNodeVariableName(),
	),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Endpoint, "endpoint", "e", DefaultEndpoint, "JSON-RPC endpoint of a Celo node. Supported schemes: http, https, ws, wss.")
	rootCmd.PersistentFlags().StringVarP(&config.NetworkString, "network", "k", "", "celo network. Valid values: \"mainnet\", \"alfajores\", \"baklava\", \"local\". Ignored when --endpoint is set explicitly.")
	rootCmd.PersistentFlags().BoolVarP(&config.Debug, "debug", "d", false, "print debug traces, including suppressed per-token read failures")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

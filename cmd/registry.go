package cmd

import (
	"fmt"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/celo-tools/celophane/celo"
	celocommon "github.com/celo-tools/celophane/common"
	"github.com/celo-tools/celophane/ui"
	"github.com/celo-tools/celophane/util/reader"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the Celo core contract registry",
	Long:  ``,
}

var registryLookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve a core contract name to its address",
	Long: `Resolves a contract name through the on-chain registry. Names that don't
match a canonical core contract exactly are corrected with fuzzy matching
first, so "goldtok" finds GoldToken.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := celoReader(cmd)
		if err != nil {
			return err
		}
		return lookupRegistry(ui.NewTerminalUI(), r, args[0])
	},
}

func lookupRegistry(u ui.UI, r *reader.CeloReader, name string) error {
	identifier := name
	matches := celo.MatchIdentifier(name)
	switch {
	case len(matches) == 0:
		u.Warn("%s doesn't match any known core contract, querying it as is", name)
	case matches[0] != name:
		identifier = matches[0]
		u.Info("Interpreting %s as %s", name, identifier)
	}

	addr, err := celo.NewRegistry(r).AddressFor(identifier)
	if err != nil {
		return err
	}
	if celo.IsZeroAddress(addr) {
		u.Warn("%s is not registered: the registry resolves unknown names to the zero address", identifier)
		return nil
	}
	u.Success("%s: %s", identifier, addr.Hex())
	return nil
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Resolve and list all core contracts",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := celoReader(cmd)
		if err != nil {
			return err
		}
		return listRegistry(ui.NewTerminalUI(), r)
	},
}

type registryEntryResult struct {
	Identifier string
	Address    gethcommon.Address
	Error      error
}

// listRegistry resolves every canonical identifier concurrently and renders
// the results as one table in canonical order.
func listRegistry(u ui.UI, r *reader.CeloReader) error {
	stop := u.Spinner(fmt.Sprintf("Resolving %d core contracts...", len(celo.RegistryIDs)))

	registry := celo.NewRegistry(r)
	results := make([]registryEntryResult, len(celo.RegistryIDs))
	parallelTasks := []func() error{}
	for i := range celo.RegistryIDs {
		i := i
		id := celo.RegistryIDs[i]
		parallelTasks = append(parallelTasks, func() error {
			addr, err := registry.AddressFor(id)
			results[i] = registryEntryResult{Identifier: id, Address: addr, Error: err}
			return err
		})
	}
	_, failed := celocommon.RunParallel(parallelTasks...)
	stop()

	rows := [][]string{}
	for _, result := range results {
		switch {
		case result.Error != nil:
			rows = append(rows, []string{result.Identifier, u.Style(ui.StyledText{Text: "read failed", Severity: ui.SeverityError})})
		case celo.IsZeroAddress(result.Address):
			rows = append(rows, []string{result.Identifier, u.Style(ui.StyledText{Text: "not registered", Severity: ui.SeverityWarn})})
		default:
			rows = append(rows, []string{result.Identifier, u.Style(ui.StyledText{Text: result.Address.Hex(), Severity: ui.SeveritySuccess})})
		}
	}
	u.Table([]string{"Contract", "Address"}, rows)

	if failed > 0 {
		return fmt.Errorf("%d of %d registry reads failed", failed, len(celo.RegistryIDs))
	}
	return nil
}

func init() {
	registryCmd.AddCommand(registryLookupCmd)
	registryCmd.AddCommand(registryListCmd)
	rootCmd.AddCommand(registryCmd)
}

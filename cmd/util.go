package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/celo-tools/celophane/config"
	"github.com/celo-tools/celophane/networks"
	"github.com/celo-tools/celophane/util/reader"
)

// DefaultEndpoint is used when neither --endpoint nor --network is given:
// a plain local node, same as the usual devchain setup.
const DefaultEndpoint = "http://localhost:8545"

// nodesFromConfig resolves which endpoints commands read from. An explicitly
// set --endpoint wins over --network; with neither flag the default local
// endpoint is used.
func nodesFromConfig(endpointSet bool) (map[string]string, error) {
	if endpointSet || config.NetworkString == "" {
		return map[string]string{"endpoint": config.Endpoint}, nil
	}
	network, err := networks.GetNetwork(config.NetworkString)
	if err != nil {
		return nil, fmt.Errorf(
			"unknown network %q, valid values are: %s",
			config.NetworkString,
			strings.Join(networks.GetSupportedNetworkNames(), ", "),
		)
	}
	return networks.GetNodes(network), nil
}

// celoReader validates every endpoint eagerly so scheme errors surface
// before any network traffic, then builds the fan-out reader.
func celoReader(cmd *cobra.Command) (*reader.CeloReader, error) {
	endpointSet := cmd.Root().PersistentFlags().Changed("endpoint")
	nodes, err := nodesFromConfig(endpointSet)
	if err != nil {
		return nil, err
	}
	for _, url := range nodes {
		if err := reader.ValidateEndpointURL(url); err != nil {
			return nil, err
		}
	}
	return reader.NewCeloReader(nodes), nil
}

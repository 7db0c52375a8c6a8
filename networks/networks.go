package networks

import (
	"fmt"
	"os"
	"strings"
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	CeloMainnet,
	Alfajores,
	Baklava,
	Local,
}

var globalSupportedNetworks = newSupportedNetworks()

var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks map[string]Network
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks() *networks {
	result := networks{
		map[string]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.networks[n.GetName()] = n
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", an),
				)
			}
			result.networks[an] = n
		}
	}
	return &result
}

// GetSupportedNetworks returns the known networks in declaration order so
// listings stay stable between runs.
func GetSupportedNetworks() []Network {
	res := []Network{}
	res = append(res, supportedNetworks...)
	return res
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range supportedNetworks {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	return res
}

// GetNodes returns the RPC endpoints of the network. When the network's node
// environment variable is set, the custom node is queried alongside the
// default ones.
func GetNodes(network Network) map[string]string {
	nodes := network.GetDefaultNodes()
	customNode := strings.Trim(os.Getenv(network.GetNodeVariableName()), " ")
	if customNode != "" {
		nodes["custom-node"] = customNode
	}
	return nodes
}

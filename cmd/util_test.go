package cmd

import (
	"strings"
	"testing"

	"github.com/celo-tools/celophane/config"
)

func TestNodesFromConfigEndpointWinsOverNetwork(t *testing.T) {
	defer func(e, n string) { config.Endpoint = e; config.NetworkString = n }(config.Endpoint, config.NetworkString)
	config.Endpoint = "http://10.1.1.1:8545"
	config.NetworkString = "mainnet"

	nodes, err := nodesFromConfig(true)
	if err != nil {
		t.Fatalf("expected the endpoint to be used, got: %s", err)
	}
	if len(nodes) != 1 || nodes["endpoint"] != "http://10.1.1.1:8545" {
		t.Errorf("expected only the explicit endpoint, got %v", nodes)
	}
}

func TestNodesFromConfigNetworkSelectsDefaultNodes(t *testing.T) {
	defer func(e, n string) { config.Endpoint = e; config.NetworkString = n }(config.Endpoint, config.NetworkString)
	config.NetworkString = "alfajores"

	nodes, err := nodesFromConfig(false)
	if err != nil {
		t.Fatalf("expected the network nodes, got: %s", err)
	}
	if nodes["alfajores-forno"] != "https://alfajores-forno.celo-testnet.org" {
		t.Errorf("expected the alfajores forno node, got %v", nodes)
	}
}

func TestNodesFromConfigUnknownNetworkListsValidNames(t *testing.T) {
	defer func(n string) { config.NetworkString = n }(config.NetworkString)
	config.NetworkString = "goerli"

	_, err := nodesFromConfig(false)
	if err == nil {
		t.Fatalf("expected an unknown network to be rejected")
	}
	for _, wanted := range []string{"goerli", "mainnet", "alfajores"} {
		if !strings.Contains(err.Error(), wanted) {
			t.Errorf("expected error to mention %q, got: %s", wanted, err)
		}
	}
}

func TestNodesFromConfigDefaultsToLocalEndpoint(t *testing.T) {
	defer func(e, n string) { config.Endpoint = e; config.NetworkString = n }(config.Endpoint, config.NetworkString)
	config.Endpoint = DefaultEndpoint
	config.NetworkString = ""

	nodes, err := nodesFromConfig(false)
	if err != nil {
		t.Fatalf("expected the default endpoint, got: %s", err)
	}
	if len(nodes) != 1 || nodes["endpoint"] != "http://localhost:8545" {
		t.Errorf("expected the local default endpoint, got %v", nodes)
	}
}

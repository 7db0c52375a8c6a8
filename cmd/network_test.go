package cmd

import (
	"strings"
	"testing"

	"github.com/celo-tools/celophane/ui"
)

func TestListNetworksShowsAllKnownNetworks(t *testing.T) {
	u := ui.NewRecordingUI()
	listNetworks(u)

	infos := u.InfoMessages()
	if len(infos) == 0 || infos[0] != "1. mainnet" {
		t.Fatalf("expected mainnet first, got %v", infos)
	}
	for _, wanted := range []string{"1. mainnet", "2. alfajores", "3. baklava", "4. local"} {
		if !u.HasMessage(wanted) {
			t.Errorf("expected %q in the listing", wanted)
		}
	}
	if !u.HasMessage("Chain ID  42220") {
		t.Errorf("expected the mainnet chain id in the listing")
	}
	if !u.HasMessage("https://celoscan.io") {
		t.Errorf("expected the mainnet explorer in the listing")
	}
	if !strings.Contains(u.Output(), "https://forno.celo.org") {
		t.Errorf("expected the forno node in the node list, got %q", u.Output())
	}
}

package reader

import (
	"fmt"
	"net/url"
)

// ValidateEndpointURL checks that an endpoint uses a transport we can speak
// before any connection is attempted. http and https select the
// request/response transport, ws and wss the persistent websocket one; both
// are handled natively by go-ethereum's rpc package. Anything else is
// rejected here, naming the offending scheme.
func ValidateEndpointURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint url %q: %w", endpoint, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return nil
	default:
		return fmt.Errorf("unsupported url scheme: %s", u.Scheme)
	}
}

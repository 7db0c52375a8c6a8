package config

var (
	// Endpoint is the node URL to talk to. It is bound to the root
	// --endpoint flag and wins over NetworkString when set explicitly.
	Endpoint string

	// NetworkString selects one of the known Celo networks by name or
	// alternative name. Empty means "use Endpoint".
	NetworkString string

	// Amount is the raw decimal string bound to exchange show --amount.
	Amount string

	Debug bool
)

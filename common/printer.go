package common

import (
	"fmt"

	"github.com/celo-tools/celophane/config"
)

// DebugPrintf prints to stdout only when --debug is set. Suppressed per
// token read failures during balance queries surface here.
func DebugPrintf(format string, a ...interface{}) (n int, err error) {
	if config.Debug {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}

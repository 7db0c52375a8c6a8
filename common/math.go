package common

import (
	"fmt"
	"math/big"
)

// StringToBigInt parses a base 10 integer string into a big.Int. It is used
// for raw token amounts so no float conversion is involved.
func StringToBigInt(str string) (*big.Int, error) {
	result, ok := big.NewInt(0).SetString(str, 10)
	if !ok {
		return nil, fmt.Errorf("%s is not a valid base 10 integer", str)
	}
	return result, nil
}

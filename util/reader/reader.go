package reader

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	celocommon "github.com/celo-tools/celophane/common"
)

// DEFAULT_ADDRESS is the from address used for read-only eth_call queries.
var DEFAULT_ADDRESS string = "0x0000000000000000000000000000000000000000"

// CeloReader serves contract reads from a set of named nodes. Every read is
// fanned out to all nodes at once and the first successful answer wins; a
// read fails only when every node failed.
type CeloReader struct {
	nodes map[string]CeloNode
}

func NewCeloReader(nodes map[string]string) *CeloReader {
	ns := map[string]CeloNode{}
	for name, c := range nodes {
		ns[name] = NewOneNodeReader(name, c)
	}
	return &CeloReader{
		nodes: ns,
	}
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type readContractToBytesResponse struct {
	Data  []byte
	Error error
}

func (cr *CeloReader) ReadContractToBytes(
	atBlock int64,
	from string,
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	resCh := make(chan readContractToBytesResponse, len(cr.nodes))
	for i := range cr.nodes {
		n := cr.nodes[i]
		go func() {
			data, err := n.ReadContractToBytes(atBlock, from, caddr, abi, method, args...)
			resCh <- readContractToBytesResponse{
				Data:  data,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(cr.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Data, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (cr *CeloReader) ReadContractWithABI(
	result interface{},
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) error {
	responseBytes, err := cr.ReadContractToBytes(-1, DEFAULT_ADDRESS, caddr, abi, method, args...)
	if err != nil {
		return err
	}
	return abi.UnpackIntoInterface(result, method, responseBytes)
}

func (cr *CeloReader) ERC20Balance(caddr string, user string) (*big.Int, error) {
	abi := celocommon.GetERC20ABI()
	result := big.NewInt(0)
	err := cr.ReadContractWithABI(&result, caddr, abi, "balanceOf", celocommon.HexToAddress(user))
	return result, err
}

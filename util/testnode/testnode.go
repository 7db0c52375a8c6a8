// Package testnode provides an in-process JSON-RPC node for tests. It
// understands just enough eth_call to act as a Celo chain: a registry
// contract at the well-known address, ERC20 tokens answering balanceOf and
// an exchange answering getBuyTokenAmount. Calls to addresses it knows
// nothing about return "0x", exactly like a real node evaluating a call
// against an address with no code.
package testnode

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	celocommon "github.com/celo-tools/celophane/common"
)

// RegistryAddress is where the registry contract lives on every Celo chain.
const RegistryAddress = "0x000000000000000000000000000000000000ce10"

// Canonical mainnet addresses, handy as fixture values.
var (
	GoldTokenAddr      = common.HexToAddress("0x471EcE3750Da237f93B8E339c536989b8978a438")
	StableTokenAddr    = common.HexToAddress("0x765DE816845861e75A25fCA122bb6898B8B1282a")
	StableTokenEURAddr = common.HexToAddress("0xD8763CBa276a3738E6DE85b4b3bF5FDed6D6cA73")
	ExchangeAddr       = common.HexToAddress("0x67316300f17f063085Ca8bCa4bd3f7a5a3C66275")
)

// QuoteFn computes an exchange quote for a sell amount. sellGold selects the
// direction, matching getBuyTokenAmount on the real exchange.
type QuoteFn func(sellAmount *big.Int, sellGold bool) *big.Int

type TestNode struct {
	mu           sync.Mutex
	server       *httptest.Server
	registry     map[string]common.Address
	tokens       map[common.Address]map[common.Address]*big.Int
	exchanges    map[common.Address]bool
	quote        QuoteFn
	requestCount int
}

// New starts an empty node. The caller owns shutdown via Close.
func New() *TestNode {
	n := &TestNode{
		registry:  map[string]common.Address{},
		tokens:    map[common.Address]map[common.Address]*big.Int{},
		exchanges: map[common.Address]bool{},
		quote: func(sellAmount *big.Int, sellGold bool) *big.Int {
			return new(big.Int).Set(sellAmount)
		},
	}
	n.server = httptest.NewServer(http.HandlerFunc(n.handler))
	return n
}

// NewCeloChain starts a node preconfigured like a Celo chain: the registry
// knows GoldToken, StableToken, StableTokenEUR and Exchange at their
// mainnet addresses, the three tokens answer balanceOf and the exchange
// quotes 1:1 until SetQuote replaces it.
func NewCeloChain() *TestNode {
	n := New()
	n.SetRegistryEntry("GoldToken", GoldTokenAddr)
	n.SetRegistryEntry("StableToken", StableTokenAddr)
	n.SetRegistryEntry("StableTokenEUR", StableTokenEURAddr)
	n.SetRegistryEntry("Exchange", ExchangeAddr)
	n.AddToken(GoldTokenAddr)
	n.AddToken(StableTokenAddr)
	n.AddToken(StableTokenEURAddr)
	n.AddExchange(ExchangeAddr)
	return n
}

func (n *TestNode) URL() string {
	return n.server.URL
}

func (n *TestNode) Close() {
	n.server.Close()
}

// RequestCount reports how many JSON-RPC requests the node has served. Use
// it to assert that a code path never reached the network.
func (n *TestNode) RequestCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.requestCount
}

func (n *TestNode) SetRegistryEntry(identifier string, addr common.Address) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.registry[identifier] = addr
}

// RemoveRegistryEntry makes identifier resolve to the zero address again.
func (n *TestNode) RemoveRegistryEntry(identifier string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.registry, identifier)
}

func (n *TestNode) AddToken(addr common.Address) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.tokens[addr] == nil {
		n.tokens[addr] = map[common.Address]*big.Int{}
	}
}

func (n *TestNode) SetBalance(token, holder common.Address, amount *big.Int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.tokens[token] == nil {
		n.tokens[token] = map[common.Address]*big.Int{}
	}
	n.tokens[token][holder] = new(big.Int).Set(amount)
}

func (n *TestNode) AddExchange(addr common.Address) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.exchanges[addr] = true
}

func (n *TestNode) SetQuote(fn QuoteFn) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.quote = fn
}

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type callParams struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Data  string `json:"data"`
	Input string `json:"input"`
}

// calldata returns the call data, preferring the modern "input" key over the
// legacy "data" one, like a real node does.
func (c callParams) calldata() string {
	if c.Input != "" {
		return c.Input
	}
	return c.Data
}

func (n *TestNode) handler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req rpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.requestCount++
	n.mu.Unlock()

	switch req.Method {
	case "eth_call":
		n.handleEthCall(w, req)
	default:
		writeRPCError(w, req.ID, -32601,
			fmt.Sprintf("the method %s does not exist/is not available", req.Method))
	}
}

func (n *TestNode) handleEthCall(w http.ResponseWriter, req rpcRequest) {
	if len(req.Params) < 1 {
		writeRPCError(w, req.ID, -32602, "missing call object")
		return
	}
	var call callParams
	if err := json.Unmarshal(req.Params[0], &call); err != nil {
		writeRPCError(w, req.ID, -32602, err.Error())
		return
	}
	data, err := hexutil.Decode(call.calldata())
	if err != nil || len(data) < 4 {
		writeRPCError(w, req.ID, -32602, "malformed call data")
		return
	}
	to := common.HexToAddress(call.To)

	// Snapshot state under lock; the quote function may block and must not
	// serialize concurrent calls.
	n.mu.Lock()
	balances, isToken := n.tokens[to]
	isExchange := n.exchanges[to]
	quote := n.quote
	registry := make(map[string]common.Address, len(n.registry))
	for k, v := range n.registry {
		registry[k] = v
	}
	n.mu.Unlock()

	switch {
	case to == common.HexToAddress(RegistryAddress):
		n.serveRegistry(w, req, registry, data)
	case isToken:
		n.serveToken(w, req, balances, data)
	case isExchange:
		n.serveExchange(w, req, quote, data)
	default:
		// no code at this address
		writeResult(w, req.ID, "0x")
	}
}

func (n *TestNode) serveRegistry(w http.ResponseWriter, req rpcRequest, registry map[string]common.Address, data []byte) {
	method, err := celocommon.GetRegistryABI().MethodById(data[:4])
	if err != nil || method.Name != "getAddressForString" {
		writeRPCError(w, req.ID, 3, "execution reverted")
		return
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		writeRPCError(w, req.ID, -32602, err.Error())
		return
	}
	identifier := args[0].(string)
	addr := registry[identifier] // absent identifiers yield the zero address
	out, err := method.Outputs.Pack(addr)
	if err != nil {
		writeRPCError(w, req.ID, -32603, err.Error())
		return
	}
	writeResult(w, req.ID, hexutil.Encode(out))
}

func (n *TestNode) serveToken(w http.ResponseWriter, req rpcRequest, balances map[common.Address]*big.Int, data []byte) {
	method, err := celocommon.GetERC20ABI().MethodById(data[:4])
	if err != nil || method.Name != "balanceOf" {
		writeRPCError(w, req.ID, 3, "execution reverted")
		return
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		writeRPCError(w, req.ID, -32602, err.Error())
		return
	}
	holder := args[0].(common.Address)
	balance := balances[holder]
	if balance == nil {
		balance = big.NewInt(0)
	}
	out, err := method.Outputs.Pack(balance)
	if err != nil {
		writeRPCError(w, req.ID, -32603, err.Error())
		return
	}
	writeResult(w, req.ID, hexutil.Encode(out))
}

func (n *TestNode) serveExchange(w http.ResponseWriter, req rpcRequest, quote QuoteFn, data []byte) {
	method, err := celocommon.GetExchangeABI().MethodById(data[:4])
	if err != nil || method.Name != "getBuyTokenAmount" {
		writeRPCError(w, req.ID, 3, "execution reverted")
		return
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		writeRPCError(w, req.ID, -32602, err.Error())
		return
	}
	sellAmount := args[0].(*big.Int)
	sellGold := args[1].(bool)
	out, err := method.Outputs.Pack(quote(sellAmount, sellGold))
	if err != nil {
		writeRPCError(w, req.ID, -32603, err.Error())
		return
	}
	writeResult(w, req.ID, hexutil.Encode(out))
}

func writeResult(w http.ResponseWriter, id json.RawMessage, result string) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	json.NewEncoder(w).Encode(resp)
}

func writeRPCError(w http.ResponseWriter, id json.RawMessage, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}
	json.NewEncoder(w).Encode(resp)
}

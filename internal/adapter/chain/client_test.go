package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"habit-agent/config"
	"habit-agent/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fakeNode answers JSON-RPC calls from a method -> result table.
// A method mapped to an *rpcFailure answers with a JSON-RPC error object.
type fakeNode struct {
	mu      sync.Mutex
	results map[string]any
	calls   []rpcRequest
}

type rpcFailure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n.mu.Lock()
	n.calls = append(n.calls, req)
	result, ok := n.results[req.Method]
	n.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	switch v := result.(type) {
	case *rpcFailure:
		resp["error"] = v
	default:
		if !ok {
			resp["error"] = &rpcFailure{Code: -32601, Message: "method not found"}
		} else {
			resp["result"] = v
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (n *fakeNode) lastCall() rpcRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[len(n.calls)-1]
}

func newTestClient(t *testing.T, node *fakeNode) *Client {
	t.Helper()
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)

	c, err := Dial(context.Background(), config.ChainConfig{RPCURL: srv.URL, RPCTimeout: 5 * time.Second}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestClient_Queries(t *testing.T) {
	node := &fakeNode{results: map[string]any{
		"eth_getTransactionCount": "0x5",
		"eth_gasPrice":            "0x3b9aca00",
		"eth_chainId":             "0x7a69",
	}}
	c := newTestClient(t, node)
	ctx := context.Background()

	nonce, err := c.NonceFor(ctx, "0x1d4fEaebea612A888cD5230fcbF4A137E5FBeD4B")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), nonce)

	call := node.lastCall()
	require.Len(t, call.Params, 2)
	assert.JSONEq(t, `"latest"`, string(call.Params[1]))

	price, err := c.CurrentGasPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000), price.Int64())

	id, err := c.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(31337), id.Int64())
}

func TestClient_Broadcast_ReturnsHash(t *testing.T) {
	hash := "0x9fc76417374aa880d4449a1f7f31ec597f00b1f6f3dd2d66f4c9c6c445836d8b"
	node := &fakeNode{results: map[string]any{"eth_sendRawTransaction": hash}}
	c := newTestClient(t, node)

	got, err := c.Broadcast(context.Background(), "0xf86b01")
	require.NoError(t, err)
	assert.Equal(t, hash, got)

	call := node.lastCall()
	require.Len(t, call.Params, 1)
	assert.JSONEq(t, `"0xf86b01"`, string(call.Params[0]))
}

func TestClient_Broadcast_Rejected(t *testing.T) {
	node := &fakeNode{results: map[string]any{
		"eth_sendRawTransaction": &rpcFailure{Code: -32000, Message: "nonce too low"},
	}}
	c := newTestClient(t, node)

	_, err := c.Broadcast(context.Background(), "0xf86b01")
	require.Error(t, err)
	assert.Equal(t, "CHAIN_003", apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "nonce too low")
}

func TestClient_QueryError(t *testing.T) {
	node := &fakeNode{results: map[string]any{
		"eth_gasPrice": &rpcFailure{Code: -32603, Message: "internal error"},
	}}
	c := newTestClient(t, node)

	_, err := c.CurrentGasPrice(context.Background())
	require.Error(t, err)
	assert.Equal(t, "CHAIN_002", apperror.CodeOf(err))
	assert.True(t, apperror.ChainFailure(err))
}

func TestClient_NodeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := Dial(context.Background(), config.ChainConfig{RPCURL: url, RPCTimeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.ChainID(context.Background())
	assert.Equal(t, "CHAIN_001", apperror.CodeOf(err))

	_, err = c.Broadcast(context.Background(), "0x00")
	assert.Equal(t, "CHAIN_001", apperror.CodeOf(err))
}

func TestHealthCheck(t *testing.T) {
	node := &fakeNode{results: map[string]any{"eth_chainId": "0x1"}}
	h := NewHealthCheck(newTestClient(t, node))

	assert.NoError(t, h.Ping(context.Background()))
	assert.Equal(t, "ledger_node", h.Name())
}

package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"habit-agent/config"
	"habit-agent/internal/core/ports"
	"habit-agent/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
)

// Client implements ports.ChainClient over JSON-RPC.
// Calls are not retried; every error is surfaced to the caller.
type Client struct {
	rpc *rpc.Client
	eth *ethclient.Client
	log zerolog.Logger
}

// Dial builds a client for cfg.RPCURL. HTTP endpoints do not connect until the first call.
func Dial(ctx context.Context, cfg config.ChainConfig, log zerolog.Logger) (*Client, error) {
	timeout := cfg.RPCTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	rc, err := rpc.DialOptions(ctx, cfg.RPCURL, rpc.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, fmt.Errorf("dialing ledger node: %w", err)
	}

	log.Info().Str("rpc_url", cfg.RPCURL).Dur("timeout", timeout).Msg("ledger node client ready")

	return &Client{rpc: rc, eth: ethclient.NewClient(rc), log: log}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// NonceFor returns the confirmed transaction count of addr.
func (c *Client) NonceFor(ctx context.Context, addr string) (uint64, error) {
	nonce, err := c.eth.NonceAt(ctx, common.HexToAddress(addr), nil)
	if err != nil {
		return 0, classifyQuery("eth_getTransactionCount", err)
	}
	return nonce, nil
}

func (c *Client) CurrentGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, classifyQuery("eth_gasPrice", err)
	}
	return price, nil
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, classifyQuery("eth_chainId", err)
	}
	return id, nil
}

// Broadcast submits a signed raw transaction. A node-side rejection maps to CHAIN_003.
func (c *Client) Broadcast(ctx context.Context, signedTxHex string) (string, error) {
	var hash common.Hash
	if err := c.rpc.CallContext(ctx, &hash, "eth_sendRawTransaction", signedTxHex); err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return "", apperror.ErrTransactionRejected(fmt.Errorf("eth_sendRawTransaction: %w", err))
		}
		return "", apperror.ErrNodeUnreachable(fmt.Errorf("eth_sendRawTransaction: %w", err))
	}

	c.log.Debug().Str("tx_hash", hash.Hex()).Msg("transaction broadcast")
	return hash.Hex(), nil
}

func classifyQuery(method string, err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return apperror.ErrRPC(fmt.Errorf("%s: %w", method, err))
	}
	return apperror.ErrNodeUnreachable(fmt.Errorf("%s: %w", method, err))
}

// NewHealthCheck probes the ledger node by asking for its chain id.
func NewHealthCheck(client *Client) ports.PingFunc {
	return ports.PingFunc{
		Component: "ledger_node",
		Probe: func(ctx context.Context) error {
			_, err := client.ChainID(ctx)
			return err
		},
	}
}

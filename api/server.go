// Package api is a client for blockchain node HTTP endpoints. Every call is
// funnelled through Dispatch, which fails over across the configured
// endpoints in order.
package api

import (
	"context"
	"fmt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"nodeclient-adapter/types"
	"strconv"
)

type Client struct {
	token     string
	endpoints []string

	transport Transport
	currency  types.UnitConverter
	log       zerolog.Logger
}

func NewClient(token string, endpoints []string, opts ...Option) (*Client, error) {
	return NewClientFromConfig(Config{Token: token, Endpoints: endpoints}, opts...)
}

// NewSingleClient builds a client for one node.
func NewSingleClient(token, endpoint string, opts ...Option) (*Client, error) {
	return NewClient(token, []string{endpoint}, opts...)
}

func NewClientFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := &Client{
		token:     cfg.Token,
		endpoints: append([]string(nil), cfg.Endpoints...),
		transport: NewHTTPTransport(),
		currency:  types.Bitcoin,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Endpoints returns a copy of the configured endpoints in failover order.
func (c *Client) Endpoints() []string {
	return append([]string(nil), c.endpoints...)
}

//node info
func (c *Client) GetInfo(ctx context.Context) types.Result {
	return c.Dispatch(ctx, types.NewRequest(types.GET, "/", nil))
}

//block by height or hash
func (c *Client) GetBlock(ctx context.Context, block string) types.Result {
	return c.Dispatch(ctx, types.NewRequest(types.GET, "/block/"+block, nil))
}

func (c *Client) GetBlockByHeight(ctx context.Context, height int64) types.Result {
	return c.GetBlock(ctx, strconv.FormatInt(height, 10))
}

// GetBlockRPC fetches a block through the node's RPC interface, the legacy
// form of GetBlock.
func (c *Client) GetBlockRPC(ctx context.Context, hash string, verbose bool) types.Result {
	return c.Execute(ctx, "getblock", hash, verbose)
}

//tx detail by id
func (c *Client) GetTransaction(ctx context.Context, txid string) types.Result {
	return c.Dispatch(ctx, types.NewRequest(types.GET, "/tx/"+txid, nil))
}

func (c *Client) GetTransactionByHash(ctx context.Context, hash *chainhash.Hash) types.Result {
	if hash == nil {
		return types.Failure(errors.New("nil transaction hash"))
	}
	return c.GetTransaction(ctx, hash.String())
}

//broadcast a hex encoded signed tx
func (c *Client) BroadcastTransaction(ctx context.Context, tx string) types.Result {
	return c.Execute(ctx, "sendrawtransaction", tx)
}

func (c *Client) BroadcastMsgTx(ctx context.Context, tx *wire.MsgTx) types.Result {
	raw, err := EncodeTransaction(tx)
	if err != nil {
		return types.Failure(err)
	}
	c.log.Debug().Str("txid", tx.TxHash().String()).Msg("broadcasting transaction")
	return c.BroadcastTransaction(ctx, raw)
}

//address utxos
func (c *Client) GetUtxos(ctx context.Context, address string) types.Result {
	return c.Dispatch(ctx, types.NewRequest(types.GET, "/coin/address/"+address, nil))
}

func (c *Client) GetCoin(ctx context.Context, hash string, index uint32) types.Result {
	path := fmt.Sprintf("/coin/%s/%d", hash, index)
	return c.Dispatch(ctx, types.NewRequest(types.GET, path, nil))
}

//address tx list
func (c *Client) GetTransactions(ctx context.Context, address string) types.Result {
	return c.Dispatch(ctx, types.NewRequest(types.GET, "/tx/address/"+address, nil))
}

func (c *Client) GetMempool(ctx context.Context) types.Result {
	return c.Dispatch(ctx, types.NewRequest(types.GET, "/mempool", nil))
}

// EstimateFee asks the node for a fee rate that should confirm within the
// given number of blocks.
func (c *Client) EstimateFee(ctx context.Context, blocks int) types.Result {
	path := fmt.Sprintf("/fee?blocks=%d", blocks)
	return c.Dispatch(ctx, types.NewRequest(types.GET, path, nil))
}

// Execute calls an RPC method using the node's {method, params} envelope.
func (c *Client) Execute(ctx context.Context, method string, params ...interface{}) types.Result {
	return c.Dispatch(ctx, types.RPC(method, params...))
}

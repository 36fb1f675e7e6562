package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/patrickmn/go-cache"
)

var (
	ErrSubmissionFailed     = errors.New("transaction submission failed")
	ErrFailedToGetGasPrice  = errors.New("failed to get gas price")
	ErrFailedToGetChainID   = errors.New("failed to get chain id")
	ErrReceiptQueryFailed   = errors.New("failed to query transaction receipt")
	ErrFailedToReadDecimals = errors.New("failed to read token decimals")
	ErrFailedToDial         = errors.New("failed to dial rpc endpoint")
)

const (
	gasPriceCacheKey        = "gasPrice"
	gasPriceCacheTTLDefault = 2 * time.Second
	gasPriceCacheCleanup    = 10 * time.Second
	// headroom added on top of the node's gas estimate, in percent
	gasLimitHeadroomPercent = 20
)

// Backend is the subset of an Ethereum JSON-RPC client the launcher needs. *ethclient.Client satisfies it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// TxSigner signs transactions for the address derived from its key.
type TxSigner interface {
	Derived() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Call describes one contract invocation to be submitted as a transaction.
type Call struct {
	To       common.Address
	ABI      *abi.ABI
	Method   string
	Args     []any
	Value    *big.Int
	GasPrice *big.Int
}

// Client wraps two node connections. Transactions, fees, nonces and contract reads go to the
// submission backend, receipts are polled from the query backend.
type Client struct {
	logger    *slog.Logger
	submitter Backend
	querier   Backend
	gasCache  *cache.Cache
	gasTTL    time.Duration

	chainIDMu sync.Mutex
	chainID   *big.Int
}

func WithQueryBackend(querier Backend) func(*Client) {
	return func(c *Client) {
		if querier != nil {
			c.querier = querier
		}
	}
}

func WithChainID(chainID int64) func(*Client) {
	return func(c *Client) {
		if chainID > 0 {
			c.chainID = big.NewInt(chainID)
		}
	}
}

// WithGasPriceCacheTTL sets how long a fetched gas price is shared between callers. Zero disables caching.
func WithGasPriceCacheTTL(ttl time.Duration) func(*Client) {
	return func(c *Client) {
		c.gasTTL = ttl
	}
}

func NewClient(logger *slog.Logger, submitter Backend, opts ...func(*Client)) *Client {
	c := &Client{
		logger:    logger.With(slog.String("module", "chain")),
		submitter: submitter,
		querier:   submitter,
		gasTTL:    gasPriceCacheTTLDefault,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.gasCache = cache.New(c.gasTTL, gasPriceCacheCleanup)

	return c
}

// Dial connects the submission endpoint and, when given, a separate query endpoint.
func Dial(ctx context.Context, logger *slog.Logger, rpcURL string, queryURL string, opts ...func(*Client)) (*Client, func(), error) {
	submitter, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToDial, fmt.Errorf("url: %s", rpcURL), err)
	}

	closers := []func(){submitter.Close}

	if queryURL != "" && queryURL != rpcURL {
		querier, err := ethclient.DialContext(ctx, queryURL)
		if err != nil {
			submitter.Close()
			return nil, nil, errors.Join(ErrFailedToDial, fmt.Errorf("url: %s", queryURL), err)
		}
		closers = append(closers, querier.Close)
		opts = append(opts, WithQueryBackend(querier))
	}

	closeAll := func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}

	return NewClient(logger, submitter, opts...), closeAll, nil
}

// GasPrice returns the current gas price of the submission node.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	if c.gasTTL > 0 {
		if cached, found := c.gasCache.Get(gasPriceCacheKey); found {
			if price, ok := cached.(*big.Int); ok {
				return new(big.Int).Set(price), nil
			}
		}
	}

	price, err := c.submitter.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToGetGasPrice, err)
	}

	if c.gasTTL > 0 {
		c.gasCache.Set(gasPriceCacheKey, new(big.Int).Set(price), c.gasTTL)
	}

	return price, nil
}

func (c *Client) getChainID(ctx context.Context) (*big.Int, error) {
	c.chainIDMu.Lock()
	defer c.chainIDMu.Unlock()

	if c.chainID != nil {
		return c.chainID, nil
	}

	chainID, err := c.submitter.ChainID(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToGetChainID, err)
	}
	c.chainID = chainID

	return chainID, nil
}

// Submit packs, signs and sends a contract call and returns the transaction hash.
// It does not wait for the transaction to be mined.
func (c *Client) Submit(ctx context.Context, signer TxSigner, call Call) (common.Hash, error) {
	if call.ABI == nil {
		return common.Hash{}, errors.Join(ErrSubmissionFailed, errors.New("call has no abi"))
	}

	data, err := call.ABI.Pack(call.Method, call.Args...)
	if err != nil {
		return common.Hash{}, errors.Join(ErrSubmissionFailed, fmt.Errorf("failed to pack %s: %w", call.Method, err))
	}

	value := call.Value
	if value == nil {
		value = new(big.Int)
	}

	gasPrice := call.GasPrice
	if gasPrice == nil {
		gasPrice, err = c.GasPrice(ctx)
		if err != nil {
			return common.Hash{}, errors.Join(ErrSubmissionFailed, err)
		}
	}

	chainID, err := c.getChainID(ctx)
	if err != nil {
		return common.Hash{}, errors.Join(ErrSubmissionFailed, err)
	}

	from := signer.Derived()

	nonce, err := c.submitter.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, errors.Join(ErrSubmissionFailed, fmt.Errorf("failed to get nonce: %w", err))
	}

	to := call.To
	gas, err := c.submitter.EstimateGas(ctx, ethereum.CallMsg{
		From:     from,
		To:       &to,
		GasPrice: gasPrice,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		return common.Hash{}, errors.Join(ErrSubmissionFailed, fmt.Errorf("failed to estimate gas for %s: %w", call.Method, err))
	}
	gas += gas * gasLimitHeadroomPercent / 100

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value,
		Data:     data,
	})

	signed, err := signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, errors.Join(ErrSubmissionFailed, err)
	}

	err = c.submitter.SendTransaction(ctx, signed)
	if err != nil {
		return common.Hash{}, errors.Join(ErrSubmissionFailed, fmt.Errorf("failed to send %s: %w", call.Method, err))
	}

	c.logger.Debug("transaction sent",
		slog.String("hash", signed.Hash().Hex()),
		slog.String("method", call.Method),
		slog.Uint64("nonce", nonce),
		slog.Uint64("gas", gas),
	)

	return signed.Hash(), nil
}

// Receipt returns the receipt from the query backend, or nil if the transaction is not mined yet.
func (c *Client) Receipt(ctx context.Context, txHash common.Hash) (*Receipt, error) {
	r, err := c.querier.TransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, nil
		}

		return nil, errors.Join(ErrReceiptQueryFailed, err)
	}

	if r == nil {
		return nil, nil
	}

	return newReceipt(txHash, r)
}

// Decimals reads the ERC-20 decimals of a token.
func (c *Client) Decimals(ctx context.Context, token common.Address) (uint8, error) {
	data, err := ERC20ABI.Pack(MethodDecimals)
	if err != nil {
		return 0, errors.Join(ErrFailedToReadDecimals, err)
	}

	out, err := c.submitter.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return 0, errors.Join(ErrFailedToReadDecimals, err)
	}

	values, err := ERC20ABI.Unpack(MethodDecimals, out)
	if err != nil {
		return 0, errors.Join(ErrFailedToReadDecimals, err)
	}

	if len(values) != 1 {
		return 0, errors.Join(ErrFailedToReadDecimals, fmt.Errorf("unexpected output count %d", len(values)))
	}

	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, errors.Join(ErrFailedToReadDecimals, fmt.Errorf("unexpected output type %T", values[0]))
	}

	return decimals, nil
}

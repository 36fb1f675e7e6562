package launcher

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	TokenManagerDefault = "0x5c952063c7fc8610FFDB798152D69F0B9550762b"
	QuoteTokenDefault   = "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c"
	QuoteSymbolDefault  = "BNB"
	CreateFeeDefault    = "0.01"
	TokenURLBaseDefault = "https://four.meme/token/"
	LaunchDelayDefault  = 60 * time.Second
)

// decimals assumed for a token whose decimals() cannot be read
const decimalsFallback uint8 = 18

// Params are the platform terms shared by every launch. Build them once with NewParams.
type Params struct {
	tokenManager common.Address
	quoteToken   common.Address
	quoteSymbol  string
	createFee    *big.Int
	tokenURLBase string

	totalSupply  int64
	raisedAmount float64
	saleRate     float64
	reserveRate  float64
	lpTradingFee float64
}

type paramsConfig struct {
	tokenManager string
	quoteToken   string
	quoteSymbol  string
	createFee    string
	tokenURLBase string
}

func WithTokenManager(address string) func(*paramsConfig) {
	return func(c *paramsConfig) {
		c.tokenManager = address
	}
}

func WithQuoteToken(address string, symbol string) func(*paramsConfig) {
	return func(c *paramsConfig) {
		c.quoteToken = address
		c.quoteSymbol = symbol
	}
}

// WithCreateFee sets the creation fee in whole BNB, e.g. "0.01".
func WithCreateFee(fee string) func(*paramsConfig) {
	return func(c *paramsConfig) {
		c.createFee = fee
	}
}

func WithTokenURLBase(base string) func(*paramsConfig) {
	return func(c *paramsConfig) {
		c.tokenURLBase = base
	}
}

func NewParams(opts ...func(*paramsConfig)) (Params, error) {
	cfg := &paramsConfig{
		tokenManager: TokenManagerDefault,
		quoteToken:   QuoteTokenDefault,
		quoteSymbol:  QuoteSymbolDefault,
		createFee:    CreateFeeDefault,
		tokenURLBase: TokenURLBaseDefault,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !common.IsHexAddress(cfg.tokenManager) {
		return Params{}, errors.Join(ErrConfigInvalid, fmt.Errorf("token manager address: %q", cfg.tokenManager))
	}

	if !common.IsHexAddress(cfg.quoteToken) {
		return Params{}, errors.Join(ErrConfigInvalid, fmt.Errorf("quote token address: %q", cfg.quoteToken))
	}

	createFee, err := ParseUnits(cfg.createFee, EtherDecimals)
	if err != nil {
		return Params{}, errors.Join(ErrConfigInvalid, fmt.Errorf("create fee: %w", err))
	}

	if strings.TrimSpace(cfg.tokenURLBase) == "" {
		return Params{}, errors.Join(ErrConfigInvalid, errors.New("token url base is empty"))
	}

	return Params{
		tokenManager: common.HexToAddress(cfg.tokenManager),
		quoteToken:   common.HexToAddress(cfg.quoteToken),
		quoteSymbol:  cfg.quoteSymbol,
		createFee:    createFee,
		tokenURLBase: cfg.tokenURLBase,
		totalSupply:  1_000_000_000,
		raisedAmount: 24,
		saleRate:     0.8,
		reserveRate:  0,
		lpTradingFee: 0.0025,
	}, nil
}

// DefaultParams are the BNB Smart Chain mainnet terms.
func DefaultParams() Params {
	params, err := NewParams()
	if err != nil {
		panic(err)
	}

	return params
}

func (p Params) TokenManager() common.Address {
	return p.tokenManager
}

func (p Params) QuoteToken() common.Address {
	return p.quoteToken
}

// CreateFee returns a copy of the creation fee in wei.
func (p Params) CreateFee() *big.Int {
	if p.createFee == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(p.createFee)
}

func (p Params) TotalSupply() int64 {
	return p.totalSupply
}

// DefaultApproveAmount is the approval amount, in whole tokens, used when a request sets none:
// the full total supply.
func (p Params) DefaultApproveAmount() string {
	return strconv.FormatInt(p.TotalSupply(), 10)
}

func (p Params) TokenURL(token common.Address) string {
	return p.tokenURLBase + token.Hex()
}

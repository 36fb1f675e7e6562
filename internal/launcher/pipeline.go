package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/memelaunch/launcher/internal/chain"
	"github.com/memelaunch/launcher/internal/logger"
	"github.com/memelaunch/launcher/internal/platform"
	"github.com/memelaunch/launcher/internal/wallet"
	"github.com/memelaunch/launcher/pkg/tracing"
)

const validateTimeoutDefault = 10 * time.Second

type PlatformClient interface {
	GenerateNonce(ctx context.Context, address string) (string, error)
	Login(ctx context.Context, address string, signature string) (string, error)
	ValidateLogin(ctx context.Context, address string, accessToken string) error
	UploadImage(ctx context.Context, accessToken string, filename string, image io.Reader) (string, error)
	PrepareCreate(ctx context.Context, accessToken string, payload platform.CreateTokenPayload) (*platform.PreparedCreate, error)
}

type ChainClient interface {
	GasPrice(ctx context.Context) (*big.Int, error)
	Submit(ctx context.Context, signer chain.TxSigner, call chain.Call) (common.Hash, error)
	Decimals(ctx context.Context, token common.Address) (uint8, error)
}

type ReceiptWaiter interface {
	Wait(ctx context.Context, txHash common.Hash) (*chain.Receipt, error)
}

type ImageSource interface {
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)
}

// Pipeline runs the launch stages for one account at a time. A Pipeline holds no per-run
// state and may be used by many goroutines at once.
type Pipeline struct {
	logger   *slog.Logger
	params   Params
	platform PlatformClient
	chain    ChainClient
	waiter   ReceiptWaiter
	images   ImageSource
	stats    *Stats
	now      func() time.Time

	validateTimeout time.Duration
	validateWg      sync.WaitGroup

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithStats(stats *Stats) func(*Pipeline) {
	return func(p *Pipeline) {
		p.stats = stats
	}
}

func WithNow(now func() time.Time) func(*Pipeline) {
	return func(p *Pipeline) {
		p.now = now
	}
}

func WithValidateTimeout(timeout time.Duration) func(*Pipeline) {
	return func(p *Pipeline) {
		if timeout > 0 {
			p.validateTimeout = timeout
		}
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*Pipeline) {
	return func(p *Pipeline) {
		p.tracingEnabled = true
		if len(attr) > 0 {
			p.tracingAttributes = append(p.tracingAttributes, attr...)
		}
	}
}

func NewPipeline(logger *slog.Logger, params Params, platformClient PlatformClient, chainClient ChainClient, waiter ReceiptWaiter, images ImageSource, opts ...func(*Pipeline)) *Pipeline {
	p := &Pipeline{
		logger:          logger.With(slog.String("module", "launch-pipeline")),
		params:          params,
		platform:        platformClient,
		chain:           chainClient,
		waiter:          waiter,
		images:          images,
		now:             time.Now,
		validateTimeout: validateTimeoutDefault,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Wait blocks until all login validation calls started by Launch have returned.
func (p *Pipeline) Wait() {
	p.validateWg.Wait()
}

type launchAmounts struct {
	presale       *big.Int
	approveAmount string
}

// Launch runs all stages for one account. Any stage failure ends the run with a *StageError.
func (p *Pipeline) Launch(ctx context.Context, account Account, req LaunchRequest) (result *Result, err error) {
	runLogger := p.logger.With(
		slog.Any("account", account),
		slog.String("symbol", req.Symbol),
		slog.String("run_id", uuid.NewString()),
	)

	ctx, span := tracing.StartTracing(ctx, "Pipeline.Launch", p.tracingEnabled, p.attributes(attribute.String("symbol", req.Symbol))...)
	p.stats.started()
	defer func() {
		p.stats.finished(err)
		tracing.EndTracing(span, err)
	}()

	credential, amounts, err := checkRequest(p.params, account, req)
	if err != nil {
		runLogger.Warn("launch rejected", slog.String("err", err.Error()))
		return nil, err
	}

	var session string
	err = p.runStage(ctx, StageLogin, func(ctx context.Context) error {
		session, err = p.login(ctx, credential)
		return err
	})
	if err != nil {
		return nil, err
	}
	runLogger.Debug("logged in")

	p.validateLogin(ctx, runLogger, credential, session)

	var imageURL string
	err = p.runStage(ctx, StageUpload, func(ctx context.Context) error {
		imageURL, err = p.upload(ctx, session, req.ImageRef)
		return err
	})
	if err != nil {
		return nil, err
	}
	runLogger.Debug("image uploaded", slog.String("url", imageURL))

	var prepared *platform.PreparedCreate
	err = p.runStage(ctx, StagePrepare, func(ctx context.Context) error {
		prepared, err = p.platform.PrepareCreate(ctx, session, p.createPayload(req, imageURL))
		return err
	})
	if err != nil {
		return nil, err
	}

	value := createValue(p.params, amounts.presale)

	var receipt *chain.Receipt
	err = p.runStage(ctx, StageSubmit, func(ctx context.Context) error {
		receipt, err = p.submitAndWait(ctx, runLogger, credential, chain.Call{
			To:     p.params.TokenManager(),
			ABI:    &chain.TokenManagerABI,
			Method: chain.MethodCreateToken,
			Args:   []any{prepared.CreateArg, prepared.Signature},
			Value:  value,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	var event *chain.TokenCreateEvent
	err = p.runStage(ctx, StageExtract, func(_ context.Context) error {
		event, err = chain.ExtractTokenCreate(receipt)
		return err
	})
	if err != nil {
		return nil, err
	}

	result = &Result{
		Account:     credential.Address(),
		Symbol:      req.Symbol,
		Token:       event.Token,
		URL:         p.params.TokenURL(event.Token),
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
		Value:       value,
	}
	runLogger.Info("token created",
		slog.String("token", event.Token.Hex()),
		slog.Uint64("block", receipt.BlockNumber),
		slog.String("url", result.URL),
		slog.String("value", FormatEther(value)),
	)

	if req.Approve.Disabled {
		return result, nil
	}

	err = p.runStage(ctx, StageApprove, func(ctx context.Context) error {
		receipt, err = p.approve(ctx, runLogger, credential, event.Token, req.Approve, amounts.approveAmount)
		return err
	})
	if err != nil {
		return nil, err
	}

	result.ApproveTx = receipt.TxHash
	result.ApproveBlock = receipt.BlockNumber
	runLogger.Info("token approved", slog.Uint64("block", receipt.BlockNumber))

	return result, nil
}

func (p *Pipeline) runStage(ctx context.Context, stage Stage, fn func(ctx context.Context) error) (err error) {
	ctx, span := tracing.StartTracing(ctx, "Pipeline."+string(stage), p.tracingEnabled, p.attributes(attribute.String("stage", string(stage)))...)
	start := time.Now()
	defer func() {
		p.stats.observeStage(stage, time.Since(start))
		tracing.EndTracing(span, err)
	}()

	err = fn(ctx)
	if err != nil {
		return newStageError(stage, err)
	}

	return nil
}

func (p *Pipeline) attributes(attr ...attribute.KeyValue) []attribute.KeyValue {
	return slices.Concat(p.tracingAttributes, attr)
}

func (p *Pipeline) login(ctx context.Context, credential *wallet.Credential) (string, error) {
	address := strings.ToLower(credential.Derived().Hex())

	nonce, err := p.platform.GenerateNonce(ctx, address)
	if err != nil {
		return "", err
	}

	signature, err := credential.SignMessage(platform.LoginMessage(nonce))
	if err != nil {
		return "", err
	}

	return p.platform.Login(ctx, address, hexutil.Encode(signature))
}

// validateLogin fires the login validation call and returns at once. Its result is only logged.
func (p *Pipeline) validateLogin(ctx context.Context, runLogger *slog.Logger, credential *wallet.Credential, session string) {
	address := strings.ToLower(credential.Derived().Hex())
	validateCtx := context.WithoutCancel(ctx)

	p.validateWg.Add(1)
	go func() {
		defer p.validateWg.Done()

		ctx, cancel := context.WithTimeout(validateCtx, p.validateTimeout)
		defer cancel()

		err := p.platform.ValidateLogin(ctx, address, session)
		if err != nil && !errors.Is(err, platform.ErrValidateURLNotConfigured) {
			runLogger.Debug("login validation failed, ignored", slog.String("err", err.Error()))
		}
	}()
}

func (p *Pipeline) upload(ctx context.Context, session string, imageRef string) (string, error) {
	image, filename, err := p.images.Open(ctx, imageRef)
	if err != nil {
		return "", err
	}
	defer image.Close()

	return p.platform.UploadImage(ctx, session, filename, image)
}

func (p *Pipeline) createPayload(req LaunchRequest, imageURL string) platform.CreateTokenPayload {
	preSale := strings.TrimSpace(req.PresaleBNB)
	if preSale == "" {
		preSale = "0"
	}

	return platform.CreateTokenPayload{
		Name:          req.Name,
		ShortName:     req.Symbol,
		Desc:          req.Description,
		ImgURL:        imageURL,
		LaunchTime:    p.now().Add(req.LaunchDelay).UnixMilli(),
		Label:         req.Label,
		PreSale:       preSale,
		OnlyMPC:       req.OnlyMPC,
		WebURL:        strings.TrimSpace(req.WebURL),
		TwitterURL:    strings.TrimSpace(req.TwitterURL),
		TelegramURL:   strings.TrimSpace(req.TelegramURL),
		LPTradingFee:  p.params.lpTradingFee,
		TotalSupply:   p.params.TotalSupply(),
		RaisedAmount:  p.params.raisedAmount,
		SaleRate:      p.params.saleRate,
		ReserveRate:   p.params.reserveRate,
		FunGroup:      false,
		ClickFun:      false,
		Symbol:        p.params.quoteSymbol,
		SymbolAddress: strings.ToLower(p.params.QuoteToken().Hex()),
	}
}

// submitAndWait sends the call at the current gas price and waits for a successful receipt.
func (p *Pipeline) submitAndWait(ctx context.Context, runLogger *slog.Logger, credential *wallet.Credential, call chain.Call) (*chain.Receipt, error) {
	gasPrice, err := p.chain.GasPrice(ctx)
	if err != nil {
		return nil, err
	}
	call.GasPrice = gasPrice

	txHash, err := p.chain.Submit(ctx, credential, call)
	if err != nil {
		return nil, err
	}

	value := "0"
	if call.Value != nil {
		value = FormatEther(call.Value)
	}
	runLogger.Info("transaction submitted",
		slog.String("method", call.Method),
		slog.String("hash", txHash.Hex()),
		slog.String("value", value),
	)

	receipt, err := p.waiter.Wait(ctx, txHash)
	if err != nil {
		return nil, err
	}

	if !receipt.Succeeded() {
		return nil, errors.Join(chain.ErrTransactionReverted, fmt.Errorf("%s tx %s in block %d", call.Method, receipt.TxHash.Hex(), receipt.BlockNumber))
	}

	return receipt, nil
}

func (p *Pipeline) approve(ctx context.Context, runLogger *slog.Logger, credential *wallet.Credential, token common.Address, policy ApprovePolicy, amountTokens string) (*chain.Receipt, error) {
	decimals, err := p.chain.Decimals(ctx, token)
	if err != nil {
		runLogger.Warn("failed to read token decimals, assuming 18", slog.String("token", token.Hex()), slog.String("err", err.Error()))
		decimals = decimalsFallback
	}

	amount, err := ParseUnits(amountTokens, decimals)
	if err != nil {
		return nil, err
	}

	spender := policy.Spender
	if spender == (common.Address{}) {
		spender = p.params.TokenManager()
	}

	runLogger.Debug("approving",
		slog.String("spender", logger.ShortAddress(spender.Hex())),
		slog.String("amount", amountTokens),
	)

	return p.submitAndWait(ctx, runLogger, credential, chain.Call{
		To:     token,
		ABI:    &chain.ERC20ABI,
		Method: chain.MethodApprove,
		Args:   []any{spender, amount},
	})
}

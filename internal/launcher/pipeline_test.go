package launcher_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/memelaunch/launcher/internal/chain"
	"github.com/memelaunch/launcher/internal/launcher"
	"github.com/memelaunch/launcher/internal/launcher/mocks"
	"github.com/memelaunch/launcher/internal/platform"
)

const (
	testAccount = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
	testKey     = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	otherKey    = "0x8f2a55949038a9610f50fb23b5883af3b4ecb3c3bb792cbcefbd1542c692be63"
)

var (
	logger      = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tokenAddr   = common.HexToAddress("0x4444444444444444444444444444444444444444")
	createHash  = common.HexToHash("0xc1")
	approveHash = common.HexToHash("0xa1")
	fixedNow    = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
)

type fixture struct {
	platform *mocks.PlatformClientMock
	chain    *mocks.ChainClientMock
	waiter   *mocks.ReceiptWaiterMock
	images   *mocks.ImageSourceMock
}

func tokenCreateLog(t *testing.T) *types.Log {
	t.Helper()

	event := chain.TokenManagerABI.Events[chain.EventTokenCreate]
	data, err := event.Inputs.NonIndexed().Pack(
		common.HexToAddress(testAccount),
		tokenAddr,
		big.NewInt(1),
		"Test Token",
		"TT",
		big.NewInt(1_000_000_000),
		big.NewInt(fixedNow.Unix()+60),
		big.NewInt(10_000_000_000_000_000),
	)
	require.NoError(t, err)

	return &types.Log{Address: common.HexToAddress(launcher.TokenManagerDefault), Topics: []common.Hash{event.ID}, Data: data}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	createLogs := []*types.Log{{Topics: []common.Hash{{0x01}}}, tokenCreateLog(t)}

	return &fixture{
		platform: &mocks.PlatformClientMock{
			GenerateNonceFunc: func(_ context.Context, _ string) (string, error) {
				return "nonce-1", nil
			},
			LoginFunc: func(_ context.Context, _ string, _ string) (string, error) {
				return "session", nil
			},
			ValidateLoginFunc: func(_ context.Context, _ string, _ string) error {
				return nil
			},
			UploadImageFunc: func(_ context.Context, _ string, _ string, _ io.Reader) (string, error) {
				return "https://static.example/logo.png", nil
			},
			PrepareCreateFunc: func(_ context.Context, _ string, _ platform.CreateTokenPayload) (*platform.PreparedCreate, error) {
				return &platform.PreparedCreate{CreateArg: []byte{0x01, 0x02}, Signature: []byte{0x03}}, nil
			},
		},
		chain: &mocks.ChainClientMock{
			GasPriceFunc: func(_ context.Context) (*big.Int, error) {
				return big.NewInt(1_000_000_000), nil
			},
			SubmitFunc: func(_ context.Context, _ chain.TxSigner, call chain.Call) (common.Hash, error) {
				if call.Method == chain.MethodApprove {
					return approveHash, nil
				}
				return createHash, nil
			},
			DecimalsFunc: func(_ context.Context, _ common.Address) (uint8, error) {
				return 9, nil
			},
		},
		waiter: &mocks.ReceiptWaiterMock{
			WaitFunc: func(_ context.Context, txHash common.Hash) (*chain.Receipt, error) {
				if txHash == approveHash {
					return &chain.Receipt{TxHash: txHash, BlockNumber: 101, Status: types.ReceiptStatusSuccessful}, nil
				}
				return &chain.Receipt{TxHash: txHash, BlockNumber: 100, Status: types.ReceiptStatusSuccessful, Logs: createLogs}, nil
			},
		},
		images: &mocks.ImageSourceMock{
			OpenFunc: func(_ context.Context, ref string) (io.ReadCloser, string, error) {
				return io.NopCloser(strings.NewReader("png")), "logo.png", nil
			},
		},
	}
}

func (f *fixture) pipeline(opts ...func(*launcher.Pipeline)) *launcher.Pipeline {
	opts = append([]func(*launcher.Pipeline){launcher.WithNow(func() time.Time { return fixedNow })}, opts...)

	return launcher.NewPipeline(logger, launcher.DefaultParams(), f.platform, f.chain, f.waiter, f.images, opts...)
}

func (f *fixture) remoteCalls() int {
	return len(f.platform.GenerateNonceCalls()) + len(f.platform.LoginCalls()) + len(f.platform.UploadImageCalls()) +
		len(f.platform.PrepareCreateCalls()) + len(f.chain.SubmitCalls()) + len(f.chain.GasPriceCalls())
}

func request() launcher.LaunchRequest {
	return launcher.LaunchRequest{
		Name:        "Test Token",
		Symbol:      "TT",
		Description: "a token for tests",
		ImageRef:    "./logo.png",
		Label:       "Meme",
		TwitterURL:  " https://x.com/tt ",
		LaunchDelay: time.Minute,
	}
}

func account() launcher.Account {
	return launcher.Account{Address: testAccount, PrivateKey: testKey}
}

func TestPipelineLaunch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// given
		f := newFixture(t)
		sut := f.pipeline()

		// when
		result, err := sut.Launch(context.Background(), account(), request())
		sut.Wait()

		// then
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress(testAccount), result.Account)
		require.Equal(t, tokenAddr, result.Token)
		require.Equal(t, "https://four.meme/token/"+tokenAddr.Hex(), result.URL)
		require.Equal(t, createHash, result.TxHash)
		require.Equal(t, uint64(100), result.BlockNumber)
		require.Equal(t, approveHash, result.ApproveTx)
		require.Equal(t, uint64(101), result.ApproveBlock)

		// login signs the nonce message with the account key
		loginCalls := f.platform.LoginCalls()
		require.Len(t, loginCalls, 1)
		require.Equal(t, strings.ToLower(testAccount), loginCalls[0].Address)
		sig, err := hexutil.Decode(loginCalls[0].Signature)
		require.NoError(t, err)
		require.Len(t, sig, 65)
		sig[crypto.RecoveryIDOffset] -= 27
		pub, err := crypto.SigToPub(accounts.TextHash([]byte("You are sign in Meme nonce-1")), sig)
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress(testAccount), crypto.PubkeyToAddress(*pub))

		require.Len(t, f.platform.ValidateLoginCalls(), 1)
		require.Equal(t, "session", f.platform.ValidateLoginCalls()[0].AccessToken)

		upload := f.platform.UploadImageCalls()
		require.Len(t, upload, 1)
		require.Equal(t, "session", upload[0].AccessToken)
		require.Equal(t, "logo.png", upload[0].Filename)

		payload := f.platform.PrepareCreateCalls()[0].Payload
		require.Equal(t, "TT", payload.ShortName)
		require.Equal(t, "https://static.example/logo.png", payload.ImgURL)
		require.Equal(t, fixedNow.Add(time.Minute).UnixMilli(), payload.LaunchTime)
		require.Equal(t, "0", payload.PreSale)
		require.Equal(t, "https://x.com/tt", payload.TwitterURL)
		require.Empty(t, payload.WebURL)
		require.Equal(t, int64(1_000_000_000), payload.TotalSupply)
		require.InDelta(t, 0.8, payload.SaleRate, 1e-9)
		require.InDelta(t, 24, payload.RaisedAmount, 1e-9)
		require.InDelta(t, 0.0025, payload.LPTradingFee, 1e-9)
		require.Equal(t, "BNB", payload.Symbol)
		require.Equal(t, "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c", payload.SymbolAddress)

		submits := f.chain.SubmitCalls()
		require.Len(t, submits, 2)

		create := submits[0].Call
		require.Equal(t, common.HexToAddress(launcher.TokenManagerDefault), create.To)
		require.Equal(t, chain.MethodCreateToken, create.Method)
		require.Equal(t, []any{[]byte{0x01, 0x02}, []byte{0x03}}, create.Args)
		require.Equal(t, "10000000000000000", create.Value.String())
		require.Equal(t, int64(1_000_000_000), create.GasPrice.Int64())
		require.Equal(t, common.HexToAddress(testAccount), submits[0].Signer.Derived())

		approve := submits[1].Call
		require.Equal(t, tokenAddr, approve.To)
		require.Equal(t, chain.MethodApprove, approve.Method)
		require.Equal(t, common.HexToAddress(launcher.TokenManagerDefault), approve.Args[0])
		require.Equal(t, "1000000000000000000", approve.Args[1].(*big.Int).String())
	})

	t.Run("presale value is floored to whole gwei", func(t *testing.T) {
		// given
		f := newFixture(t)
		req := request()
		req.PresaleBNB = "0.123456789123456789"
		req.Approve.Disabled = true

		// when
		result, err := f.pipeline().Launch(context.Background(), account(), req)

		// then
		require.NoError(t, err)
		require.Equal(t, "133456789000000000", result.Value.String())
		require.Equal(t, "133456789000000000", f.chain.SubmitCalls()[0].Call.Value.String())
		require.Equal(t, "0.123456789123456789", f.platform.PrepareCreateCalls()[0].Payload.PreSale)
	})

	t.Run("custom approve policy", func(t *testing.T) {
		// given
		f := newFixture(t)
		f.chain.DecimalsFunc = func(_ context.Context, _ common.Address) (uint8, error) {
			return 0, errors.New("execution reverted")
		}
		spender := common.HexToAddress("0x9999999999999999999999999999999999999999")
		req := request()
		req.Approve = launcher.ApprovePolicy{Spender: spender, AmountTokens: "2.5"}

		// when
		_, err := f.pipeline().Launch(context.Background(), account(), req)

		// then
		require.NoError(t, err)
		approve := f.chain.SubmitCalls()[1].Call
		require.Equal(t, spender, approve.Args[0])
		require.Equal(t, "2500000000000000000", approve.Args[1].(*big.Int).String())
	})

	t.Run("approve disabled", func(t *testing.T) {
		// given
		f := newFixture(t)
		req := request()
		req.Approve.Disabled = true

		// when
		result, err := f.pipeline().Launch(context.Background(), account(), req)

		// then
		require.NoError(t, err)
		require.Len(t, f.chain.SubmitCalls(), 1)
		require.Empty(t, f.chain.DecimalsCalls())
		require.Equal(t, common.Hash{}, result.ApproveTx)
	})

	t.Run("validate failure is ignored", func(t *testing.T) {
		// given
		f := newFixture(t)
		f.platform.ValidateLoginFunc = func(_ context.Context, _ string, _ string) error {
			return errors.New("validation endpoint down")
		}
		sut := f.pipeline()

		// when
		result, err := sut.Launch(context.Background(), account(), request())
		sut.Wait()

		// then
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Len(t, f.platform.ValidateLoginCalls(), 1)
	})

	t.Run("validate does not block the pipeline", func(t *testing.T) {
		// given
		f := newFixture(t)
		release := make(chan struct{})
		var validated atomic.Bool
		f.platform.ValidateLoginFunc = func(_ context.Context, _ string, _ string) error {
			<-release
			validated.Store(true)
			return nil
		}
		sut := f.pipeline()

		// when
		_, err := sut.Launch(context.Background(), account(), request())

		// then
		require.NoError(t, err)
		require.False(t, validated.Load())

		close(release)
		sut.Wait()
		require.True(t, validated.Load())
	})
}

func TestPipelineLaunchFailures(t *testing.T) {
	tt := []struct {
		name                string
		account             launcher.Account
		setup               func(f *fixture, req *launcher.LaunchRequest)
		expectedStage       launcher.Stage
		expectedErrors      []error
		expectedRemoteCalls int
		expectedSubmits     int
	}{
		{
			name:           "key controls another address",
			account:        launcher.Account{Address: testAccount, PrivateKey: otherKey},
			expectedStage:  launcher.StageLogin,
			expectedErrors: []error{launcher.ErrIdentityMismatch, launcher.ErrLoginFailed},
		},
		{
			name:           "unparseable key",
			account:        launcher.Account{Address: testAccount, PrivateKey: "not-a-key"},
			expectedStage:  launcher.StageConfig,
			expectedErrors: []error{launcher.ErrConfigInvalid},
		},
		{
			name:    "invalid presale",
			account: account(),
			setup: func(_ *fixture, req *launcher.LaunchRequest) {
				req.PresaleBNB = "1,5"
			},
			expectedStage:  launcher.StageConfig,
			expectedErrors: []error{launcher.ErrConfigInvalid, launcher.ErrInvalidAmount},
		},
		{
			name:    "nonce request rejected",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				f.platform.GenerateNonceFunc = func(_ context.Context, _ string) (string, error) {
					return "", &platform.ResponseError{Endpoint: "nonce", StatusCode: 200, Code: "1"}
				}
			},
			expectedStage:       launcher.StageLogin,
			expectedErrors:      []error{launcher.ErrLoginFailed, platform.ErrRemoteCallFailed},
			expectedRemoteCalls: 1,
		},
		{
			name:    "upload rejected",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				f.platform.UploadImageFunc = func(_ context.Context, _ string, _ string, _ io.Reader) (string, error) {
					return "", &platform.ResponseError{Endpoint: "upload", StatusCode: 413}
				}
			},
			expectedStage:       launcher.StageUpload,
			expectedErrors:      []error{launcher.ErrUploadFailed, platform.ErrRemoteCallFailed},
			expectedRemoteCalls: 3,
		},
		{
			name:    "creation arguments missing",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				f.platform.PrepareCreateFunc = func(_ context.Context, _ string, _ platform.CreateTokenPayload) (*platform.PreparedCreate, error) {
					return nil, platform.ErrUnexpectedResponseShape
				}
			},
			expectedStage:       launcher.StagePrepare,
			expectedErrors:      []error{launcher.ErrPrepareFailed, platform.ErrUnexpectedResponseShape},
			expectedRemoteCalls: 4,
		},
		{
			name:    "submission rejected",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				f.chain.SubmitFunc = func(_ context.Context, _ chain.TxSigner, _ chain.Call) (common.Hash, error) {
					return common.Hash{}, chain.ErrSubmissionFailed
				}
			},
			expectedStage:       launcher.StageSubmit,
			expectedErrors:      []error{launcher.ErrSubmitFailed, chain.ErrSubmissionFailed},
			expectedRemoteCalls: 6,
			expectedSubmits:     1,
		},
		{
			name:    "receipt timeout",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				f.waiter.WaitFunc = func(_ context.Context, _ common.Hash) (*chain.Receipt, error) {
					return nil, chain.ErrReceiptTimeout
				}
			},
			expectedStage:       launcher.StageSubmit,
			expectedErrors:      []error{launcher.ErrSubmitFailed, chain.ErrReceiptTimeout},
			expectedRemoteCalls: 6,
			expectedSubmits:     1,
		},
		{
			name:    "create reverted",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				f.waiter.WaitFunc = func(_ context.Context, txHash common.Hash) (*chain.Receipt, error) {
					return &chain.Receipt{TxHash: txHash, Status: types.ReceiptStatusFailed}, nil
				}
			},
			expectedStage:       launcher.StageSubmit,
			expectedErrors:      []error{launcher.ErrSubmitFailed, chain.ErrTransactionReverted},
			expectedRemoteCalls: 6,
			expectedSubmits:     1,
		},
		{
			name:    "event missing",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				f.waiter.WaitFunc = func(_ context.Context, txHash common.Hash) (*chain.Receipt, error) {
					return &chain.Receipt{TxHash: txHash, Status: types.ReceiptStatusSuccessful, Logs: []*types.Log{{Topics: []common.Hash{{0x01}}}}}, nil
				}
			},
			expectedStage:       launcher.StageExtract,
			expectedErrors:      []error{launcher.ErrExtractFailed, chain.ErrEventNotFound},
			expectedRemoteCalls: 6,
			expectedSubmits:     1,
		},
		{
			name:    "approve reverted",
			account: account(),
			setup: func(f *fixture, _ *launcher.LaunchRequest) {
				createWait := f.waiter.WaitFunc
				f.waiter.WaitFunc = func(ctx context.Context, txHash common.Hash) (*chain.Receipt, error) {
					if txHash == approveHash {
						return &chain.Receipt{TxHash: txHash, Status: types.ReceiptStatusFailed}, nil
					}
					return createWait(ctx, txHash)
				}
			},
			expectedStage:       launcher.StageApprove,
			expectedErrors:      []error{launcher.ErrApproveFailed, chain.ErrTransactionReverted},
			expectedRemoteCalls: 8,
			expectedSubmits:     2,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			f := newFixture(t)
			req := request()
			if tc.setup != nil {
				tc.setup(f, &req)
			}

			registry := prometheus.NewRegistry()
			stats, err := launcher.NewStats(registry)
			require.NoError(t, err)

			sut := f.pipeline(launcher.WithStats(stats))

			// when
			result, err := sut.Launch(context.Background(), tc.account, req)
			sut.Wait()

			// then
			require.Nil(t, result)
			for _, expectedErr := range tc.expectedErrors {
				require.ErrorIs(t, err, expectedErr)
			}

			var stageErr *launcher.StageError
			require.ErrorAs(t, err, &stageErr)
			require.Equal(t, tc.expectedStage, stageErr.Stage)
			require.Equal(t, tc.expectedStage, launcher.StageOf(err))

			require.Equal(t, tc.expectedRemoteCalls, f.remoteCalls())
			require.Len(t, f.chain.SubmitCalls(), tc.expectedSubmits)

			expected := `
# HELP launcher_launches_total Number of finished launch pipelines by status
# TYPE launcher_launches_total counter
launcher_launches_total{status="failed"} 1
# HELP launcher_pipelines_in_flight Number of launch pipelines currently running
# TYPE launcher_pipelines_in_flight gauge
launcher_pipelines_in_flight 0
`
			require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "launcher_launches_total", "launcher_pipelines_in_flight"))

			failures, err := testutil.GatherAndCount(registry, "launcher_stage_failures_total")
			require.NoError(t, err)
			require.Equal(t, 1, failures)
		})
	}
}

package launcher

import (
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/memelaunch/launcher/internal/logger"
)

// Account is the configured identity of one launch. The key is never logged or printed.
type Account struct {
	Address    string
	PrivateKey string
}

func (a Account) String() string {
	return logger.ShortAddress(a.Address)
}

func (a Account) LogValue() slog.Value {
	return slog.StringValue(logger.ShortAddress(a.Address))
}

// ApprovePolicy controls the spending approval issued after creation.
// A zero Spender means the token manager, an empty AmountTokens means the full supply.
type ApprovePolicy struct {
	Disabled     bool
	Spender      common.Address
	AmountTokens string
}

// LaunchRequest is the read-only description of one token launch.
type LaunchRequest struct {
	Name        string
	Symbol      string
	Description string
	ImageRef    string
	Label       string
	// PresaleBNB is a decimal BNB amount. Empty means no presale.
	PresaleBNB  string
	OnlyMPC     bool
	WebURL      string
	TwitterURL  string
	TelegramURL string
	LaunchDelay time.Duration
	Approve     ApprovePolicy
}

// Job is one item of a batch. ConfigErr is set when the item failed validation while loading.
type Job struct {
	Index     int
	Account   Account
	Request   LaunchRequest
	ConfigErr error
}

type Result struct {
	Account      common.Address
	Symbol       string
	Token        common.Address
	URL          string
	TxHash       common.Hash
	BlockNumber  uint64
	Value        *big.Int
	ApproveTx    common.Hash
	ApproveBlock uint64
}

// Outcome is the per-job entry of a batch run. Exactly one of Result and Err is set.
type Outcome struct {
	Index   int
	Account string
	Symbol  string
	Result  *Result
	Err     error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.Result != nil
}

package launcher

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/memelaunch/launcher/internal/wallet"
)

// Check is the offline verdict on one job.
type Check struct {
	Index   int
	Account string
	Symbol  string
	Derived common.Address
	// wei sent with the create transaction
	Value *big.Int
	Err   error
}

func (c Check) Passed() bool {
	return c.Err == nil
}

// CheckJobs runs the checks a launch performs before its first remote call, for every job.
// It needs neither the network nor the chain.
func CheckJobs(params Params, jobs []Job) []Check {
	checks := make([]Check, len(jobs))
	for i, job := range jobs {
		checks[i] = Check{
			Index:   job.Index,
			Account: job.Account.Address,
			Symbol:  job.Request.Symbol,
		}

		if job.ConfigErr != nil {
			checks[i].Err = newStageError(StageConfig, job.ConfigErr)
			continue
		}

		credential, amounts, err := checkRequest(params, job.Account, job.Request)
		if credential != nil {
			checks[i].Derived = credential.Derived()
		}
		if err != nil {
			checks[i].Err = err
			continue
		}

		checks[i].Value = createValue(params, amounts.presale)
	}

	return checks
}

// checkRequest validates everything that can be checked before the first remote call.
// On an identity mismatch the credential is returned along with the error.
func checkRequest(params Params, account Account, req LaunchRequest) (*wallet.Credential, launchAmounts, error) {
	credential, err := wallet.New(account.Address, account.PrivateKey)
	if err != nil {
		return nil, launchAmounts{}, newStageError(StageConfig, err)
	}

	if !credential.Matches() {
		return credential, launchAmounts{}, newStageError(StageLogin, errors.Join(ErrIdentityMismatch,
			fmt.Errorf("configured %s, key controls %s", credential.Address().Hex(), credential.Derived().Hex())))
	}

	presale := new(big.Int)
	if strings.TrimSpace(req.PresaleBNB) != "" {
		presale, err = ParseUnits(req.PresaleBNB, EtherDecimals)
		if err != nil {
			return credential, launchAmounts{}, newStageError(StageConfig, fmt.Errorf("presale: %w", err))
		}
	}

	approveAmount := req.Approve.AmountTokens
	if strings.TrimSpace(approveAmount) == "" {
		approveAmount = params.DefaultApproveAmount()
	}

	if !req.Approve.Disabled {
		_, err = ParseUnits(approveAmount, decimalsFallback)
		if err != nil {
			return credential, launchAmounts{}, newStageError(StageConfig, fmt.Errorf("approve amount: %w", err))
		}
	}

	return credential, launchAmounts{presale: presale, approveAmount: approveAmount}, nil
}

func createValue(params Params, presale *big.Int) *big.Int {
	return FloorToGwei(new(big.Int).Add(params.CreateFee(), presale))
}

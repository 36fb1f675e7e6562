package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	MethodCreateToken = "createToken"
	MethodApprove     = "approve"
	MethodDecimals    = "decimals"
	EventTokenCreate  = "TokenCreate"
)

const tokenManagerJSON = `[
  {"type":"function","name":"createToken","stateMutability":"payable","outputs":[],
   "inputs":[{"internalType":"bytes","name":"createArg","type":"bytes"},{"internalType":"bytes","name":"sign","type":"bytes"}]},
  {"type":"event","name":"TokenCreate","anonymous":false,
   "inputs":[
     {"indexed":false,"name":"creator","type":"address"},
     {"indexed":false,"name":"token","type":"address"},
     {"indexed":false,"name":"requestId","type":"uint256"},
     {"indexed":false,"name":"name","type":"string"},
     {"indexed":false,"name":"symbol","type":"string"},
     {"indexed":false,"name":"totalSupply","type":"uint256"},
     {"indexed":false,"name":"launchTime","type":"uint256"},
     {"indexed":false,"name":"launchFee","type":"uint256"}]}
]`

const erc20JSON = `[
  {"type":"function","name":"approve","stateMutability":"nonpayable",
   "inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"decimals","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"allowance","stateMutability":"view",
   "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]}
]`

var (
	// TokenManagerABI covers the launch contract surface used here.
	TokenManagerABI abi.ABI
	ERC20ABI        abi.ABI
)

func init() {
	TokenManagerABI = mustParseABI(tokenManagerJSON)
	ERC20ABI = mustParseABI(erc20JSON)
}

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}

	return parsed
}

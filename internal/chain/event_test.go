package chain_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/memelaunch/launcher/internal/chain"
)

var (
	creatorAddr = common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
	tokenAddr   = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func tokenCreateLog(t *testing.T, token common.Address, symbol string) *types.Log {
	t.Helper()

	event := chain.TokenManagerABI.Events[chain.EventTokenCreate]
	data, err := event.Inputs.NonIndexed().Pack(
		creatorAddr,
		token,
		big.NewInt(77),
		"Test Token",
		symbol,
		big.NewInt(1_000_000_000),
		big.NewInt(1_700_000_000),
		big.NewInt(10_000_000_000_000_000),
	)
	require.NoError(t, err)

	return &types.Log{Topics: []common.Hash{event.ID}, Data: data}
}

func transferLog() *types.Log {
	return &types.Log{
		Topics: []common.Hash{crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")), {}, {}},
		Data:   common.LeftPadBytes(big.NewInt(5).Bytes(), 32),
	}
}

func TestExtractTokenCreate(t *testing.T) {
	tt := []struct {
		name          string
		logs          func(t *testing.T) []*types.Log
		expectedToken common.Address
		expectedError error
	}{
		{
			name: "single matching log among others",
			logs: func(t *testing.T) []*types.Log {
				return []*types.Log{transferLog(), tokenCreateLog(t, tokenAddr, "TT"), transferLog()}
			},
			expectedToken: tokenAddr,
		},
		{
			name: "nil entries are skipped",
			logs: func(t *testing.T) []*types.Log {
				return []*types.Log{nil, tokenCreateLog(t, tokenAddr, "TT")}
			},
			expectedToken: tokenAddr,
		},
		{
			name: "first matching log wins",
			logs: func(t *testing.T) []*types.Log {
				return []*types.Log{tokenCreateLog(t, tokenAddr, "TT"), tokenCreateLog(t, common.HexToAddress("0x01"), "XX")}
			},
			expectedToken: tokenAddr,
		},
		{
			name: "no matching log",
			logs: func(_ *testing.T) []*types.Log {
				return []*types.Log{transferLog(), {}}
			},
			expectedError: chain.ErrEventNotFound,
		},
		{
			name: "empty receipt",
			logs: func(_ *testing.T) []*types.Log {
				return nil
			},
			expectedError: chain.ErrEventNotFound,
		},
		{
			name: "matching topic with corrupt data",
			logs: func(_ *testing.T) []*types.Log {
				return []*types.Log{{Topics: []common.Hash{chain.TokenManagerABI.Events[chain.EventTokenCreate].ID}, Data: []byte{0x01}}}
			},
			expectedError: chain.ErrFailedToDecodeLog,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			receipt := &chain.Receipt{TxHash: common.HexToHash("0xaa"), Logs: tc.logs(t)}

			// when
			event, err := chain.ExtractTokenCreate(receipt)

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedToken, event.Token)
			require.Equal(t, creatorAddr, event.Creator)
			require.Equal(t, int64(77), event.RequestID.Int64())
			require.Equal(t, "Test Token", event.Name)
			require.Equal(t, "TT", event.Symbol)
			require.Equal(t, int64(1_000_000_000), event.TotalSupply.Int64())
			require.Equal(t, int64(1_700_000_000), event.LaunchTime.Int64())
			require.Equal(t, int64(10_000_000_000_000_000), event.LaunchFee.Int64())
		})
	}
}

func TestDecodeEventLog(t *testing.T) {
	t.Run("decodes all fields", func(t *testing.T) {
		// when
		fields, err := chain.DecodeEventLog(chain.TokenManagerABI, chain.EventTokenCreate, tokenCreateLog(t, tokenAddr, "TT"))

		// then
		require.NoError(t, err)
		require.Len(t, fields, 8)
		require.Equal(t, tokenAddr, fields["token"])
		require.Equal(t, "TT", fields["symbol"])
	})

	t.Run("other signature", func(t *testing.T) {
		_, err := chain.DecodeEventLog(chain.TokenManagerABI, chain.EventTokenCreate, transferLog())

		require.ErrorIs(t, err, chain.ErrLogTopicMismatched)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := chain.DecodeEventLog(chain.ERC20ABI, chain.EventTokenCreate, transferLog())

		require.ErrorIs(t, err, chain.ErrEventNotInABI)
	})
}

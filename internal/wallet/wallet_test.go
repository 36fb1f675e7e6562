package wallet_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/memelaunch/launcher/internal/wallet"
)

const (
	testKeyHex  = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

func TestNew(t *testing.T) {
	tt := []struct {
		name       string
		address    string
		key        string
		matches    bool
		expectedEr error
	}{
		{
			name:    "matching key",
			address: testAddress,
			key:     testKeyHex,
			matches: true,
		},
		{
			name:    "matching key with 0x prefix and lower case address",
			address: strings.ToLower(testAddress),
			key:     "0x" + testKeyHex,
			matches: true,
		},
		{
			name:    "key for a different account",
			address: "0x5c952063c7fc8610FFDB798152D69F0B9550762b",
			key:     testKeyHex,
			matches: false,
		},
		{
			name:       "malformed address",
			address:    "0x1234",
			key:        testKeyHex,
			expectedEr: wallet.ErrInvalidAddress,
		},
		{
			name:       "malformed key",
			address:    testAddress,
			key:        "not-a-key",
			expectedEr: wallet.ErrInvalidPrivateKey,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			cred, err := wallet.New(tc.address, tc.key)

			// then
			if tc.expectedEr != nil {
				require.ErrorIs(t, err, tc.expectedEr)
				require.NotContains(t, err.Error(), tc.key)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.matches, cred.Matches())
			require.Equal(t, common.HexToAddress(testAddress), cred.Derived())
		})
	}
}

func TestCredential_SignMessage(t *testing.T) {
	// given
	cred, err := wallet.New(testAddress, testKeyHex)
	require.NoError(t, err)

	// when
	sig, err := cred.SignMessage("You are sign in Meme 123456")

	// then
	require.NoError(t, err)
	require.Len(t, sig, crypto.SignatureLength)
	require.Contains(t, []byte{27, 28}, sig[crypto.RecoveryIDOffset])

	recoverable := append([]byte{}, sig...)
	recoverable[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(accounts.TextHash([]byte("You are sign in Meme 123456")), recoverable)
	require.NoError(t, err)
	require.Equal(t, cred.Derived(), crypto.PubkeyToAddress(*pub))
}

func TestCredential_SignTx(t *testing.T) {
	// given
	cred, err := wallet.New(testAddress, testKeyHex)
	require.NoError(t, err)
	chainID := big.NewInt(56)
	tx := types.NewTx(&types.LegacyTx{Nonce: 1, GasPrice: big.NewInt(1_000_000_000), Gas: 21000, Value: big.NewInt(1)})

	// when
	signed, err := cred.SignTx(tx, chainID)

	// then
	require.NoError(t, err)
	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	require.Equal(t, cred.Derived(), sender)
}

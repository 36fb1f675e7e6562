package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidAddress    = errors.New("invalid account address")
	ErrFailedToSign      = errors.New("failed to sign")
)

// Credential is an account identity together with the key expected to control it.
// The configured address is kept as given; Matches tells whether the key derives it.
type Credential struct {
	configured common.Address
	derived    common.Address
	key        *ecdsa.PrivateKey
}

func New(accountAddress string, privateKeyHex string) (*Credential, error) {
	accountAddress = strings.TrimSpace(accountAddress)
	if !common.IsHexAddress(accountAddress) {
		return nil, errors.Join(ErrInvalidAddress, fmt.Errorf("address: %q", accountAddress))
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		// the key itself is never echoed back
		return nil, errors.Join(ErrInvalidPrivateKey, errors.New("private key could not be parsed"))
	}

	return &Credential{
		configured: common.HexToAddress(accountAddress),
		derived:    crypto.PubkeyToAddress(key.PublicKey),
		key:        key,
	}, nil
}

// Address is the configured account address.
func (c *Credential) Address() common.Address {
	return c.configured
}

// Derived is the address controlled by the signing key.
func (c *Credential) Derived() common.Address {
	return c.derived
}

func (c *Credential) Matches() bool {
	return c.configured == c.derived
}

// SignMessage produces an EIP-191 personal_sign signature with v in {27, 28}.
func (c *Credential) SignMessage(message string) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), c.key)
	if err != nil {
		return nil, errors.Join(ErrFailedToSign, err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return sig, nil
}

func (c *Credential) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return nil, errors.Join(ErrFailedToSign, err)
	}

	return signed, nil
}

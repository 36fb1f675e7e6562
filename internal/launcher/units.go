package launcher

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid decimal amount")

	gwei = big.NewInt(1_000_000_000)
)

const EtherDecimals = 18

// ParseUnits converts a non-negative decimal string such as "0.01" into an integer
// amount with the given number of decimals. Excess fractional digits are an error.
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, errors.Join(ErrInvalidAmount, errors.New("empty amount"))
	}

	whole, frac, _ := strings.Cut(amount, ".")
	if whole == "" && frac == "" {
		return nil, errors.Join(ErrInvalidAmount, fmt.Errorf("amount: %q", amount))
	}

	if !isDigits(whole) || !isDigits(frac) {
		return nil, errors.Join(ErrInvalidAmount, fmt.Errorf("amount: %q", amount))
	}

	frac = strings.TrimRight(frac, "0")
	if len(frac) > int(decimals) {
		return nil, errors.Join(ErrInvalidAmount, fmt.Errorf("amount %q has more than %d decimals", amount, decimals))
	}
	frac += strings.Repeat("0", int(decimals)-len(frac))

	result, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		if strings.Trim(whole+frac, "0") == "" {
			return new(big.Int), nil
		}
		return nil, errors.Join(ErrInvalidAmount, fmt.Errorf("amount: %q", amount))
	}

	return result, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// FloorToGwei rounds a wei amount down to a whole number of gwei.
func FloorToGwei(wei *big.Int) *big.Int {
	if wei == nil {
		return new(big.Int)
	}

	rem := new(big.Int).Mod(wei, gwei)

	return new(big.Int).Sub(wei, rem)
}

// FormatEther renders a wei amount as a decimal ether string without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	s := new(big.Int).Abs(wei).String()
	if len(s) <= EtherDecimals {
		s = strings.Repeat("0", EtherDecimals-len(s)+1) + s
	}

	whole, frac := s[:len(s)-EtherDecimals], strings.TrimRight(s[len(s)-EtherDecimals:], "0")

	sign := ""
	if wei.Sign() < 0 {
		sign = "-"
	}

	if frac == "" {
		return sign + whole
	}

	return sign + whole + "." + frac
}

package chain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrEventNotFound      = errors.New("expected event not found in receipt")
	ErrFailedToDecodeLog  = errors.New("failed to decode event log")
	ErrEventNotInABI      = errors.New("event not defined in abi")
	ErrLogTopicMismatched = errors.New("log does not carry the event signature")
)

// TokenCreateEvent is the decoded TokenCreate event emitted by the launch contract.
type TokenCreateEvent struct {
	Creator     common.Address
	Token       common.Address
	RequestID   *big.Int
	Name        string
	Symbol      string
	TotalSupply *big.Int
	LaunchTime  *big.Int
	LaunchFee   *big.Int
}

// DecodeEventLog decodes both indexed and non-indexed fields of one log entry into a map
// keyed by argument name.
func DecodeEventLog(contract abi.ABI, eventName string, log *types.Log) (map[string]any, error) {
	event, found := contract.Events[eventName]
	if !found {
		return nil, errors.Join(ErrEventNotInABI, fmt.Errorf("event: %s", eventName))
	}

	if len(log.Topics) == 0 || log.Topics[0] != event.ID {
		return nil, ErrLogTopicMismatched
	}

	fields := make(map[string]any)
	err := contract.UnpackIntoMap(fields, eventName, log.Data)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecodeLog, err)
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	if len(indexed) > 0 {
		err = abi.ParseTopicsIntoMap(fields, indexed, log.Topics[1:])
		if err != nil {
			return nil, errors.Join(ErrFailedToDecodeLog, err)
		}
	}

	return fields, nil
}

// ExtractTokenCreate returns the first TokenCreate event found in the receipt logs.
// Logs with other signatures are skipped.
func ExtractTokenCreate(receipt *Receipt) (*TokenCreateEvent, error) {
	for _, log := range receipt.Logs {
		if log == nil {
			continue
		}

		fields, err := DecodeEventLog(TokenManagerABI, EventTokenCreate, log)
		if errors.Is(err, ErrLogTopicMismatched) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return tokenCreateFromFields(fields)
	}

	return nil, errors.Join(ErrEventNotFound, fmt.Errorf("event %s not found in %d logs of tx %s", EventTokenCreate, len(receipt.Logs), receipt.TxHash.Hex()))
}

func tokenCreateFromFields(fields map[string]any) (*TokenCreateEvent, error) {
	event := &TokenCreateEvent{}
	var ok [8]bool

	event.Creator, ok[0] = fields["creator"].(common.Address)
	event.Token, ok[1] = fields["token"].(common.Address)
	event.RequestID, ok[2] = fields["requestId"].(*big.Int)
	event.Name, ok[3] = fields["name"].(string)
	event.Symbol, ok[4] = fields["symbol"].(string)
	event.TotalSupply, ok[5] = fields["totalSupply"].(*big.Int)
	event.LaunchTime, ok[6] = fields["launchTime"].(*big.Int)
	event.LaunchFee, ok[7] = fields["launchFee"].(*big.Int)

	for _, present := range ok {
		if !present {
			return nil, errors.Join(ErrFailedToDecodeLog, fmt.Errorf("unexpected %s fields: %v", EventTokenCreate, fields))
		}
	}

	return event, nil
}

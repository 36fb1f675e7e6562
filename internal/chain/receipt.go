package chain

import (
	"errors"
	"fmt"

	"github.com/ccoveille/go-safecast"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrInvalidReceipt      = errors.New("invalid receipt")
	ErrTransactionReverted = errors.New("transaction reverted")
)

// Receipt is the confirmation record of a mined transaction. It is not modified after creation.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	Status      uint64
	Logs        []*types.Log
}

func (r *Receipt) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// newReceipt normalises a node receipt. Some nodes leave the transaction hash empty,
// in which case the hash the receipt was requested for is used.
func newReceipt(requested common.Hash, r *types.Receipt) (*Receipt, error) {
	txHash := r.TxHash
	if txHash == (common.Hash{}) {
		txHash = requested
	}

	var blockNumber uint64
	if r.BlockNumber != nil {
		if !r.BlockNumber.IsInt64() {
			return nil, errors.Join(ErrInvalidReceipt, fmt.Errorf("block number out of range: %s", r.BlockNumber))
		}

		bn, err := safecast.ToUint64(r.BlockNumber.Int64())
		if err != nil {
			return nil, errors.Join(ErrInvalidReceipt, err)
		}
		blockNumber = bn
	}

	logs := make([]*types.Log, len(r.Logs))
	copy(logs, r.Logs)

	return &Receipt{
		TxHash:      txHash,
		BlockNumber: blockNumber,
		Status:      r.Status,
		Logs:        logs,
	}, nil
}

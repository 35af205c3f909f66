package model

import (
	"math/big"
	"time"
)

// PrepareTxStatus is the outcome of one interval commitment transaction.
type PrepareTxStatus string

const (
	PrepareTxSuccess PrepareTxStatus = "success"
	PrepareTxFailed  PrepareTxStatus = "failed"
)

// PrepareTransaction records one scheduler commitment transaction for cost
// accounting. Rows are immutable once written.
type PrepareTransaction struct {
	TxHash         string
	BlockNumber    uint64
	SubscriptionID uint64
	Interval       uint32
	GasUsed        uint64
	GasPrice       *big.Int
	GasCost        *big.Int
	Status         PrepareTxStatus
	ErrorMessage   string
	CreatedAt      time.Time
}

// IntervalKey identifies one scheduled occurrence of a subscription.
type IntervalKey struct {
	SubscriptionID uint64
	Interval       uint32
}

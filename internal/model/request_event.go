package model

import (
	"math/big"
	"time"
)

// EventStatus is the lifecycle state of a compute request.
type EventStatus string

const (
	EventPending    EventStatus = "pending"
	EventProcessing EventStatus = "processing"
	EventCompleted  EventStatus = "completed"
	EventFailed     EventStatus = "failed"
	EventSkipped    EventStatus = "skipped"
	EventExpired    EventStatus = "expired"
)

// legalTransitions maps each status to the statuses it may move to.
// Terminal statuses have no entries; requests never move backward.
var legalTransitions = map[EventStatus][]EventStatus{
	EventPending:    {EventProcessing, EventSkipped, EventFailed, EventExpired},
	EventProcessing: {EventCompleted, EventFailed, EventExpired},
}

// Terminal reports whether no further transition is permitted.
func (s EventStatus) Terminal() bool {
	switch s {
	case EventCompleted, EventFailed, EventSkipped, EventExpired:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is legal.
func (s EventStatus) CanTransition(next EventStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventPending, EventProcessing, EventCompleted, EventFailed, EventSkipped, EventExpired:
		return true
	}
	return false
}

// RequestEvent is one on-chain compute request instance as recorded in the
// ledger. RequestID is chain-assigned and globally unique; re-observing the
// same on-chain event must never create a second row.
type RequestEvent struct {
	RequestID      string
	SubscriptionID uint64
	Interval       uint32
	BlockNumber    uint64
	BlockTime      time.Time
	ContainerID    string
	Redundancy     uint16
	FeeAmount      *big.Int
	FeeToken       string
	Verifier       string
	WalletAddress  string
	Status         EventStatus

	// Present iff Status == completed.
	TransactionHash string
	GasUsed         uint64
	GasCost         *big.Int
	Output          string

	Input string

	// Present iff Status is failed, skipped or expired.
	ErrorMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
}

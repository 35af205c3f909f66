package evm

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/noosphere-labs/compute-agent/internal/chain"
)

// coordinatorABI covers the coordinator surface the agent touches: the
// RequestStarted event, the two transaction entrypoints, and the
// subscription views.
const coordinatorABI = `[
  {
    "type": "event",
    "name": "RequestStarted",
    "inputs": [
      {"name": "requestId", "type": "bytes32", "indexed": true},
      {"name": "subscriptionId", "type": "uint64", "indexed": true},
      {"name": "interval", "type": "uint32", "indexed": false},
      {"name": "containerId", "type": "bytes32", "indexed": false},
      {"name": "redundancy", "type": "uint16", "indexed": false},
      {"name": "feeAmount", "type": "uint256", "indexed": false},
      {"name": "feeToken", "type": "address", "indexed": false},
      {"name": "verifier", "type": "address", "indexed": false},
      {"name": "wallet", "type": "address", "indexed": false}
    ],
    "anonymous": false
  },
  {
    "type": "function",
    "name": "fulfillRequest",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "requestId", "type": "bytes32"},
      {"name": "output", "type": "bytes"},
      {"name": "proof", "type": "bytes"}
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "prepareNextInterval",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "subscriptionId", "type": "uint64"},
      {"name": "interval", "type": "uint32"}
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "getSubscription",
    "stateMutability": "view",
    "inputs": [{"name": "subscriptionId", "type": "uint64"}],
    "outputs": [
      {"name": "owner", "type": "address"},
      {"name": "containerId", "type": "bytes32"},
      {"name": "frequency", "type": "uint32"},
      {"name": "period", "type": "uint32"},
      {"name": "activeAt", "type": "uint64"},
      {"name": "redundancy", "type": "uint16"}
    ]
  },
  {
    "type": "function",
    "name": "activeSubscriptions",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "ids", "type": "uint64[]"}]
  }
]`

var (
	parseABIOnce   sync.Once
	parsedABI      abi.ABI
	parseABIErr    error
	requestStarted abi.Event
)

func coordinator() (abi.ABI, abi.Event, error) {
	parseABIOnce.Do(func() {
		parsedABI, parseABIErr = abi.JSON(strings.NewReader(coordinatorABI))
		if parseABIErr == nil {
			requestStarted = parsedABI.Events["RequestStarted"]
		}
	})
	return parsedABI, requestStarted, parseABIErr
}

// parseRequestStarted decodes a raw log into a RequestStartedLog. BlockTime
// is left zero; the caller resolves it from the block header.
func parseRequestStarted(log types.Log) (chain.RequestStartedLog, error) {
	contractABI, event, err := coordinator()
	if err != nil {
		return chain.RequestStartedLog{}, fmt.Errorf("parse coordinator abi: %w", err)
	}

	if len(log.Topics) != 3 || log.Topics[0] != event.ID {
		return chain.RequestStartedLog{}, fmt.Errorf("log %s is not RequestStarted", log.TxHash)
	}

	values, err := contractABI.Unpack(event.Name, log.Data)
	if err != nil {
		return chain.RequestStartedLog{}, fmt.Errorf("unpack RequestStarted data: %w", err)
	}
	if len(values) != 7 {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: expected 7 data fields, got %d", len(values))
	}

	interval, ok := values[0].(uint32)
	if !ok {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: interval has type %T", values[0])
	}
	containerID, ok := values[1].([32]byte)
	if !ok {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: containerId has type %T", values[1])
	}
	redundancy, ok := values[2].(uint16)
	if !ok {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: redundancy has type %T", values[2])
	}
	feeAmount, ok := values[3].(*big.Int)
	if !ok {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: feeAmount has type %T", values[3])
	}
	feeToken, ok := values[4].(common.Address)
	if !ok {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: feeToken has type %T", values[4])
	}
	verifier, ok := values[5].(common.Address)
	if !ok {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: verifier has type %T", values[5])
	}
	wallet, ok := values[6].(common.Address)
	if !ok {
		return chain.RequestStartedLog{}, fmt.Errorf("RequestStarted: wallet has type %T", values[6])
	}

	return chain.RequestStartedLog{
		RequestID:      log.Topics[1],
		SubscriptionID: new(big.Int).SetBytes(log.Topics[2].Bytes()).Uint64(),
		Interval:       interval,
		ContainerID:    common.Hash(containerID),
		Redundancy:     redundancy,
		FeeAmount:      feeAmount,
		FeeToken:       feeToken,
		Verifier:       verifier,
		Wallet:         wallet,
		BlockNumber:    log.BlockNumber,
		TxHash:         log.TxHash,
	}, nil
}

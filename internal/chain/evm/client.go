// Package evm implements the chain capabilities against an EVM coordinator
// contract using go-ethereum.
package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/noosphere-labs/compute-agent/internal/chain"
	"github.com/noosphere-labs/compute-agent/internal/clock"
	"github.com/noosphere-labs/compute-agent/internal/model"
)

const (
	receiptPollInterval = time.Second
	fallbackGasLimit    = 1_000_000
)

// Backend is the subset of ethclient.Client the coordinator client needs.
type Backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client talks to the coordinator contract. It implements chain.LogSource,
// chain.HeadSource, chain.HeadSignaler, chain.Fulfiller, chain.Committer and
// chain.SubscriptionReader.
type Client struct {
	backend     Backend
	coordinator common.Address
	chainID     *big.Int
	key         *ecdsa.PrivateKey
	from        common.Address
	logger      *zap.Logger
	sleep       func(context.Context, time.Duration) error
}

// NewClient builds a coordinator client. privateKeyHex may be empty for a
// read-only client (log filtering and views); transaction methods then fail.
func NewClient(backend Backend, coordinatorAddr string, chainID uint64, privateKeyHex string, logger *zap.Logger) (*Client, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	if !common.IsHexAddress(coordinatorAddr) {
		return nil, fmt.Errorf("invalid coordinator address %q", coordinatorAddr)
	}
	if _, _, err := coordinator(); err != nil {
		return nil, err
	}

	c := &Client{
		backend:     backend,
		coordinator: common.HexToAddress(coordinatorAddr),
		chainID:     new(big.Int).SetUint64(chainID),
		logger:      logger,
		sleep:       clock.SleepWithContext,
	}

	if privateKeyHex != "" {
		key, err := crypto.HexToECDSA(privateKeyHex)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		c.key = key
		c.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	return c, nil
}

// From returns the agent's transaction sender address.
func (c *Client) From() common.Address {
	return c.from
}

// BlockNumber returns the current chain head.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.backend.BlockNumber(ctx)
}

// BlockInfo resolves a block's hash and timestamp.
func (c *Client) BlockInfo(ctx context.Context, number uint64) (chain.BlockInfo, error) {
	header, err := c.backend.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return chain.BlockInfo{}, fmt.Errorf("header %d: %w", number, err)
	}
	return chain.BlockInfo{
		Number: number,
		Hash:   header.Hash(),
		Time:   time.Unix(int64(header.Time), 0).UTC(),
	}, nil
}

// FilterRequestStarted returns the coordinator's RequestStarted logs in
// [fromBlock, toBlock], in ascending block order, with block timestamps
// resolved.
func (c *Client) FilterRequestStarted(ctx context.Context, fromBlock, toBlock uint64) ([]chain.RequestStartedLog, error) {
	_, event, err := coordinator()
	if err != nil {
		return nil, err
	}

	logs, err := c.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.coordinator},
		Topics:    [][]common.Hash{{event.ID}},
	})
	if err != nil {
		return nil, fmt.Errorf("filter logs %d-%d: %w", fromBlock, toBlock, err)
	}

	blockTimes := make(map[uint64]time.Time)
	out := make([]chain.RequestStartedLog, 0, len(logs))
	for _, raw := range logs {
		if raw.Removed {
			continue
		}
		parsed, err := parseRequestStarted(raw)
		if err != nil {
			return nil, err
		}

		ts, ok := blockTimes[raw.BlockNumber]
		if !ok {
			header, err := c.backend.HeaderByNumber(ctx, new(big.Int).SetUint64(raw.BlockNumber))
			if err != nil {
				return nil, fmt.Errorf("header %d: %w", raw.BlockNumber, err)
			}
			ts = time.Unix(int64(header.Time), 0).UTC()
			blockTimes[raw.BlockNumber] = ts
		}
		parsed.BlockTime = ts
		out = append(out, parsed)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].BlockNumber < out[j].BlockNumber })
	return out, nil
}

// NewHeadSignal subscribes to new heads and returns a coalescing signal
// channel. The subscription runs until the context is canceled; a dropped
// subscription closes the channel, and callers fall back to their poll cadence.
func (c *Client) NewHeadSignal(ctx context.Context) (<-chan struct{}, error) {
	heads := make(chan *types.Header, 16)
	sub, err := c.backend.SubscribeNewHead(ctx, heads)
	if err != nil {
		return nil, fmt.Errorf("subscribe new heads: %w", err)
	}

	signal := make(chan struct{}, 1)
	go func() {
		defer sub.Unsubscribe()
		defer close(signal)
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.Err():
				if err != nil {
					c.logger.Warn("new head subscription dropped", zap.Error(err))
				}
				return
			case <-heads:
				select {
				case signal <- struct{}{}:
				default:
				}
			}
		}
	}()

	return signal, nil
}

// FulfillRequest submits the request's output and proof on chain and waits
// for the transaction to mine.
func (c *Client) FulfillRequest(ctx context.Context, requestID common.Hash, output, proof []byte) (*chain.TxResult, error) {
	contractABI, _, err := coordinator()
	if err != nil {
		return nil, err
	}
	data, err := contractABI.Pack("fulfillRequest", [32]byte(requestID), output, proof)
	if err != nil {
		return nil, fmt.Errorf("pack fulfillRequest: %w", err)
	}
	return c.sendAndWait(ctx, data)
}

// PrepareNextInterval submits the commitment transaction advancing a
// subscription to the given interval and waits for it to mine.
func (c *Client) PrepareNextInterval(ctx context.Context, subscriptionID uint64, interval uint32) (*chain.TxResult, error) {
	contractABI, _, err := coordinator()
	if err != nil {
		return nil, err
	}
	data, err := contractABI.Pack("prepareNextInterval", subscriptionID, interval)
	if err != nil {
		return nil, fmt.Errorf("pack prepareNextInterval: %w", err)
	}
	return c.sendAndWait(ctx, data)
}

// Subscription reads one subscription record from the coordinator.
func (c *Client) Subscription(ctx context.Context, id uint64) (model.Subscription, error) {
	contractABI, _, err := coordinator()
	if err != nil {
		return model.Subscription{}, err
	}
	data, err := contractABI.Pack("getSubscription", id)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("pack getSubscription: %w", err)
	}

	raw, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &c.coordinator, Data: data}, nil)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("call getSubscription(%d): %w", id, err)
	}

	values, err := contractABI.Unpack("getSubscription", raw)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("unpack getSubscription: %w", err)
	}
	if len(values) != 6 {
		return model.Subscription{}, fmt.Errorf("getSubscription: expected 6 outputs, got %d", len(values))
	}

	owner, ok := values[0].(common.Address)
	if !ok {
		return model.Subscription{}, fmt.Errorf("getSubscription: owner has type %T", values[0])
	}
	containerID, ok := values[1].([32]byte)
	if !ok {
		return model.Subscription{}, fmt.Errorf("getSubscription: containerId has type %T", values[1])
	}
	frequency, ok := values[2].(uint32)
	if !ok {
		return model.Subscription{}, fmt.Errorf("getSubscription: frequency has type %T", values[2])
	}
	period, ok := values[3].(uint32)
	if !ok {
		return model.Subscription{}, fmt.Errorf("getSubscription: period has type %T", values[3])
	}
	activeAt, ok := values[4].(uint64)
	if !ok {
		return model.Subscription{}, fmt.Errorf("getSubscription: activeAt has type %T", values[4])
	}
	redundancy, ok := values[5].(uint16)
	if !ok {
		return model.Subscription{}, fmt.Errorf("getSubscription: redundancy has type %T", values[5])
	}

	return model.Subscription{
		ID:          id,
		Owner:       owner.Hex(),
		ContainerID: common.Hash(containerID).Hex(),
		Frequency:   frequency,
		Period:      period,
		ActiveAt:    activeAt,
		Redundancy:  redundancy,
	}, nil
}

// ActiveSubscriptionIDs lists the coordinator's currently active subscriptions.
func (c *Client) ActiveSubscriptionIDs(ctx context.Context) ([]uint64, error) {
	contractABI, _, err := coordinator()
	if err != nil {
		return nil, err
	}
	data, err := contractABI.Pack("activeSubscriptions")
	if err != nil {
		return nil, fmt.Errorf("pack activeSubscriptions: %w", err)
	}

	raw, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &c.coordinator, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call activeSubscriptions: %w", err)
	}

	values, err := contractABI.Unpack("activeSubscriptions", raw)
	if err != nil {
		return nil, fmt.Errorf("unpack activeSubscriptions: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("activeSubscriptions: expected 1 output, got %d", len(values))
	}
	ids, ok := values[0].([]uint64)
	if !ok {
		return nil, fmt.Errorf("activeSubscriptions: ids have type %T", values[0])
	}
	return ids, nil
}

func (c *Client) sendAndWait(ctx context.Context, calldata []byte) (*chain.TxResult, error) {
	if c.key == nil {
		return nil, errors.New("client has no signing key")
	}

	nonce, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	gasLimit, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: c.from,
		To:   &c.coordinator,
		Data: calldata,
	})
	if err != nil {
		c.logger.Warn("gas estimation failed, using fallback limit", zap.Error(err))
		gasLimit = fallbackGasLimit
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.coordinator,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     calldata,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send tx: %w", err)
	}

	receipt, err := c.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}

	effective := receipt.EffectiveGasPrice
	if effective == nil {
		effective = gasPrice
	}
	gasCost := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), effective)

	return &chain.TxResult{
		TxHash:      signed.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		GasPrice:    effective,
		GasCost:     gasCost,
		Success:     receipt.Status == types.ReceiptStatusSuccessful,
	}, nil
}

func (c *Client) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := c.backend.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			c.logger.Debug("receipt not yet available", zap.String("tx", txHash.Hex()), zap.Error(err))
		}
		if err := c.sleep(ctx, receiptPollInterval); err != nil {
			return nil, fmt.Errorf("wait mined %s: %w", txHash.Hex(), err)
		}
	}
}

package etherman

import (
	"context"
	"encoding/hex"
	"math/big"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/gerror"
	"github.com/relaylab/convdiag/log"
	"github.com/relaylab/convdiag/metrics"
)

const (
	opTransactionByHash  = "eth_getTransactionByHash"
	opTransactionReceipt = "eth_getTransactionReceipt"
	opTransactionSender  = "eth_getTransactionByBlockHashAndIndex"
	opCall               = "eth_call"
)

type ethClienter interface {
	ethereum.TransactionReader
	ethereum.ContractCaller
	TransactionSender(ctx context.Context, tx *types.Transaction, block common.Hash, index uint) (common.Address, error)
}

// Client is the read-only access to the chain: transactions and historical contract calls
type Client struct {
	EtherClient ethClienter
	cfg         Config
	callCache   *lru.Cache[string, []byte]
	logger      *log.Logger
}

// NewClient connects to the node
func NewClient(cfg Config) (*Client, error) {
	ethClient, err := ethclient.Dial(cfg.URL)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", cfg.URL, err)
		return nil, err
	}
	return newClient(cfg, ethClient)
}

func newClient(cfg Config, ethClient ethClienter) (*Client, error) {
	var (
		cache *lru.Cache[string, []byte]
		err   error
	)
	if cfg.CallCacheSize > 0 {
		cache, err = lru.New[string, []byte](cfg.CallCacheSize)
		if err != nil {
			return nil, err
		}
	}
	if cfg.RetryAttempts == 0 {
		// retry-go treats 0 as "retry forever"
		cfg.RetryAttempts = 1
	}
	return &Client{
		EtherClient: ethClient,
		cfg:         cfg,
		callCache:   cache,
		logger:      log.WithFields("url", cfg.URL),
	}, nil
}

// GetTransaction returns the mined transaction with its block number, sender and call data
func (etherMan *Client) GetTransaction(ctx context.Context, hash common.Hash) (*Transaction, error) {
	var (
		tx        *types.Transaction
		isPending bool
	)
	err := etherMan.do(ctx, opTransactionByHash, func() error {
		var err error
		tx, isPending, err = etherMan.EtherClient.TransactionByHash(ctx, hash)
		return err
	})
	if err != nil {
		return nil, &gerror.LookupError{Op: opTransactionByHash, Err: err}
	}
	if isPending {
		return nil, &gerror.LookupError{Op: opTransactionByHash, Err: errors.Wrap(gerror.ErrTransactionPending, hash.String())}
	}

	var receipt *types.Receipt
	err = etherMan.do(ctx, opTransactionReceipt, func() error {
		var err error
		receipt, err = etherMan.EtherClient.TransactionReceipt(ctx, hash)
		return err
	})
	if err != nil {
		return nil, &gerror.LookupError{Op: opTransactionReceipt, Err: err}
	}

	var from common.Address
	err = etherMan.do(ctx, opTransactionSender, func() error {
		var err error
		from, err = etherMan.EtherClient.TransactionSender(ctx, tx, receipt.BlockHash, receipt.TransactionIndex)
		return err
	})
	if err != nil {
		return nil, &gerror.LookupError{Op: opTransactionSender, Err: err}
	}

	return &Transaction{
		Hash:        hash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		BlockHash:   receipt.BlockHash,
		From:        from,
		To:          tx.To(),
		Input:       tx.Data(),
		Status:      receipt.Status,
	}, nil
}

// CallContract invokes a read-only method of contract as of blockNumber and returns the unpacked outputs
func (etherMan *Client) CallContract(ctx context.Context, contract common.Address, descriptor *abi.ABI, method string, args []interface{}, blockNumber uint64) ([]interface{}, error) {
	data, err := descriptor.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "packing %s", method)
	}

	key := callKey(contract, data, blockNumber)
	output, found := etherMan.cachedCall(key)
	if found {
		metrics.RecordChainCallCacheHit(opCall)
	} else {
		msg := ethereum.CallMsg{To: &contract, Data: data}
		err = etherMan.do(ctx, opCall, func() error {
			var err error
			output, err = etherMan.EtherClient.CallContract(ctx, msg, new(big.Int).SetUint64(blockNumber))
			return err
		})
		if err != nil {
			return nil, &gerror.LookupError{Op: method + "@" + contract.Hex(), Err: err}
		}
		if etherMan.callCache != nil {
			etherMan.callCache.Add(key, output)
		}
	}

	values, err := descriptor.Unpack(method, output)
	if err != nil {
		return nil, &gerror.LookupError{Op: method + "@" + contract.Hex(), Err: errors.Wrap(gerror.ErrUnpackOutput, err.Error())}
	}
	return values, nil
}

func (etherMan *Client) cachedCall(key string) ([]byte, bool) {
	if etherMan.callCache == nil {
		return nil, false
	}
	return etherMan.callCache.Get(key)
}

// do runs one RPC through the retry policy and records its latency
func (etherMan *Client) do(ctx context.Context, op string, fn func() error) error {
	start := time.Now()
	err := retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(etherMan.cfg.RetryAttempts),
		retry.Delay(etherMan.cfg.RetryDelay.Duration),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ethereum.NotFound)
		}),
		retry.OnRetry(func(n uint, err error) {
			etherMan.logger.Warnf("%s attempt %d failed: %v", op, n+1, err)
		}),
	)
	metrics.RecordChainCall(op, time.Since(start), err == nil)
	return err
}

// callKey identifies a historical call. State at a mined block never changes, so the result can be reused.
func callKey(contract common.Address, data []byte, blockNumber uint64) string {
	return contract.Hex() + ":" + hex.EncodeToString(data) + "@" + strconv.FormatUint(blockNumber, 10)
}

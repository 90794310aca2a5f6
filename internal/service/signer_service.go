package service

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"habit-agent/internal/core/ports"
	"habit-agent/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

const recordDayCompleteABI = `[{
	"name": "recordDayComplete",
	"type": "function",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "_user", "type": "address"},
		{"name": "_challengeId", "type": "uint256"}
	],
	"outputs": []
}]`

// SignerConfig carries the agent key and transaction parameters.
type SignerConfig struct {
	PrivateKeyHex   string
	ContractAddress string
	GasLimit        uint64
	LockTTL         time.Duration
	LockWait        time.Duration
}

// TransactionSignerImpl implements ports.TransactionSigner.
//
// One agent key signs every call, so submissions are serialized: the in-process
// mutex covers goroutines, the optional distributed lock covers other instances.
// The next nonce never goes below lastNonce+1, so a pending transaction that the
// node still reports as unconfirmed is not replaced.
type TransactionSignerImpl struct {
	chain    ports.ChainClient
	lock     ports.DistributedLock
	key      *ecdsa.PrivateKey
	from     common.Address
	contract common.Address
	gasLimit uint64
	lockTTL  time.Duration
	lockWait time.Duration
	abi      abi.ABI
	log      zerolog.Logger

	mu        sync.Mutex
	sent      bool
	lastNonce uint64
}

// NewTransactionSigner parses the agent key. lock may be nil for a single instance.
func NewTransactionSigner(chain ports.ChainClient, lock ports.DistributedLock, cfg SignerConfig, log zerolog.Logger) (*TransactionSignerImpl, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKeyHex, "0x"))
	if err != nil {
		return nil, apperror.ErrSigning(fmt.Errorf("parsing agent private key: %w", err))
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, apperror.ErrSigning(fmt.Errorf("invalid contract address %q", cfg.ContractAddress))
	}
	parsed, err := abi.JSON(strings.NewReader(recordDayCompleteABI))
	if err != nil {
		return nil, fmt.Errorf("parsing contract abi: %w", err)
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = 300000
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	log.Info().Str("agent", from.Hex()).Str("contract", cfg.ContractAddress).Msg("transaction signer ready")

	return &TransactionSignerImpl{
		chain:    chain,
		lock:     lock,
		key:      key,
		from:     from,
		contract: common.HexToAddress(cfg.ContractAddress),
		gasLimit: cfg.GasLimit,
		lockTTL:  cfg.LockTTL,
		lockWait: cfg.LockWait,
		abi:      parsed,
		log:      log,
	}, nil
}

// AgentAddress returns the checksummed address derived from the agent key.
func (s *TransactionSignerImpl) AgentAddress() string {
	return s.from.Hex()
}

// SubmitCompletion signs and broadcasts recordDayComplete(userAddress, challengeID).
// The submission is detached from ctx cancellation once it starts.
func (s *TransactionSignerImpl) SubmitCompletion(ctx context.Context, userAddress string, challengeID int64) (string, error) {
	if !common.IsHexAddress(userAddress) {
		return "", apperror.ErrSigning(fmt.Errorf("invalid user address %q", userAddress))
	}
	if challengeID < 0 {
		return "", apperror.ErrSigning(fmt.Errorf("negative challenge id %d", challengeID))
	}
	data, err := s.abi.Pack("recordDayComplete", common.HexToAddress(userAddress), big.NewInt(challengeID))
	if err != nil {
		return "", apperror.ErrSigning(fmt.Errorf("encoding call: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	release, err := s.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)

	nonce, err := s.chain.NonceFor(ctx, s.from.Hex())
	if err != nil {
		return "", err
	}
	if s.sent && nonce <= s.lastNonce {
		nonce = s.lastNonce + 1
	}

	gasPrice, err := s.chain.CurrentGasPrice(ctx)
	if err != nil {
		return "", err
	}
	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		return "", err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      s.gasLimit,
		To:       &s.contract,
		Value:    big.NewInt(0),
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.NewEIP155Signer(chainID), s.key)
	if err != nil {
		return "", apperror.ErrSigning(fmt.Errorf("signing transaction: %w", err))
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return "", apperror.ErrSigning(fmt.Errorf("encoding transaction: %w", err))
	}

	hash, err := s.chain.Broadcast(ctx, hexutil.Encode(raw))
	if err != nil {
		s.log.Warn().Err(err).
			Uint64("nonce", nonce).
			Str("user", userAddress).
			Int64("challenge_id", challengeID).
			Msg("broadcast failed")
		return "", err
	}

	s.sent = true
	s.lastNonce = nonce

	s.log.Info().
		Str("tx_hash", hash).
		Uint64("nonce", nonce).
		Str("chain_id", chainID.String()).
		Str("user", userAddress).
		Int64("challenge_id", challengeID).
		Msg("recordDayComplete submitted")

	return hash, nil
}

// acquire takes the cross-instance signer lock. A lock backend outage is tolerated
// since the in-process mutex is already held.
func (s *TransactionSignerImpl) acquire(ctx context.Context) (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	key := "signer:" + strings.ToLower(s.from.Hex())
	token, err := s.lock.Acquire(ctx, key, s.lockTTL, s.lockWait)
	if err != nil {
		if apperror.CodeOf(err) == "SYS_002" {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("signer lock unavailable, continuing with local lock only")
		return func() {}, nil
	}
	return func() {
		if err := s.lock.Release(context.Background(), key, token); err != nil {
			s.log.Warn().Err(err).Msg("failed to release signer lock")
		}
	}, nil
}

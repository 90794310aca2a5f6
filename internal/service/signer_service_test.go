package service

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"habit-agent/internal/core/ports/mocks"
	"habit-agent/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testContract = "0x1d4fEaebea612A888cD5230fcbF4A137E5FBeD4B"
	testUser     = "0x8ba1f109551bd432803012645ac136ddd64dba72"
)

type signerTestDeps struct {
	signer *TransactionSignerImpl
	chain  *mocks.MockChainClient
	lock   *mocks.MockDistributedLock
	ctrl   *gomock.Controller
}

func setupSigner(t *testing.T, withLock bool) *signerTestDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	d := &signerTestDeps{chain: mocks.NewMockChainClient(ctrl), ctrl: ctrl}
	var lock *mocks.MockDistributedLock
	if withLock {
		lock = mocks.NewMockDistributedLock(ctrl)
		d.lock = lock
	}

	cfg := SignerConfig{
		PrivateKeyHex:   hexutil.Encode(crypto.FromECDSA(key)),
		ContractAddress: testContract,
		GasLimit:        300000,
		LockTTL:         time.Minute,
		LockWait:        time.Second,
	}
	if withLock {
		d.signer, err = NewTransactionSigner(d.chain, lock, cfg, zerolog.Nop())
	} else {
		d.signer, err = NewTransactionSigner(d.chain, nil, cfg, zerolog.Nop())
	}
	require.NoError(t, err)
	return d
}

func decodeTx(t *testing.T, raw string) *types.Transaction {
	t.Helper()
	tx := new(types.Transaction)
	require.NoError(t, tx.UnmarshalBinary(hexutil.MustDecode(raw)))
	return tx
}

func expectQueries(d *signerTestDeps, nonce uint64, chainID int64) {
	d.chain.EXPECT().NonceFor(gomock.Any(), d.signer.AgentAddress()).Return(nonce, nil)
	d.chain.EXPECT().CurrentGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	d.chain.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(chainID), nil)
}

func TestSigner_SubmitCompletion_BuildsSignedCall(t *testing.T) {
	d := setupSigner(t, false)
	defer d.ctrl.Finish()

	expectQueries(d, 5, 2368)
	var sent string
	d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, raw string) (string, error) {
			sent = raw
			return "0xabc", nil
		},
	)

	hash, err := d.signer.SubmitCompletion(context.Background(), testUser, 42)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", hash)

	tx := decodeTx(t, sent)
	assert.Equal(t, uint64(5), tx.Nonce())
	assert.Equal(t, uint64(300000), tx.Gas())
	assert.Equal(t, int64(1_000_000_000), tx.GasPrice().Int64())
	assert.Equal(t, int64(2368), tx.ChainId().Int64())
	assert.Equal(t, common.HexToAddress(testContract), *tx.To())
	assert.Zero(t, tx.Value().Sign())

	selector := crypto.Keccak256([]byte("recordDayComplete(address,uint256)"))[:4]
	require.Len(t, tx.Data(), 4+32+32)
	assert.Equal(t, selector, tx.Data()[:4])
	assert.Equal(t, common.HexToAddress(testUser), common.BytesToAddress(tx.Data()[4:36]))
	assert.Equal(t, int64(42), new(big.Int).SetBytes(tx.Data()[36:68]).Int64())

	from, err := types.Sender(types.NewEIP155Signer(big.NewInt(2368)), tx)
	require.NoError(t, err)
	assert.Equal(t, d.signer.AgentAddress(), from.Hex())
}

func TestSigner_ChainIDQueriedPerSubmission(t *testing.T) {
	d := setupSigner(t, false)
	defer d.ctrl.Finish()

	var sent []string
	d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, raw string) (string, error) {
			sent = append(sent, raw)
			return "0xabc", nil
		},
	).Times(2)

	// The node is swapped for another network between the two calls.
	gomock.InOrder(
		d.chain.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(2368), nil),
		d.chain.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(31337), nil),
	)
	d.chain.EXPECT().NonceFor(gomock.Any(), d.signer.AgentAddress()).Return(uint64(0), nil).Times(2)
	d.chain.EXPECT().CurrentGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := d.signer.SubmitCompletion(context.Background(), testUser, 3)
		require.NoError(t, err)
	}
	require.Len(t, sent, 2)

	for i, want := range []int64{2368, 31337} {
		tx := decodeTx(t, sent[i])
		assert.Equal(t, want, tx.ChainId().Int64())
		from, err := types.Sender(types.NewEIP155Signer(big.NewInt(want)), tx)
		require.NoError(t, err)
		assert.Equal(t, d.signer.AgentAddress(), from.Hex())
	}
}

func TestSigner_NonceNeverReusedBeforeConfirmation(t *testing.T) {
	d := setupSigner(t, false)
	defer d.ctrl.Finish()

	var nonces []uint64
	d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, raw string) (string, error) {
			nonces = append(nonces, decodeTx(t, raw).Nonce())
			return "0xabc", nil
		},
	).Times(3)

	// The node keeps reporting 5 while the first two are pending, then catches up past them.
	expectQueries(d, 5, 1)
	expectQueries(d, 5, 1)
	expectQueries(d, 10, 1)

	for i := 0; i < 3; i++ {
		_, err := d.signer.SubmitCompletion(context.Background(), testUser, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, []uint64{5, 6, 10}, nonces)
}

func TestSigner_FailedBroadcastDoesNotAdvanceNonce(t *testing.T) {
	d := setupSigner(t, false)
	defer d.ctrl.Finish()

	var nonces []uint64
	gomock.InOrder(
		d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raw string) (string, error) {
				nonces = append(nonces, decodeTx(t, raw).Nonce())
				return "", apperror.ErrTransactionRejected(errors.New("underpriced"))
			},
		),
		d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raw string) (string, error) {
				nonces = append(nonces, decodeTx(t, raw).Nonce())
				return "0xdef", nil
			},
		),
	)
	expectQueries(d, 3, 1)
	expectQueries(d, 3, 1)

	_, err := d.signer.SubmitCompletion(context.Background(), testUser, 1)
	assert.Equal(t, "CHAIN_003", apperror.CodeOf(err))

	hash, err := d.signer.SubmitCompletion(context.Background(), testUser, 1)
	require.NoError(t, err)
	assert.Equal(t, "0xdef", hash)
	assert.Equal(t, []uint64{3, 3}, nonces)
}

func TestSigner_ConcurrentSubmissionsGetDistinctNonces(t *testing.T) {
	d := setupSigner(t, false)
	defer d.ctrl.Finish()

	const n = 8
	d.chain.EXPECT().NonceFor(gomock.Any(), gomock.Any()).Return(uint64(0), nil).Times(n)
	d.chain.EXPECT().CurrentGasPrice(gomock.Any()).Return(big.NewInt(1), nil).Times(n)
	d.chain.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil).Times(n)

	var mu sync.Mutex
	seen := map[uint64]bool{}
	d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, raw string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			seen[decodeTx(t, raw).Nonce()] = true
			return "0xabc", nil
		},
	).Times(n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := d.signer.SubmitCompletion(context.Background(), testUser, id)
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	assert.Len(t, seen, n)
	for i := uint64(0); i < n; i++ {
		assert.True(t, seen[i], "nonce %d missing", i)
	}
}

func TestSigner_QueryFailureStopsBeforeBroadcast(t *testing.T) {
	d := setupSigner(t, false)
	defer d.ctrl.Finish()

	d.chain.EXPECT().NonceFor(gomock.Any(), gomock.Any()).
		Return(uint64(0), apperror.ErrNodeUnreachable(errors.New("dial tcp: refused")))

	_, err := d.signer.SubmitCompletion(context.Background(), testUser, 1)
	assert.Equal(t, "CHAIN_001", apperror.CodeOf(err))
}

func TestSigner_InvalidUserAddress(t *testing.T) {
	d := setupSigner(t, false)
	defer d.ctrl.Finish()

	_, err := d.signer.SubmitCompletion(context.Background(), "not-an-address", 1)
	assert.Equal(t, "CHAIN_004", apperror.CodeOf(err))
}

func TestSigner_UsesDistributedLock(t *testing.T) {
	d := setupSigner(t, true)
	defer d.ctrl.Finish()

	lockKey := "signer:" + strings.ToLower(d.signer.AgentAddress())
	d.lock.EXPECT().Acquire(gomock.Any(), lockKey, time.Minute, time.Second).Return("tok-1", nil)
	expectQueries(d, 0, 1)
	d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return("0xabc", nil)
	d.lock.EXPECT().Release(gomock.Any(), lockKey, "tok-1").Return(nil)

	_, err := d.signer.SubmitCompletion(context.Background(), testUser, 1)
	require.NoError(t, err)
}

func TestSigner_LockTimeout(t *testing.T) {
	d := setupSigner(t, true)
	defer d.ctrl.Finish()

	d.lock.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", apperror.ErrLockTimeout(errors.New("waited 1s")))

	_, err := d.signer.SubmitCompletion(context.Background(), testUser, 1)
	assert.Equal(t, "SYS_002", apperror.CodeOf(err))
}

func TestSigner_LockBackendDownDegrades(t *testing.T) {
	d := setupSigner(t, true)
	defer d.ctrl.Finish()

	d.lock.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("redis: connection refused"))
	expectQueries(d, 0, 1)
	d.chain.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return("0xabc", nil)

	hash, err := d.signer.SubmitCompletion(context.Background(), testUser, 1)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", hash)
}

func TestNewTransactionSigner_InvalidKey(t *testing.T) {
	_, err := NewTransactionSigner(nil, nil, SignerConfig{PrivateKeyHex: "zz", ContractAddress: testContract}, zerolog.Nop())
	assert.Equal(t, "CHAIN_004", apperror.CodeOf(err))

	key, _ := crypto.GenerateKey()
	_, err = NewTransactionSigner(nil, nil, SignerConfig{PrivateKeyHex: hexutil.Encode(crypto.FromECDSA(key)), ContractAddress: "nope"}, zerolog.Nop())
	assert.Equal(t, "CHAIN_004", apperror.CodeOf(err))
}

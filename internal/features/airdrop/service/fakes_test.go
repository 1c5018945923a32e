package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"airdrop-tool-backend/internal/common/config"
	"airdrop-tool-backend/internal/features/airdrop/models"
	"airdrop-tool-backend/internal/platform/solana"
)

type fakeRepo struct {
	mu     sync.Mutex
	events map[string]*models.Event
	txs    []*models.Transaction

	failCreateEvent bool
	failCreateTxFor string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: make(map[string]*models.Event)}
}

func (r *fakeRepo) CreateEvent(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreateEvent {
		return errors.New("insert failed")
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeRepo) GetEventByID(_ context.Context, id string) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

func (r *fakeRepo) ListEvents(_ context.Context) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]*models.Event, 0, len(r.events))
	for _, event := range r.events {
		copied := *event
		events = append(events, &copied)
	}
	return events, nil
}

func (r *fakeRepo) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreateTxFor != "" && tx.WalletAddress == r.failCreateTxFor {
		return errors.New("insert failed")
	}
	copied := *tx
	r.txs = append(r.txs, &copied)
	return nil
}

func (r *fakeRepo) FinalizeTransaction(_ context.Context, id string, status models.TransactionStatus, signature, errorMessage string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range r.txs {
		if tx.ID != id || tx.Status != models.TransactionStatusPending {
			continue
		}
		tx.Status = status
		tx.Signature = signature
		tx.ErrorMessage = errorMessage
		t := completedAt
		tx.CompletedAt = &t
	}
	return nil
}

func (r *fakeRepo) GetTransactionsByEvent(_ context.Context, eventID string) ([]*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var txs []*models.Transaction
	for _, tx := range r.txs {
		if tx.EventID == eventID {
			copied := *tx
			txs = append(txs, &copied)
		}
	}
	return txs, nil
}

func (r *fakeRepo) CountByStatus(_ context.Context, eventID string) (*models.StatusCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := &models.StatusCounts{}
	for _, tx := range r.txs {
		if tx.EventID != eventID {
			continue
		}
		counts.Total++
		switch tx.Status {
		case models.TransactionStatusSuccess:
			counts.Success++
		case models.TransactionStatusFailed:
			counts.Failed++
		case models.TransactionStatusPending:
			counts.Pending++
		}
	}
	return counts, nil
}

type fakeExecutor struct {
	mu       sync.Mutex
	calls    []solana.TransferRequest
	transfer func(req solana.TransferRequest) solana.TransferResult
}

func (e *fakeExecutor) Transfer(_ context.Context, req solana.TransferRequest) solana.TransferResult {
	e.mu.Lock()
	e.calls = append(e.calls, req)
	e.mu.Unlock()
	if e.transfer != nil {
		return e.transfer(req)
	}
	return solana.TransferResult{Success: true, Signature: "sig-" + req.Recipient, Timestamp: time.Now().UTC()}
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []*models.BatchJob
	err  error
}

func (q *fakeQueue) Enqueue(_ context.Context, job *models.BatchJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

type fakeRecipients struct {
	addresses []string
	err       error
}

func (r *fakeRecipients) GetAllAddresses(_ context.Context) ([]string, error) {
	return r.addresses, r.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Solana.TokenMint = "AiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4"
	cfg.Solana.TokenAmount = 1200
	cfg.Solana.TokenDecimals = 6
	cfg.Solana.SenderSecretKey = "test-sender-key"
	cfg.Airdrop.ThrottleDelay = 0
	cfg.Airdrop.TransferTimeout = 5 * time.Second
	cfg.Cache.StatusTTL = 2 * time.Second
	return cfg
}

package paygate

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/shopspring/decimal"
)

const sandboxName = "paygate-sandbox"

// Methods the sandbox always declines.
const (
	MethodDeclined     = "card_declined"
	MethodInsufficient = "card_insufficient_funds"
)

type txnState int

const (
	txnAuthorized txnState = iota
	txnCaptured
	txnRefunded
	txnVoided
)

type txn struct {
	amount decimal.Decimal
	state  txnState
}

// Sandbox approves every authorization except declined test methods and
// amounts above the configured limit.
type Sandbox struct {
	limit decimal.Decimal

	mu   sync.Mutex
	txns map[string]*txn
}

// NewSandbox returns a processor declining amounts above limit. A zero limit disables the check.
func NewSandbox(limit decimal.Decimal) *Sandbox {
	return &Sandbox{limit: limit, txns: make(map[string]*txn)}
}

func (s *Sandbox) Authorize(ctx context.Context, req AuthorizeRequest) (Authorization, error) {
	if err := ctx.Err(); err != nil {
		return Authorization{}, err
	}

	switch {
	case req.Method == MethodDeclined:
		return Authorization{DeclineCode: "do_not_honor", DeclineReason: "card declined by issuer"}, nil
	case req.Method == MethodInsufficient:
		return Authorization{DeclineCode: "insufficient_funds", DeclineReason: "insufficient funds"}, nil
	case s.limit.IsPositive() && req.Amount.GreaterThan(s.limit):
		return Authorization{DeclineCode: "limit_exceeded", DeclineReason: "amount above " + s.limit.StringFixed(2)}, nil
	}

	id := "TXN-" + uuid.NewString()
	s.mu.Lock()
	s.txns[id] = &txn{amount: req.Amount, state: txnAuthorized}
	s.mu.Unlock()

	return Authorization{Approved: true, TransactionID: id}, nil
}

func (s *Sandbox) Capture(ctx context.Context, transactionID string, amount decimal.Decimal) error {
	return s.move(ctx, transactionID, amount, txnAuthorized, txnCaptured)
}

func (s *Sandbox) Refund(ctx context.Context, transactionID string, amount decimal.Decimal) error {
	return s.move(ctx, transactionID, amount, txnCaptured, txnRefunded)
}

func (s *Sandbox) Void(ctx context.Context, transactionID string) error {
	return s.move(ctx, transactionID, decimal.Zero, txnAuthorized, txnVoided)
}

func (s *Sandbox) move(ctx context.Context, transactionID string, amount decimal.Decimal, from, to txnState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.txns[transactionID]
	if !ok {
		return &domain.RemoteFaultError{Provider: sandboxName, Code: "unknown_transaction", Message: transactionID}
	}
	if t.state != from {
		return &domain.RemoteFaultError{Provider: sandboxName, Code: "bad_transaction_state", Message: transactionID}
	}
	if amount.GreaterThan(t.amount) {
		return &domain.RemoteFaultError{Provider: sandboxName, Code: "amount_exceeds_authorization", Message: transactionID}
	}
	t.state = to
	return nil
}

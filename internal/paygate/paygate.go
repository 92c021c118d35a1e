// Package paygate authorizes and settles reservation payments.
package paygate

import (
	"context"

	"github.com/shopspring/decimal"
)

// AuthorizeRequest asks the processor to reserve funds for one payment.
type AuthorizeRequest struct {
	Reference string
	Amount    decimal.Decimal
	Currency  string
	Method    string
}

// Authorization is the processor's verdict. A decline is not an error.
type Authorization struct {
	Approved      bool
	TransactionID string
	DeclineCode   string
	DeclineReason string
}

// Processor is the payment backend. Transport failures wrap domain.ErrRemoteUnavailable
// and explicit rejections of capture/refund/void are *domain.RemoteFaultError.
type Processor interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (Authorization, error)
	Capture(ctx context.Context, transactionID string, amount decimal.Decimal) error
	Refund(ctx context.Context, transactionID string, amount decimal.Decimal) error
	Void(ctx context.Context, transactionID string) error
}

package entity

import (
	"time"

	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
)

// TransactionType represents the kind of balance-affecting event
type TransactionType string

// Transaction types
const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypePurchase TransactionType = "purchase"
	TypeRefund   TransactionType = "refund"
)

// Transaction is one row of the append-only balance ledger. Rows are never
// mutated or deleted by application logic.
type Transaction struct {
	ID          uint64
	UserID      string
	Type        TransactionType
	Amount      int64   // Signed: positive credits, negative debits
	Description string
	ReferenceID *uint64 // Optional link to a UserServer id
	CreatedAt   time.Time
}

// NewTransaction creates a ledger entry with basic validation. The sign of
// the amount must match the type: credits for deposit/refund, debits for
// withdraw/purchase.
func NewTransaction(userID string, txType TransactionType, amount int64, description string,
	referenceID *uint64, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == "" {
		return nil, errs.NewValidationError(map[string]string{"user_id": "user_id is required"})
	}
	if !isValidType(txType) {
		return nil, errs.NewValidationError(map[string]string{"type": "invalid transaction type"})
	}
	if amount == 0 {
		return nil, errs.NewValidationError(map[string]string{"amount": "amount cannot be zero"})
	}
	if isCreditType(txType) != (amount > 0) {
		return nil, errs.NewValidationError(map[string]string{"amount": "amount sign does not match transaction type"})
	}

	return &Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this transaction increased the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

func isValidType(txType TransactionType) bool {
	switch txType {
	case TypeDeposit, TypeWithdraw, TypePurchase, TypeRefund:
		return true
	}
	return false
}

func isCreditType(txType TransactionType) bool {
	return txType == TypeDeposit || txType == TypeRefund
}

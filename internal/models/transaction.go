package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is an immutable income or expense entry in a wallet.
// Date is a calendar day stored at UTC midnight.
type Transaction struct {
	Base
	WalletID    string          `gorm:"type:uuid;not null;index:idx_transactions_wallet_order,priority:1" json:"wallet_id"`
	Type        TransactionType `gorm:"size:16;not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description *string         `gorm:"type:text" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_transactions_wallet_order,priority:2" json:"date"`
}

package services

import (
	"github.com/shopspring/decimal"

	"finwallet/internal/models"
)

// CreateUserInput carries the fields of a new user.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`

	// Mistyped names the fields whose JSON value was not a string.
	Mistyped []string `json:"-" validate:"-"`
}

// CreateWalletInput carries the fields of a new wallet.
type CreateWalletInput struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required,max=255"`

	Mistyped []string `json:"-" validate:"-"`
}

// UpdateWalletInput carries the mutable fields of a wallet.
type UpdateWalletInput struct {
	Name string `json:"name" validate:"required,max=255"`

	Mistyped []string `json:"-" validate:"-"`
}

// CreateTransactionInput carries the raw fields of a new transaction.
// Amount and Date stay textual until validated so that every field can be
// reported at once.
type CreateTransactionInput struct {
	Type        string  `json:"type" validate:"required,transaction_type"`
	Amount      string  `json:"amount" validate:"required,amount"`
	Description *string `json:"description"`
	Date        string  `json:"date" validate:"required,calendar_date"`

	Mistyped []string `json:"-" validate:"-"`
}

// WalletBalance is a wallet together with its derived balance.
type WalletBalance struct {
	Wallet  models.Wallet
	Balance decimal.Decimal
}

// WalletDetails is a wallet, its derived balance and its ordered transactions.
type WalletDetails struct {
	WalletBalance
	Transactions []models.Transaction
}

// UserProfile is a user with every owned wallet and the overall balance.
type UserProfile struct {
	User           models.User
	Wallets        []WalletBalance
	OverallBalance decimal.Decimal
}

// UserServicer defines the contract of the user registry.
type UserServicer interface {
	CreateUser(input CreateUserInput) (*models.User, error)
	GetUserProfile(userID string) (*UserProfile, error)
}

// WalletServicer defines the contract of the wallet registry.
type WalletServicer interface {
	CreateWallet(input CreateWalletInput) (*WalletBalance, error)
	GetWallet(walletID string) (*WalletDetails, error)
	FindWallet(walletID string) (*models.Wallet, error)
	UpdateWallet(walletID string, input UpdateWalletInput) (*WalletBalance, error)
	DeleteWallet(walletID string) error
}

// TransactionResult is a newly recorded transaction with the wallet's
// freshly recomputed balance.
type TransactionResult struct {
	Transaction   models.Transaction
	WalletBalance decimal.Decimal
}

// TransactionServicer defines the contract of the transaction ledger.
type TransactionServicer interface {
	FindWallet(walletID string) (*models.Wallet, error)
	CreateTransaction(walletID string, input CreateTransactionInput) (*TransactionResult, error)
	GetWalletTransactions(walletID string) (*WalletDetails, error)
	GetTransactionByID(transactionID string) (*models.Transaction, error)
}

package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finwallet/internal/errors"
	"finwallet/internal/ledger"
	"finwallet/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db            *gorm.DB
	walletService WalletServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, walletService WalletServicer) TransactionServicer {
	return &transactionService{
		db:            db,
		walletService: walletService,
	}
}

// CreateTransaction records an income or expense in a wallet and returns it
// with the wallet's recomputed balance. The wallet is resolved before the
// input is validated.
func (s *transactionService) CreateTransaction(walletID string, input CreateTransactionInput) (*TransactionResult, error) {
	wallet, err := s.walletService.FindWallet(walletID)
	if err != nil {
		return nil, err
	}

	input.Type = trimmed(input.Type)
	input.Amount = trimmed(input.Amount)
	input.Date = trimmed(input.Date)
	if input.Description != nil {
		d := trimmed(*input.Description)
		if d == "" {
			input.Description = nil
		} else {
			input.Description = &d
		}
	}
	if err := validate(input, input.Mistyped); err != nil {
		return nil, err
	}

	// Both parse cleanly once validation has passed.
	amount, _ := ledger.ParseAmount(input.Amount)
	date, _ := ledger.ParseDate(input.Date)

	transaction := &models.Transaction{
		WalletID:    wallet.ID,
		Type:        models.TransactionType(input.Type),
		Amount:      amount,
		Description: input.Description,
		Date:        date,
	}

	var balance decimal.Decimal
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperrors.ErrWalletNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		var txErr error
		balance, txErr = walletBalance(tx, wallet.ID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return &TransactionResult{Transaction: *transaction, WalletBalance: balance}, nil
}

// FindWallet resolves the wallet that transactions are recorded in.
func (s *transactionService) FindWallet(walletID string) (*models.Wallet, error) {
	return s.walletService.FindWallet(walletID)
}

// GetWalletTransactions lists a wallet's transactions in ledger order along
// with a snapshot of the wallet.
func (s *transactionService) GetWalletTransactions(walletID string) (*WalletDetails, error) {
	return s.walletService.GetWallet(walletID)
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	id, ok := normalizeID(transactionID)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}

	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finwallet/internal/errors"
	"finwallet/internal/ledger"
	"finwallet/internal/logger"
	"finwallet/internal/models"
)

const unknownUserMessage = "The selected user id is invalid."

// walletService handles wallet-related business logic.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// CreateWallet creates an empty wallet for an existing user. An unknown
// user_id is reported alongside any other invalid field.
func (s *walletService) CreateWallet(input CreateWalletInput) (*WalletBalance, error) {
	input.Name = trimmed(input.Name)
	input.UserID = trimmed(input.UserID)

	fields := fieldErrors(input, input.Mistyped)
	if _, failed := fields["user_id"]; !failed {
		exists, err := s.userExists(input.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			fields["user_id"] = unknownUserMessage
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	userID, _ := normalizeID(input.UserID)
	wallet := &models.Wallet{
		UserID: userID,
		Name:   input.Name,
	}
	if err := s.db.Create(wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.Validation(map[string]string{"user_id": unknownUserMessage})
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &WalletBalance{Wallet: *wallet, Balance: ledger.Balance(nil)}, nil
}

// GetWallet retrieves a wallet with its balance and its transactions in
// ledger order. The balance is derived from the same transaction snapshot.
func (s *walletService) GetWallet(walletID string) (*WalletDetails, error) {
	wallet, err := s.findWallet(s.db, walletID)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Where("wallet_id = ?", wallet.ID).Scopes(ledgerOrder).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]ledger.Entry, len(transactions))
	for i := range transactions {
		entries[i] = ledger.Entry{Type: transactions[i].Type, Amount: transactions[i].Amount}
	}

	return &WalletDetails{
		WalletBalance: WalletBalance{Wallet: *wallet, Balance: ledger.Balance(entries)},
		Transactions:  transactions,
	}, nil
}

// FindWallet resolves a wallet without deriving its balance.
func (s *walletService) FindWallet(walletID string) (*models.Wallet, error) {
	return s.findWallet(s.db, walletID)
}

// UpdateWallet renames a wallet. The owner and balance cannot be changed.
func (s *walletService) UpdateWallet(walletID string, input UpdateWalletInput) (*WalletBalance, error) {
	wallet, err := s.findWallet(s.db, walletID)
	if err != nil {
		return nil, err
	}

	input.Name = trimmed(input.Name)
	if err := validate(input, input.Mistyped); err != nil {
		return nil, err
	}

	if err := s.db.Model(wallet).Update("name", input.Name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// Reload to get fresh data
	if err := s.db.Where("id = ?", wallet.ID).First(wallet).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	balance, err := walletBalance(s.db, wallet.ID)
	if err != nil {
		return nil, err
	}
	return &WalletBalance{Wallet: *wallet, Balance: balance}, nil
}

// DeleteWallet removes a wallet and all of its transactions in one database
// transaction. Either both are gone or neither is.
func (s *walletService) DeleteWallet(walletID string) error {
	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		wallet, err := s.findWallet(tx, walletID)
		if err != nil {
			return err
		}

		res := tx.Where("wallet_id = ?", wallet.ID).Delete(&models.Transaction{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		removed = res.RowsAffected

		res = tx.Delete(wallet)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			// Deleted concurrently between lookup and delete.
			return apperrors.ErrWalletNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Get().Infow("wallet deleted", "wallet_id", walletID, "transactions_removed", removed)
	return nil
}

func (s *walletService) findWallet(db *gorm.DB, walletID string) (*models.Wallet, error) {
	id, ok := normalizeID(walletID)
	if !ok {
		return nil, apperrors.ErrWalletNotFound
	}

	var wallet models.Wallet
	if err := db.Where("id = ?", id).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &wallet, nil
}

func (s *walletService) userExists(userID string) (bool, error) {
	id, ok := normalizeID(userID)
	if !ok {
		return false, nil
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

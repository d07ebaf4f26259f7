package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finwallet/internal/errors"
	"finwallet/internal/ledger"
	"finwallet/internal/models"
	"finwallet/internal/uuid"
	"finwallet/internal/validator"
)

// validate runs the declarative rules of input and converts failures into a
// validation AppError naming every offending field.
func validate(input any, mistyped []string) error {
	if fields := fieldErrors(input, mistyped); len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

// fieldErrors reports every field of input that breaks a rule. A mistyped
// field is reported as such in place of whatever rule it also breaks.
func fieldErrors(input any, mistyped []string) map[string]string {
	fields := validator.Struct(input)
	for _, name := range mistyped {
		fields[name] = validator.TypeMessage(name, "string")
	}
	return fields
}

// normalizeID returns the canonical form of a path identifier, or false if
// it cannot name any stored row.
func normalizeID(id string) (string, bool) {
	id = strings.TrimSpace(id)
	if !uuid.IsValid(id) {
		return "", false
	}
	canonical, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return canonical, true
}

type balanceRow struct {
	WalletID string
	Type     models.TransactionType
	Amount   decimal.Decimal
}

// walletBalances derives the balance of each wallet from its transactions in
// a single query. Wallets without transactions are absent from the result.
func walletBalances(db *gorm.DB, walletIDs []string) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(walletIDs))
	if len(walletIDs) == 0 {
		return balances, nil
	}

	var rows []balanceRow
	if err := db.Model(&models.Transaction{}).
		Select("wallet_id, type, amount").
		Where("wallet_id IN ?", walletIDs).
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make(map[string][]ledger.Entry, len(walletIDs))
	for _, r := range rows {
		entries[r.WalletID] = append(entries[r.WalletID], ledger.Entry{Type: r.Type, Amount: r.Amount})
	}
	for id, e := range entries {
		balances[id] = ledger.Balance(e)
	}
	return balances, nil
}

// walletBalance derives the balance of one wallet.
func walletBalance(db *gorm.DB, walletID string) (decimal.Decimal, error) {
	balances, err := walletBalances(db, []string{walletID})
	if err != nil {
		return decimal.Zero, err
	}
	if b, ok := balances[walletID]; ok {
		return b, nil
	}
	return decimal.Zero.Round(ledger.Scale), nil
}

// ledgerOrder sorts transactions newest first: by calendar date, then by
// entry time, then by id.
func ledgerOrder(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("created_at DESC").Order("id DESC")
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

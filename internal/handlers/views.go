package handlers

import (
	"time"

	"finwallet/internal/ledger"
	"finwallet/internal/models"
	"finwallet/internal/services"
)

// UserResponse is the public view of a user. The password hash is never rendered.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletResponse is the public view of a wallet with its derived balance.
type WalletResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id,omitempty"`
	Name      string     `json:"name"`
	Balance   string     `json:"balance" example:"800.00"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	WalletID    string                 `json:"wallet_id"`
	Type        models.TransactionType `json:"type" enums:"income,expense"`
	Amount      string                 `json:"amount" example:"5000.50"`
	Description *string                `json:"description"`
	Date        string                 `json:"date" example:"2026-02-24"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ErrorBody is the payload of an error response.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func userView(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// walletSummary renders id, name and balance only.
func walletSummary(w services.WalletBalance) WalletResponse {
	return WalletResponse{
		ID:      w.Wallet.ID,
		Name:    w.Wallet.Name,
		Balance: ledger.Format(w.Balance),
	}
}

func walletWithCreated(w services.WalletBalance) WalletResponse {
	v := walletSummary(w)
	v.UserID = w.Wallet.UserID
	created := w.Wallet.CreatedAt
	v.CreatedAt = &created
	return v
}

func walletWithUpdated(w services.WalletBalance) WalletResponse {
	v := walletSummary(w)
	v.UserID = w.Wallet.UserID
	updated := w.Wallet.UpdatedAt
	v.UpdatedAt = &updated
	return v
}

func transactionView(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Type:        t.Type,
		Amount:      ledger.Format(t.Amount),
		Description: t.Description,
		Date:        ledger.FormatDate(t.Date),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func transactionViews(ts []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i := range ts {
		out[i] = transactionView(&ts[i])
	}
	return out
}

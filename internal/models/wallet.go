package models

// Wallet groups transactions for one user. It carries no balance column:
// the balance is always derived from its transactions.
type Wallet struct {
	Base
	UserID       string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	Transactions []Transaction `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
}

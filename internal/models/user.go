package models

// User owns zero or more wallets. Password holds the bcrypt hash only.
type User struct {
	Base
	Name     string   `gorm:"size:255;not null" json:"name"`
	Email    string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	Wallets  []Wallet `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"wallets,omitempty"`
}

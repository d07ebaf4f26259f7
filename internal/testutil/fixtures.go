package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finwallet/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     "John Doe",
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestWallet creates an empty wallet for the user.
func CreateTestWallet(t *testing.T, db *gorm.DB, userID string) *models.Wallet {
	t.Helper()
	return CreateTestWalletNamed(t, db, userID, fmt.Sprintf("Test Wallet %d", nextID()))
}

// CreateTestWalletNamed creates an empty wallet with the given name.
func CreateTestWalletNamed(t *testing.T, db *gorm.DB, userID, name string) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{UserID: userID, Name: name}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return wallet
}

// CreateTestTransaction creates a transaction with the given type, decimal
// amount and YYYY-MM-DD date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, walletID string, txType models.TransactionType, amount, date string) *models.Transaction {
	t.Helper()

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", date, err)
	}

	tx := &models.Transaction{
		WalletID: walletID,
		Type:     txType,
		Amount:   decimal.RequireFromString(amount),
		Date:     d,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestTransactionAt is CreateTestTransaction with an explicit entry time.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, walletID string, txType models.TransactionType, amount, date string, createdAt time.Time) *models.Transaction {
	t.Helper()

	tx := CreateTestTransaction(t, db, walletID, txType, amount, date)
	if err := db.Model(tx).UpdateColumn("created_at", createdAt.UTC()).Error; err != nil {
		t.Fatalf("failed to set created_at: %v", err)
	}
	tx.CreatedAt = createdAt.UTC()
	return tx
}

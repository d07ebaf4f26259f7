package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "finwallet/internal/errors"
	"finwallet/internal/ledger"
	"finwallet/internal/models"
)

const duplicateEmailMessage = "The email has already been taken."

// userService handles user-related business logic.
type userService struct {
	db         *gorm.DB
	bcryptCost int
}

// NewUserService creates a new UserServicer hashing passwords at the given
// bcrypt cost.
func NewUserService(db *gorm.DB, bcryptCost int) UserServicer {
	return &userService{db: db, bcryptCost: bcryptCost}
}

// CreateUser registers a new user
func (s *userService) CreateUser(input CreateUserInput) (*models.User, error) {
	input.Name = trimmed(input.Name)
	input.Email = strings.ToLower(trimmed(input.Email))
	if err := validate(input, input.Mistyped); err != nil {
		return nil, err
	}

	// Check if user with email exists
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.Validation(map[string]string{"email": duplicateEmailMessage})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if err := s.db.Create(user).Error; err != nil {
		// A concurrent registration can win the race past the count check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation(map[string]string{"email": duplicateEmailMessage})
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserProfile retrieves a user with every owned wallet and the overall
// balance, all derived fresh from the transaction set.
func (s *userService) GetUserProfile(userID string) (*UserProfile, error) {
	id, ok := normalizeID(userID)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var wallets []models.Wallet
	if err := s.db.Where("user_id = ?", user.ID).Order("created_at ASC").Order("id ASC").Find(&wallets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	walletIDs := make([]string, len(wallets))
	for i := range wallets {
		walletIDs[i] = wallets[i].ID
	}
	balances, err := walletBalances(s.db, walletIDs)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{User: user, Wallets: make([]WalletBalance, 0, len(wallets))}
	perWallet := make([]decimal.Decimal, 0, len(wallets))
	for _, w := range wallets {
		b := balances[w.ID]
		profile.Wallets = append(profile.Wallets, WalletBalance{Wallet: w, Balance: b})
		perWallet = append(perWallet, b)
	}
	profile.OverallBalance = ledger.Total(perWallet)

	return profile, nil
}

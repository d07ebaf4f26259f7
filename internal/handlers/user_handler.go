package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finwallet/internal/ledger"
	"finwallet/internal/services"
)

// UserHandler handles user-related requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the request payload for registering a user
type CreateUserRequest struct {
	Name     text `json:"name" swaggertype:"string"`
	Email    text `json:"email" swaggertype:"string"`
	Password text `json:"password" swaggertype:"string"`
}

// CreateUser handles user registration
// @Summary     Create a user
// @Description Register a user. The email must be unique and the password at least 8 characters.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} UserResponse "User created"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	var mistyped []string
	input := services.CreateUserInput{
		Name:     req.Name.read("name", &mistyped),
		Email:    req.Email.read("email", &mistyped),
		Password: req.Password.read("password", &mistyped),
	}
	input.Mistyped = mistyped

	user, err := h.userService.CreateUser(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully.",
		"data":    userView(user),
	})
}

// GetUser handles retrieval of a user profile with wallets and overall balance
// @Summary     Get a user
// @Description Get a user with each wallet's balance and the overall balance
// @Tags        users
// @Produce     json
// @Param       id path string true "User ID (UUID)"
// @Success     200 {object} map[string]interface{} "user, wallets, overall_balance"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.userService.GetUserProfile(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	wallets := make([]WalletResponse, len(profile.Wallets))
	for i, w := range profile.Wallets {
		wallets[i] = walletSummary(w)
	}

	c.JSON(http.StatusOK, gin.H{
		"user":            userView(&profile.User),
		"wallets":         wallets,
		"overall_balance": ledger.Format(profile.OverallBalance),
	})
}

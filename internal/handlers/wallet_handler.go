package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finwallet/internal/services"
)

// WalletHandler handles wallet-related requests.
type WalletHandler struct {
	walletService services.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// CreateWalletRequest represents the request payload for creating a wallet
type CreateWalletRequest struct {
	UserID text `json:"user_id" swaggertype:"string"`
	Name   text `json:"name" swaggertype:"string"`
}

// UpdateWalletRequest represents the request payload for renaming a wallet
type UpdateWalletRequest struct {
	Name text `json:"name" swaggertype:"string"`
}

// CreateWallet handles the creation of a wallet
// @Summary     Create a wallet
// @Description Create an empty wallet for an existing user
// @Tags        wallets
// @Accept      json
// @Produce     json
// @Param       request body CreateWalletRequest true "Wallet details"
// @Success     201 {object} WalletResponse "Wallet created"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Failure     422 {object} ErrorResponse "Validation failed or unknown user_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets [post]
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req CreateWalletRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	var mistyped []string
	input := services.CreateWalletInput{
		UserID: req.UserID.read("user_id", &mistyped),
		Name:   req.Name.read("name", &mistyped),
	}
	input.Mistyped = mistyped

	wallet, err := h.walletService.CreateWallet(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Wallet created successfully.",
		"data":    walletWithCreated(*wallet),
	})
}

// GetWallet handles retrieval of a wallet with its transactions
// @Summary     Get a wallet
// @Description Get a wallet with its balance and its transactions, newest first
// @Tags        wallets
// @Produce     json
// @Param       id path string true "Wallet ID (UUID)"
// @Success     200 {object} map[string]interface{} "wallet, transactions"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets/{id} [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	details, err := h.walletService.GetWallet(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallet":       walletWithCreated(details.WalletBalance),
		"transactions": transactionViews(details.Transactions),
	})
}

// UpdateWallet handles renaming a wallet
// @Summary     Update a wallet
// @Description Rename a wallet. The owner and balance cannot be changed.
// @Tags        wallets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Wallet ID (UUID)"
// @Param       request body UpdateWalletRequest true "New name"
// @Success     200 {object} WalletResponse "Wallet updated"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets/{id} [put]
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
	walletID := c.Param("id")

	var req UpdateWalletRequest
	if err := bindJSON(c, &req); err != nil {
		// An unknown wallet outranks a malformed body.
		if _, findErr := h.walletService.FindWallet(walletID); findErr != nil {
			err = findErr
		}
		respondWithError(c, err)
		return
	}

	var mistyped []string
	input := services.UpdateWalletInput{Name: req.Name.read("name", &mistyped)}
	input.Mistyped = mistyped

	wallet, err := h.walletService.UpdateWallet(walletID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wallet updated successfully.",
		"data":    walletWithUpdated(*wallet),
	})
}

// DeleteWallet handles deletion of a wallet and its transactions
// @Summary     Delete a wallet
// @Description Delete a wallet together with all of its transactions
// @Tags        wallets
// @Produce     json
// @Param       id path string true "Wallet ID (UUID)"
// @Success     200 {object} map[string]string "Wallet deleted"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets/{id} [delete]
func (h *WalletHandler) DeleteWallet(c *gin.Context) {
	if err := h.walletService.DeleteWallet(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wallet deleted successfully."})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finwallet/internal/ledger"
	"finwallet/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a transaction.
// Amount may be sent as a JSON number or a numeric string.
type CreateTransactionRequest struct {
	Type        scalar `json:"type" swaggertype:"string" enums:"income,expense"`
	Amount      scalar `json:"amount" swaggertype:"string" example:"1000.00"`
	Description text   `json:"description" swaggertype:"string"`
	Date        scalar `json:"date" swaggertype:"string" example:"2026-02-24"`
}

// CreateTransaction handles recording an income or expense in a wallet
// @Summary     Create a transaction
// @Description Record an income or expense in a wallet and return the recomputed wallet balance
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Wallet ID (UUID)"
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets/{id}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	walletID := c.Param("id")

	var req CreateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		// An unknown wallet outranks a malformed body.
		if _, findErr := h.transactionService.FindWallet(walletID); findErr != nil {
			err = findErr
		}
		respondWithError(c, err)
		return
	}

	var mistyped []string
	input := services.CreateTransactionInput{
		Type:        string(req.Type),
		Amount:      string(req.Amount),
		Description: req.Description.readPtr("description", &mistyped),
		Date:        string(req.Date),
	}
	input.Mistyped = mistyped

	result, err := h.transactionService.CreateTransaction(walletID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Transaction created successfully.",
		"data":           transactionView(&result.Transaction),
		"wallet_balance": ledger.Format(result.WalletBalance),
	})
}

// GetWalletTransactions handles listing a wallet's transactions
// @Summary     List wallet transactions
// @Description List a wallet's transactions by date descending, then entry time descending
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Wallet ID (UUID)"
// @Success     200 {object} map[string]interface{} "wallet, transactions"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets/{id}/transactions [get]
func (h *TransactionHandler) GetWalletTransactions(c *gin.Context) {
	details, err := h.transactionService.GetWalletTransactions(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallet":       walletSummary(details.WalletBalance),
		"transactions": transactionViews(details.Transactions),
	})
}

// GetTransactionByID handles retrieval of a single transaction
// @Summary     Get a transaction
// @Description Get a transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID (UUID)"
// @Success     200 {object} TransactionResponse "Transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": transactionView(transaction)})
}

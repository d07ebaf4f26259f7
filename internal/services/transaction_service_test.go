package services

import (
	"testing"

	"finwallet/internal/models"
	"finwallet/internal/testutil"
)

func strPtr(s string) *string { return &s }

func newTransactionService(t *testing.T) (TransactionServicer, *models.Wallet, func() int64) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db)
	wallet := testutil.CreateTestWallet(t, db, user.ID)
	count := func() int64 {
		var n int64
		db.Model(&models.Transaction{}).Count(&n)
		return n
	}
	return NewTransactionService(db, NewWalletService(db)), wallet, count
}

func TestCreateTransaction(t *testing.T) {
	t.Run("income_then_expense", func(t *testing.T) {
		svc, wallet, _ := newTransactionService(t)

		res, err := svc.CreateTransaction(wallet.ID, CreateTransactionInput{
			Type: "income", Amount: "1000.00", Description: strPtr("Salary"), Date: "2026-02-24",
		})
		testutil.AssertNoError(t, err)
		if got := res.WalletBalance.StringFixed(2); got != "1000.00" {
			t.Errorf("expected balance 1000.00, got %s", got)
		}

		res, err = svc.CreateTransaction(wallet.ID, CreateTransactionInput{
			Type: "expense", Amount: "200", Date: "2026-02-24",
		})
		testutil.AssertNoError(t, err)
		if got := res.WalletBalance.StringFixed(2); got != "800.00" {
			t.Errorf("expected balance 800.00, got %s", got)
		}

		tx := res.Transaction
		if tx.ID == "" {
			t.Fatal("expected transaction ID to be assigned")
		}
		if tx.WalletID != wallet.ID {
			t.Errorf("expected wallet %s, got %s", wallet.ID, tx.WalletID)
		}
		if tx.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", tx.Type)
		}
		if got := tx.Amount.StringFixed(2); got != "200.00" {
			t.Errorf("expected amount 200.00, got %s", got)
		}
		if tx.Description != nil {
			t.Errorf("expected nil description, got %q", *tx.Description)
		}
		if got := tx.Date.Format("2006-01-02"); got != "2026-02-24" {
			t.Errorf("expected date 2026-02-24, got %s", got)
		}
	})

	t.Run("normalizes_description", func(t *testing.T) {
		svc, wallet, _ := newTransactionService(t)

		res, err := svc.CreateTransaction(wallet.ID, CreateTransactionInput{
			Type: "income", Amount: "5", Description: strPtr("  Bonus  "), Date: "2026-02-24",
		})
		testutil.AssertNoError(t, err)
		if res.Transaction.Description == nil || *res.Transaction.Description != "Bonus" {
			t.Errorf("expected trimmed description, got %v", res.Transaction.Description)
		}

		res, err = svc.CreateTransaction(wallet.ID, CreateTransactionInput{
			Type: "income", Amount: "5", Description: strPtr("   "), Date: "2026-02-24",
		})
		testutil.AssertNoError(t, err)
		if res.Transaction.Description != nil {
			t.Errorf("expected blank description to be nil, got %q", *res.Transaction.Description)
		}
	})

	t.Run("accepts_timestamp_date", func(t *testing.T) {
		svc, wallet, _ := newTransactionService(t)

		res, err := svc.CreateTransaction(wallet.ID, CreateTransactionInput{
			Type: "income", Amount: "1.50", Date: "2026-02-24T18:30:00Z",
		})
		testutil.AssertNoError(t, err)
		if got := res.Transaction.Date.Format("2006-01-02"); got != "2026-02-24" {
			t.Errorf("expected date 2026-02-24, got %s", got)
		}
	})

	t.Run("wallet_not_found", func(t *testing.T) {
		svc, _, count := newTransactionService(t)

		_, err := svc.CreateTransaction(missingID, CreateTransactionInput{
			Type: "income", Amount: "10", Date: "2026-02-24",
		})
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
		if count() != 0 {
			t.Error("expected nothing recorded")
		}
	})

	t.Run("not_found_wins_over_invalid_input", func(t *testing.T) {
		svc, _, _ := newTransactionService(t)

		_, err := svc.CreateTransaction("bad-id", CreateTransactionInput{})
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})

	t.Run("empty_input_reports_every_field", func(t *testing.T) {
		svc, wallet, count := newTransactionService(t)

		_, err := svc.CreateTransaction(wallet.ID, CreateTransactionInput{})
		testutil.AssertValidationFields(t, err, "type", "amount", "date")
		if count() != 0 {
			t.Error("expected nothing recorded")
		}
	})

	t.Run("mistyped_field_reported_with_the_rest", func(t *testing.T) {
		svc, wallet, _ := newTransactionService(t)

		_, err := svc.CreateTransaction(wallet.ID, CreateTransactionInput{
			Type: "income", Amount: "0", Mistyped: []string{"description"},
		})
		testutil.AssertValidationFields(t, err, "amount", "date", "description")
	})

	invalid := []struct {
		name  string
		input CreateTransactionInput
		field string
	}{
		{name: "unknown_type", input: CreateTransactionInput{Type: "transfer", Amount: "10", Date: "2026-02-24"}, field: "type"},
		{name: "zero_amount", input: CreateTransactionInput{Type: "income", Amount: "0", Date: "2026-02-24"}, field: "amount"},
		{name: "negative_amount", input: CreateTransactionInput{Type: "income", Amount: "-5", Date: "2026-02-24"}, field: "amount"},
		{name: "non_numeric_amount", input: CreateTransactionInput{Type: "income", Amount: "ten", Date: "2026-02-24"}, field: "amount"},
		{name: "three_decimals", input: CreateTransactionInput{Type: "income", Amount: "1.005", Date: "2026-02-24"}, field: "amount"},
		{name: "impossible_date", input: CreateTransactionInput{Type: "income", Amount: "10", Date: "2026-02-30"}, field: "date"},
		{name: "garbage_date", input: CreateTransactionInput{Type: "income", Amount: "10", Date: "yesterday"}, field: "date"},
		{name: "mistyped_description", input: CreateTransactionInput{Type: "income", Amount: "10", Date: "2026-02-24", Mistyped: []string{"description"}}, field: "description"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, wallet, count := newTransactionService(t)

			_, err := svc.CreateTransaction(wallet.ID, tt.input)
			testutil.AssertValidationFields(t, err, tt.field)
			if count() != 0 {
				t.Error("expected nothing recorded")
			}
		})
	}
}

func TestGetWalletTransactions(t *testing.T) {
	t.Run("lists_newest_first", func(t *testing.T) {
		svc, wallet, _ := newTransactionService(t)

		for _, in := range []CreateTransactionInput{
			{Type: "income", Amount: "1000", Date: "2026-02-20"},
			{Type: "expense", Amount: "200", Date: "2026-02-24"},
			{Type: "expense", Amount: "50", Date: "2026-02-22"},
		} {
			_, err := svc.CreateTransaction(wallet.ID, in)
			testutil.AssertNoError(t, err)
		}

		details, err := svc.GetWalletTransactions(wallet.ID)
		testutil.AssertNoError(t, err)

		if got := details.Balance.StringFixed(2); got != "750.00" {
			t.Errorf("expected balance 750.00, got %s", got)
		}
		want := []string{"2026-02-24", "2026-02-22", "2026-02-20"}
		if len(details.Transactions) != len(want) {
			t.Fatalf("expected %d transactions, got %d", len(want), len(details.Transactions))
		}
		for i, d := range want {
			if got := details.Transactions[i].Date.Format("2006-01-02"); got != d {
				t.Errorf("position %d: expected %s, got %s", i, d, got)
			}
		}
	})

	t.Run("wallet_not_found", func(t *testing.T) {
		svc, _, _ := newTransactionService(t)

		_, err := svc.GetWalletTransactions(missingID)
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})
}

func TestGetTransactionByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, wallet, _ := newTransactionService(t)

		res, err := svc.CreateTransaction(wallet.ID, CreateTransactionInput{
			Type: "income", Amount: "5000.50", Description: strPtr("Salary"), Date: "2026-02-24",
		})
		testutil.AssertNoError(t, err)

		tx, err := svc.GetTransactionByID(res.Transaction.ID)
		testutil.AssertNoError(t, err)

		if got := tx.Amount.StringFixed(2); got != "5000.50" {
			t.Errorf("expected amount 5000.50, got %s", got)
		}
		if tx.Description == nil || *tx.Description != "Salary" {
			t.Errorf("expected description Salary, got %v", tx.Description)
		}
		if got := tx.Date.Format("2006-01-02"); got != "2026-02-24" {
			t.Errorf("expected date 2026-02-24, got %s", got)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		svc, _, _ := newTransactionService(t)

		_, err := svc.GetTransactionByID(missingID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		_, err = svc.GetTransactionByID("7")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

package services

import (
	"testing"

	"finwallet/internal/logger"
	"finwallet/internal/models"
	"finwallet/internal/testutil"
)

func init() {
	logger.Init("test")
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "canonical", in: "0190e3a4-7c1b-7d2e-8f3a-1b2c3d4e5f60", want: "0190e3a4-7c1b-7d2e-8f3a-1b2c3d4e5f60", ok: true},
		{name: "upper_case", in: "0190E3A4-7C1B-7D2E-8F3A-1B2C3D4E5F60", want: "0190e3a4-7c1b-7d2e-8f3a-1b2c3d4e5f60", ok: true},
		{name: "surrounding_space", in: " 0190e3a4-7c1b-7d2e-8f3a-1b2c3d4e5f60 ", want: "0190e3a4-7c1b-7d2e-8f3a-1b2c3d4e5f60", ok: true},
		{name: "integer", in: "42", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "not-a-uuid", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeID(tt.in)
			if ok != tt.ok {
				t.Fatalf("normalizeID(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("normalizeID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWalletBalances(t *testing.T) {
	t.Run("derives_each_wallet_independently", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		a := testutil.CreateTestWallet(t, db, user.ID)
		b := testutil.CreateTestWallet(t, db, user.ID)
		empty := testutil.CreateTestWallet(t, db, user.ID)

		testutil.CreateTestTransaction(t, db, a.ID, models.TransactionTypeIncome, "1000.00", "2026-02-24")
		testutil.CreateTestTransaction(t, db, a.ID, models.TransactionTypeExpense, "200.00", "2026-02-24")
		testutil.CreateTestTransaction(t, db, b.ID, models.TransactionTypeExpense, "0.10", "2026-02-24")
		testutil.CreateTestTransaction(t, db, b.ID, models.TransactionTypeExpense, "0.20", "2026-02-24")

		balances, err := walletBalances(db, []string{a.ID, b.ID, empty.ID})
		testutil.AssertNoError(t, err)

		if got := balances[a.ID].StringFixed(2); got != "800.00" {
			t.Errorf("expected wallet a balance 800.00, got %s", got)
		}
		if got := balances[b.ID].StringFixed(2); got != "-0.30" {
			t.Errorf("expected wallet b balance -0.30, got %s", got)
		}
		if _, ok := balances[empty.ID]; ok {
			t.Error("expected empty wallet to be absent")
		}
	})

	t.Run("no_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		balances, err := walletBalances(db, nil)
		testutil.AssertNoError(t, err)
		if len(balances) != 0 {
			t.Errorf("expected no balances, got %d", len(balances))
		}
	})

	t.Run("single_wallet_without_transactions_is_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		w := testutil.CreateTestWallet(t, db, user.ID)

		balance, err := walletBalance(db, w.ID)
		testutil.AssertNoError(t, err)
		if got := balance.StringFixed(2); got != "0.00" {
			t.Errorf("expected 0.00, got %s", got)
		}
	})
}

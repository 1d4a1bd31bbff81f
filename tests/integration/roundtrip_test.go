package integration

import (
	"path/filepath"
	"testing"
	"time"

	"spendwise/internal/auth"
	"spendwise/internal/ledger"
	"spendwise/internal/models"
	"spendwise/internal/store"
	"spendwise/internal/testutil"
)

// TestRestartRoundTrip simulates a process restart: everything written
// before closing the database must read back identically afterwards.
func TestRestartRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "spendwise.db")
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// First process lifetime.
	{
		db := testutil.OpenFileDB(t, dbPath)
		st := store.New(db)
		testutil.AssertNoError(t, st.Initialize())

		dir := auth.NewDirectory(st)
		testutil.AssertNoError(t, dir.Register("alice", "secret123", "alice@example.com", "Alice"))

		led := ledger.NewLedger(st, ledger.SystemClock, "alice")
		if !led.AddExpense("Coffee", 450, 1, day, "morning") {
			t.Fatal("add failed")
		}
		if !led.SetCategoryBudget(1, 30000) {
			t.Fatal("set category budget failed")
		}

		testutil.TeardownTestDB(t, db)
	}

	// Second process lifetime on the same file.
	{
		db := testutil.OpenFileDB(t, dbPath)
		defer testutil.TeardownTestDB(t, db)
		st := store.New(db)

		// Initialize must not reseed over the existing categories.
		testutil.AssertNoError(t, st.Initialize())
		categories := st.GetAllCategories()
		if len(categories) != 8 {
			t.Fatalf("expected 8 categories after restart, got %d", len(categories))
		}
		for _, c := range categories {
			if c.ID == 1 && c.BudgetLimit != 30000 {
				t.Errorf("category budget limit lost across restart: %d", c.BudgetLimit)
			}
		}

		user, err := st.GetUser("alice")
		testutil.AssertNoError(t, err)
		if user.Email != "alice@example.com" || user.FullName != "Alice" {
			t.Errorf("user fields lost across restart: %+v", user)
		}

		dir := auth.NewDirectory(st)
		if !dir.Login("alice", "secret123") {
			t.Error("expected stored credential to survive restart")
		}

		expenses := st.GetUserExpenses("alice")
		if len(expenses) != 1 {
			t.Fatalf("expected 1 expense after restart, got %d", len(expenses))
		}
		e := expenses[0]
		if e.ID != 1 || e.Title != "Coffee" || e.Amount != 450 || e.Description != "morning" {
			t.Errorf("expense fields lost across restart: %+v", e)
		}
		if e.DateKey() != "2024-03-01" {
			t.Errorf("expense date shifted across restart: %s", e.DateKey())
		}
		if e.PaymentMethod != models.PaymentMethodCash {
			t.Errorf("payment method lost across restart: %s", e.PaymentMethod)
		}

		// ID assignment continues from the persisted maximum.
		led := ledger.NewLedger(st, ledger.SystemClock, "alice")
		if !led.AddExpense("Bus", 200, 2, day, "") {
			t.Fatal("add after restart failed")
		}
		for _, e := range led.Expenses() {
			if e.Title == "Bus" && e.ID != 2 {
				t.Errorf("expected new expense ID 2 after restart, got %d", e.ID)
			}
		}
	}
}

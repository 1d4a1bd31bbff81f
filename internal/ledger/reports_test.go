package ledger

import (
	"math"
	"testing"
	"time"

	"spendwise/internal/testutil"
)

func TestCategoryBreakdown(t *testing.T) {
	t.Run("percentages_sum_to_hundred", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaultCategories(t, db)
		user := testutil.CreateTestUser(t, db)
		led := newTestLedger(t, db, user.Username)

		led.AddExpense("Groceries", 6000, 1, march15, "")
		led.AddExpense("Bus", 3000, 2, march15, "")
		led.AddExpense("Cinema", 1000, 4, march15, "")

		breakdown := led.CategoryBreakdown()
		if len(breakdown) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(breakdown))
		}

		// Largest spend first.
		if breakdown[0].Category.ID != 1 || breakdown[0].Percent != 60.0 {
			t.Errorf("unexpected first row %+v", breakdown[0])
		}
		if breakdown[1].Category.ID != 2 || breakdown[1].Percent != 30.0 {
			t.Errorf("unexpected second row %+v", breakdown[1])
		}

		var percentSum float64
		for _, row := range breakdown {
			percentSum += row.Percent
		}
		if math.Abs(percentSum-100.0) > 1e-9 {
			t.Errorf("expected percentages to sum to 100, got %f", percentSum)
		}
	})

	t.Run("empty_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaultCategories(t, db)
		user := testutil.CreateTestUser(t, db)
		led := newTestLedger(t, db, user.Username)

		if got := led.CategoryBreakdown(); len(got) != 0 {
			t.Errorf("expected no rows, got %d", len(got))
		}
	})
}

func TestMonthlySummaryFor(t *testing.T) {
	t.Run("totals_and_highest", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaultCategories(t, db)
		user := testutil.CreateTestUser(t, db)
		led := newTestLedger(t, db, user.Username)

		led.AddExpense("Coffee", 400, 1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "")
		led.AddExpense("Rent", 80000, 5, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "")
		led.AddExpense("Bus", 220, 2, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), "")

		summary := led.MonthlySummaryFor(2024, time.March)
		if summary.Total != 80620 || summary.Count != 3 {
			t.Errorf("unexpected totals %+v", summary)
		}
		if summary.Highest == nil || summary.Highest.Title != "Rent" {
			t.Error("expected Rent to be the highest expense")
		}
		wantAvg := float64(80620) / 3
		if math.Abs(summary.Average-wantAvg) > 1e-9 {
			t.Errorf("expected average %f, got %f", wantAvg, summary.Average)
		}
	})

	t.Run("empty_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaultCategories(t, db)
		user := testutil.CreateTestUser(t, db)
		led := newTestLedger(t, db, user.Username)

		summary := led.MonthlySummaryFor(2024, time.December)
		if summary.Total != 0 || summary.Count != 0 || summary.Average != 0 || summary.Highest != nil {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})
}

func TestMonthlyTrends(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.SeedDefaultCategories(t, db)
	user := testutil.CreateTestUser(t, db)
	led := newTestLedger(t, db, user.Username) // clock pinned to March 2024

	led.AddExpense("January", 3100, 1, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "")
	led.AddExpense("February A", 1000, 1, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), "")
	led.AddExpense("February B", 450, 1, time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC), "")
	led.AddExpense("March", 900, 1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "")

	trends := led.MonthlyTrends(3)
	if len(trends) != 3 {
		t.Fatalf("expected 3 months, got %d", len(trends))
	}

	// Oldest first, ending at the clock's current month.
	if trends[0].Month != time.January || trends[0].Total != 3100 || trends[0].Count != 1 {
		t.Errorf("unexpected January row %+v", trends[0])
	}
	if trends[1].Month != time.February || trends[1].Total != 1450 || trends[1].Count != 2 {
		t.Errorf("unexpected February row %+v", trends[1])
	}
	if trends[2].Month != time.March || trends[2].Total != 900 {
		t.Errorf("unexpected March row %+v", trends[2])
	}

	// January has 31 days.
	wantPerDay := float64(3100) / 31
	if math.Abs(trends[0].AveragePerDay-wantPerDay) > 1e-9 {
		t.Errorf("expected average/day %f, got %f", wantPerDay, trends[0].AveragePerDay)
	}

	if got := led.MonthlyTrends(0); got != nil {
		t.Errorf("expected nil for zero months, got %v", got)
	}
}

package testutil_test

import (
	"testing"
	"time"

	"spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "categories", "expenses"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.Username == "" {
		t.Fatal("user should have a username")
	}

	testutil.SeedDefaultCategories(t, db)
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		t.Fatalf("failed to load categories: %v", err)
	}
	if len(categories) != len(models.DefaultCategories) {
		t.Errorf("expected %d categories, got %d", len(models.DefaultCategories), len(categories))
	}

	category := testutil.CreateTestCategory(t, db)
	if category.ID < 1000 {
		t.Errorf("expected test category ID >= 1000, got %d", category.ID)
	}

	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	expense := testutil.CreateTestExpense(t, db, user.Username, 1, category.ID, 650, date)
	if expense.Amount != 650 {
		t.Errorf("expected amount 650, got %d", expense.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrExpenseNotFound, "custom message")
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

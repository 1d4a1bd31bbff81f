package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the raw credential behind every fixture user's hash.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user_%d", nextID())
	return CreateTestUserWithName(t, db, username)
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Email:    fmt.Sprintf("%s@test.com", username),
		FullName: "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// SeedDefaultCategories inserts the 8 default categories with their
// fixed IDs 1-8.
func SeedDefaultCategories(t *testing.T, db *gorm.DB) {
	t.Helper()

	categories := make([]models.Category, len(models.DefaultCategories))
	copy(categories, models.DefaultCategories)
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("failed to seed default categories: %v", err)
	}
}

// CreateTestCategory creates a category with a unique ID above the
// default range.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	n := nextID()
	category := &models.Category{
		ID:        int(1000 + n),
		Name:      fmt.Sprintf("Test Category %d", n),
		ColorCode: "#123456",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense with the given ID, amount in
// cents and date for the given user.
func CreateTestExpense(t *testing.T, db *gorm.DB, username string, id int, categoryID int, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		ID:            id,
		Username:      username,
		Title:         fmt.Sprintf("Test Expense %d", id),
		Amount:        amount,
		CategoryID:    categoryID,
		Date:          models.Day(date),
		PaymentMethod: models.PaymentMethodCash,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

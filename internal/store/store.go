// Package store implements the durable record store for users,
// categories and expenses. It is the single source of truth for the
// account directory and the expense ledger, constructed once by the
// composition root and shared by reference.
//
// Failure policy: reads degrade to empty results and are logged, so a
// damaged database never takes down the session; writes report a
// storage error once and are not retried. Each operation is a single
// SQL statement or transaction, so there is no whole-collection
// read-modify-write window to race on.
package store

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// Store provides access to the three record collections.
type Store struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// New creates a Store on top of an opened database.
func New(db *gorm.DB) *Store {
	return &Store{db: db, log: logger.Named("store")}
}

// Initialize seeds the default categories if the category table is
// empty. It is idempotent and safe to call on every startup.
func (s *Store) Initialize() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, len(models.DefaultCategories))
	copy(categories, models.DefaultCategories)
	if err := s.db.Create(&categories).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	s.log.Infow("seeded default categories", "count", len(models.DefaultCategories))
	return nil
}

// SaveUser upserts a user by username: an existing record with the same
// username is replaced, otherwise a new one is inserted.
func (s *Store) SaveUser(user *models.User) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		UpdateAll: true,
	}).Create(user).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// GetUser returns the user with the given username, or ErrUserNotFound.
// A failed read is logged and reported as not found, so a damaged store
// behaves like an empty one.
func (s *Store) GetUser(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Errorw("failed to load user", "username", username, "error", err)
		}
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// UserExists reports whether a user with the given username exists.
func (s *Store) UserExists(username string) bool {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		s.log.Errorw("failed to count users", "username", username, "error", err)
		return false
	}
	return count > 0
}

// SaveExpense appends a new expense. It does not upsert; callers are
// responsible for assigning an ID that is unique within the owning
// user's expenses before calling.
func (s *Store) SaveExpense(expense *models.Expense) error {
	if err := s.db.Create(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// UpdateExpense persists new field values for an existing expense,
// located by its (username, id) pair. Returns ErrExpenseNotFound when
// no such expense exists.
func (s *Store) UpdateExpense(expense *models.Expense) error {
	res := s.db.Model(&models.Expense{}).
		Where("id = ? AND username = ?", expense.ID, expense.Username).
		Updates(map[string]interface{}{
			"title":          expense.Title,
			"description":    expense.Description,
			"amount":         expense.Amount,
			"category_id":    expense.CategoryID,
			"date":           expense.Date,
			"payment_method": expense.PaymentMethod,
			"is_recurring":   expense.IsRecurring,
		})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// GetUserExpenses returns all expenses for the given user in insertion
// order. A failed read degrades to an empty slice.
func (s *Store) GetUserExpenses(username string) []models.Expense {
	var expenses []models.Expense
	if err := s.db.Where("username = ?", username).Order("created_at, id").Find(&expenses).Error; err != nil {
		s.log.Errorw("failed to load expenses", "username", username, "error", err)
		return nil
	}
	return expenses
}

// GetUserExpensesPage returns one page of the user's expenses, newest
// date first with ID descending as the tie-break.
func (s *Store) GetUserExpensesPage(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("username = ?", username)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense removes the expense matching both id and username and
// reports whether a removal occurred.
func (s *Store) DeleteExpense(id int, username string) (bool, error) {
	res := s.db.Where("id = ? AND username = ?", id, username).Delete(&models.Expense{})
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetAllCategories returns every category ordered by ID. A failed read
// degrades to an empty slice.
func (s *Store) GetAllCategories() []models.Category {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		s.log.Errorw("failed to load categories", "error", err)
		return nil
	}
	return categories
}

// GetCategoryByID returns the category with the given ID, or
// ErrCategoryNotFound.
func (s *Store) GetCategoryByID(id int) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Errorw("failed to load category", "id", id, "error", err)
		}
		return nil, apperrors.ErrCategoryNotFound
	}
	return &category, nil
}

// SaveCategory upserts a category by ID. Used to persist budget limit
// changes; expenses referencing the category are not touched.
func (s *Store) SaveCategory(category *models.Category) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(category).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

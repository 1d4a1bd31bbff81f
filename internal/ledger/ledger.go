// Package ledger implements per-user expense CRUD and read-side
// aggregation. A Ledger is bound to exactly one username for its
// lifetime; it mirrors the session user but does not track sessions
// itself.
package ledger

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/store"
)

// Ledger owns expense operations for a single user.
type Ledger struct {
	store    *store.Store
	clock    Clock
	username string
	log      *zap.SugaredLogger
}

// NewLedger creates a Ledger for the given username. Pass SystemClock
// outside of tests.
func NewLedger(st *store.Store, clock Clock, username string) *Ledger {
	return &Ledger{
		store:    st,
		clock:    clock,
		username: username,
		log:      logger.Named("ledger").With("username", username),
	}
}

// Username returns the user this ledger is bound to.
func (l *Ledger) Username() string {
	return l.username
}

// AddExpense records a new expense and reports whether it was created.
// It fails when the category does not exist. The new ID is one greater
// than the user's current maximum ID (IDs are unique per user only).
// Amount is stored as given; positivity is enforced by callers before
// this boundary.
func (l *Ledger) AddExpense(title string, amount int64, categoryID int, date time.Time, description string) bool {
	if _, err := l.store.GetCategoryByID(categoryID); err != nil {
		return false
	}

	expense := &models.Expense{
		ID:            l.nextID(),
		Username:      l.username,
		Title:         title,
		Description:   description,
		Amount:        amount,
		CategoryID:    categoryID,
		Date:          models.Day(date),
		PaymentMethod: models.PaymentMethodCash,
	}

	if err := l.store.SaveExpense(expense); err != nil {
		l.log.Errorw("failed to save expense", "title", title, "error", err)
		return false
	}
	return true
}

// UpdateExpense replaces the mutable fields of the expense with the
// given ID and persists the result. The payment method and recurring
// flag are left untouched. Returns false when the expense or the new
// category does not exist, or the write fails.
func (l *Ledger) UpdateExpense(id int, title string, amount int64, categoryID int, date time.Time, description string) bool {
	existing := l.findExpense(id)
	if existing == nil {
		return false
	}
	if _, err := l.store.GetCategoryByID(categoryID); err != nil {
		return false
	}

	existing.Title = title
	existing.Description = description
	existing.Amount = amount
	existing.CategoryID = categoryID
	existing.Date = models.Day(date)

	if err := l.store.UpdateExpense(existing); err != nil {
		l.log.Errorw("failed to update expense", "id", id, "error", err)
		return false
	}
	return true
}

// SetPaymentMethod records how the expense with the given ID was paid.
// Returns false for an unknown method or expense.
func (l *Ledger) SetPaymentMethod(id int, method models.PaymentMethod) bool {
	if !method.IsValid() {
		return false
	}
	existing := l.findExpense(id)
	if existing == nil {
		return false
	}

	existing.PaymentMethod = method
	if err := l.store.UpdateExpense(existing); err != nil {
		l.log.Errorw("failed to set payment method", "id", id, "error", err)
		return false
	}
	return true
}

// DeleteExpense removes the expense with the given ID and reports
// whether a removal occurred.
func (l *Ledger) DeleteExpense(id int) bool {
	removed, err := l.store.DeleteExpense(id, l.username)
	if err != nil {
		l.log.Errorw("failed to delete expense", "id", id, "error", err)
		return false
	}
	return removed
}

// Expenses returns all of the user's expenses in storage order.
func (l *Ledger) Expenses() []models.Expense {
	return l.store.GetUserExpenses(l.username)
}

// ExpensesPage returns one page of the user's expenses, newest first.
func (l *Ledger) ExpensesPage(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	return l.store.GetUserExpensesPage(l.username, page)
}

// ExpensesByCategory returns the user's expenses in the given category.
func (l *Ledger) ExpensesByCategory(categoryID int) []models.Expense {
	var out []models.Expense
	for _, e := range l.Expenses() {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}

// ExpensesByMonth returns the user's expenses dated within the given
// calendar year and month.
func (l *Ledger) ExpensesByMonth(year int, month time.Month) []models.Expense {
	var out []models.Expense
	for _, e := range l.Expenses() {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// TotalExpenses returns the sum in cents over all of the user's
// expenses.
func (l *Ledger) TotalExpenses() int64 {
	var total int64
	for _, e := range l.Expenses() {
		total += e.Amount
	}
	return total
}

// MonthlyTotal returns the sum in cents over the given calendar month.
func (l *Ledger) MonthlyTotal(year int, month time.Month) int64 {
	var total int64
	for _, e := range l.ExpensesByMonth(year, month) {
		total += e.Amount
	}
	return total
}

// CategoryWiseExpenses groups the user's expenses by their resolved
// category and sums the amounts per group. Categories with no expenses
// are absent from the result, as are expenses whose category no longer
// exists.
func (l *Ledger) CategoryWiseExpenses() map[models.Category]int64 {
	byID := make(map[int]models.Category)
	for _, c := range l.store.GetAllCategories() {
		byID[c.ID] = c
	}

	totals := make(map[models.Category]int64)
	for _, e := range l.Expenses() {
		category, ok := byID[e.CategoryID]
		if !ok {
			continue
		}
		totals[category] += e.Amount
	}
	return totals
}

// DailyTotal is the summed spend for one calendar date.
type DailyTotal struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int64  `json:"total"`
}

// DailyExpenses groups the given month's expenses by calendar date,
// ascending. Every distinct date with at least one expense appears
// exactly once.
func (l *Ledger) DailyExpenses(year int, month time.Month) []DailyTotal {
	totals := make(map[string]int64)
	for _, e := range l.ExpensesByMonth(year, month) {
		totals[e.DateKey()] += e.Amount
	}

	out := make([]DailyTotal, 0, len(totals))
	for date, total := range totals {
		out = append(out, DailyTotal{Date: date, Total: total})
	}
	// ISO date strings sort lexicographically in chronological order.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// RecentExpenses returns at most limit expenses sorted by date
// descending, ties broken by ID descending.
func (l *Ledger) RecentExpenses(limit int) []models.Expense {
	expenses := l.Expenses()
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].ID > expenses[j].ID
	})
	if limit >= 0 && len(expenses) > limit {
		expenses = expenses[:limit]
	}
	return expenses
}

// AllCategories returns every category.
func (l *Ledger) AllCategories() []models.Category {
	return l.store.GetAllCategories()
}

// SetCategoryBudget persists a new budget limit in cents for the given
// category. Categories are shared across all users.
func (l *Ledger) SetCategoryBudget(categoryID int, limit int64) bool {
	category, err := l.store.GetCategoryByID(categoryID)
	if err != nil {
		return false
	}

	category.BudgetLimit = limit
	if err := l.store.SaveCategory(category); err != nil {
		l.log.Errorw("failed to save category budget", "category_id", categoryID, "error", err)
		return false
	}
	return true
}

// BudgetUtilization returns the current calendar month's spend as a
// percentage of the given monthly budget in cents, or 0 for a
// non-positive budget. "Current month" comes from the injected clock.
func (l *Ledger) BudgetUtilization(monthlyBudget int64) float64 {
	if monthlyBudget <= 0 {
		return 0
	}

	now := l.clock.Now()
	currentMonthTotal := l.MonthlyTotal(now.Year(), now.Month())
	return float64(currentMonthTotal) / float64(monthlyBudget) * 100
}

// nextID computes the next expense ID for this user: one greater than
// the current maximum, starting at 1 for a user with no expenses.
// Deleting the highest-numbered expense frees its ID for reuse.
func (l *Ledger) nextID() int {
	maxID := 0
	for _, e := range l.Expenses() {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// findExpense returns a copy of the user's expense with the given ID,
// or nil.
func (l *Ledger) findExpense(id int) *models.Expense {
	for _, e := range l.Expenses() {
		if e.ID == id {
			return &e
		}
	}
	return nil
}

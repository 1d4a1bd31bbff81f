package models

import "time"

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// IsValid reports whether the payment method is one of the known values.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}

// Expense represents a single dated expense. The primary key is the
// pair (username, id): IDs are unique per user, not globally, so any
// external identifier must carry the username alongside the ID.
// Amount is in cents. Date is a calendar date with no time component.
// CategoryID is checked at creation time only; the referenced category
// may later be deleted, and readers must tolerate a failed lookup.
type Expense struct {
	ID            int           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username      string        `gorm:"primaryKey;size:20" json:"username"`
	Title         string        `gorm:"not null" json:"title"`
	Description   string        `json:"description,omitempty"`
	Amount        int64         `gorm:"not null" json:"amount"`
	CategoryID    int           `gorm:"not null" json:"category_id"`
	Date          time.Time     `gorm:"not null" json:"date"`
	PaymentMethod PaymentMethod `gorm:"not null;default:CASH" json:"payment_method"`
	IsRecurring   bool          `gorm:"not null;default:false" json:"is_recurring"`
	CreatedAt     time.Time     `json:"created_at"`
}

// DateKey returns the expense date formatted as YYYY-MM-DD. Lexicographic
// order on these keys equals chronological order.
func (e *Expense) DateKey() string {
	return e.Date.Format(time.DateOnly)
}

// Day normalizes t to midnight UTC so two expenses on the same calendar
// date always compare equal regardless of the wall-clock time supplied.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord is a single order joined to its client, as read for a window.
type OrderRecord struct {
	OrderId   int             `db:"order_id"`
	ClientId  int             `db:"client_id"`
	OrderDate time.Time       `db:"order_date"`
	Amount    decimal.Decimal `db:"amount"`
}

// ClientOrderSummary aggregates one client's orders within a window.
// PreviousOrderDate is the latest order before the window, zero if none.
type ClientOrderSummary struct {
	ClientId          int
	OrderCount        int
	TotalSpent        decimal.Decimal
	FirstOrderDate    time.Time
	LastOrderDate     time.Time
	PreviousOrderDate time.Time
}

// HasHistory reports whether the client ordered before the window.
func (s ClientOrderSummary) HasHistory() bool {
	return !s.PreviousOrderDate.IsZero()
}

// ClientIdentity represents the client table.
type ClientIdentity struct {
	Id       int            `db:"id"`
	TenantId int            `db:"tenant_id"`
	Name     string         `db:"name"`
	Phone    sql.NullString `db:"phone"`
	Email    sql.NullString `db:"email"`
}

// ClientCategorized is a classified client, used for member listings.
type ClientCategorized struct {
	Summary  ClientOrderSummary
	Behavior BehaviorCategory
	Spending SpendingCategory
	Identity *ClientIdentity
}

// ClientInsert is a new client row.
type ClientInsert struct {
	TenantId int            `db:"tenant_id"`
	Name     string         `db:"name"`
	Phone    sql.NullString `db:"phone"`
	Email    sql.NullString `db:"email"`
}

// OrderInsert is a new order row.
type OrderInsert struct {
	UUID     string          `db:"uuid"`
	TenantId int             `db:"tenant_id"`
	ClientId int             `db:"client_id"`
	Placed   time.Time       `db:"placed"`
	Amount   decimal.Decimal `db:"amount"`
}

// MemberFilter selects classified clients; an empty field matches any category.
type MemberFilter struct {
	Behavior BehaviorCategory
	Spending SpendingCategory
}

// Matches reports whether a client with the given categories passes the filter.
func (f MemberFilter) Matches(b BehaviorCategory, s SpendingCategory) bool {
	if f.Behavior != "" && f.Behavior != b {
		return false
	}
	if f.Spending != "" && f.Spending != s {
		return false
	}
	return true
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single product on an aisle shelf. Quantity only ever goes down
// at runtime; restocking is a load-time concern.
type Item struct {
	Name         string
	Quantity     int
	Wholesale    decimal.Decimal
	RegularPrice decimal.Decimal
	MemberPrice  decimal.Decimal
}

// Aisle groups items under a display name. Items are appended at load time
// and never reordered or removed afterwards.
type Aisle struct {
	Name  string
	Items []Item
}

type Employee struct {
	ID     string
	Name   string
	Salary decimal.Decimal
}

// Member grants member pricing by exact name match. Matching is
// case-sensitive on purpose; there is no customer ID scheme.
type Member struct {
	ID       string
	Name     string
	JoinedAt time.Time
}

// Store is the single mutable aggregate for a session. It is populated once
// by the loader; only item quantities, funds, the member roster and the
// purchase log change at runtime. Access is strictly sequential.
type Store struct {
	Name          string
	Hours         string
	MembershipFee decimal.Decimal
	TotalFunds    decimal.Decimal
	Aisles        []Aisle
	Employees     []Employee
	Members       []Member
	Purchases     []CustomerPurchase
}

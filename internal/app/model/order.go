package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderSnapshot is an immutable copy of the cart taken at confirmation
// time. It exists only to build the handoff message; it is dropped from
// memory once consumed.
type OrderSnapshot struct {
	OrderID string          `json:"order_id"`
	Lines   []CartLine      `json:"lines"`
	Total   decimal.Decimal `json:"total"`
}

// NewOrderID generates a time-based order identifier, e.g. ORD-1717171717171.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

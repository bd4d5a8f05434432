package model

import "github.com/shopspring/decimal"

// CartLine is one orderable entry: a catalog item, or a committed custom
// composition. ID is the catalog item id for standard lines and a freshly
// generated token for custom lines, so two custom compositions never merge
// while two additions of the same catalog item always do.
type CartLine struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Notes       string          `json:"notes"`
	IsCustom    bool            `json:"is_custom"`
	Description string          `json:"description,omitempty"`
}

// CopyLines returns a deep copy of a cart line slice. CartLine holds only
// value fields, so a slice copy is enough.
func CopyLines(lines []CartLine) []CartLine {
	if len(lines) == 0 {
		return []CartLine{}
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

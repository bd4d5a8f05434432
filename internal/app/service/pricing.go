package service

import (
	"github.com/shopspring/decimal"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
)

// Pure price aggregation. All arithmetic stays in decimal form; rendering
// to 2 places happens only at the display/formatting edge.

// SelectionTotal sums the prices of every selected item across all steps.
func SelectionTotal(snapshot SelectionSnapshot) decimal.Decimal {
	total := decimal.Zero
	for _, step := range snapshot.Steps {
		for _, item := range step.Items {
			total = total.Add(item.Price)
		}
	}
	return total
}

// SelectionDescription lists the selected item names in step-declaration
// order; Multi steps contribute their items in the order they were added.
func SelectionDescription(snapshot SelectionSnapshot) []string {
	names := []string{}
	for _, step := range snapshot.Steps {
		for _, item := range step.Items {
			names = append(names, item.Name)
		}
	}
	return names
}

// LineTotal is price × quantity for one cart line.
func LineTotal(line model.CartLine) decimal.Decimal {
	return line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// GrandTotal sums LineTotal over all lines.
func GrandTotal(lines []model.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line))
	}
	return total
}

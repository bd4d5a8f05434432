package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func builderTestSteps() []model.BuilderStep {
	return []model.BuilderStep{
		{
			ID:          "base",
			Label:       "Elige tu base",
			Cardinality: model.CardinalitySingle,
			Required:    true,
			Options: []model.CatalogItem{
				{ID: "b1", Name: "Arroz de Sushi", Price: money("50.00")},
				{ID: "b2", Name: "Arroz Integral", Price: money("50.50")},
			},
		},
		{
			ID:          "topping",
			Label:       "Elige tus toppings",
			Cardinality: model.CardinalityMulti,
			Options: []model.CatalogItem{
				{ID: "t1", Name: "Sésamo Tostado", Price: money("10.00")},
				{ID: "t2", Name: "Queso Crema", Price: money("10.50")},
			},
		},
	}
}

func setupSelectionTest() SelectionManager {
	m := NewSelectionManager()
	m.Configure(builderTestSteps())
	return m
}

func TestSelectionManager_ToggleSingle(t *testing.T) {
	m := setupSelectionTest()

	assert.True(t, m.Toggle("base", "Arroz de Sushi"))
	snapshot := m.Snapshot()
	require.Len(t, snapshot.Steps[0].Items, 1)
	assert.Equal(t, "Arroz de Sushi", snapshot.Steps[0].Items[0].Name)

	// Another option replaces the current one
	assert.True(t, m.Toggle("base", "Arroz Integral"))
	snapshot = m.Snapshot()
	require.Len(t, snapshot.Steps[0].Items, 1)
	assert.Equal(t, "Arroz Integral", snapshot.Steps[0].Items[0].Name)

	// Re-selecting the current option clears the step
	assert.True(t, m.Toggle("base", "Arroz Integral"))
	snapshot = m.Snapshot()
	assert.Empty(t, snapshot.Steps[0].Items)
}

func TestSelectionManager_ToggleMulti(t *testing.T) {
	m := setupSelectionTest()

	assert.True(t, m.Toggle("topping", "Sésamo Tostado"))
	assert.True(t, m.Toggle("topping", "Queso Crema"))
	snapshot := m.Snapshot()
	require.Len(t, snapshot.Steps[1].Items, 2)
	assert.Equal(t, "Sésamo Tostado", snapshot.Steps[1].Items[0].Name)
	assert.Equal(t, "Queso Crema", snapshot.Steps[1].Items[1].Name)

	// Re-toggling removes only that item
	assert.True(t, m.Toggle("topping", "Sésamo Tostado"))
	snapshot = m.Snapshot()
	require.Len(t, snapshot.Steps[1].Items, 1)
	assert.Equal(t, "Queso Crema", snapshot.Steps[1].Items[0].Name)
}

func TestSelectionManager_ToggleUnknown(t *testing.T) {
	m := setupSelectionTest()

	assert.False(t, m.Toggle("sauce", "Anguila"))
	assert.False(t, m.Toggle("base", "Quinoa"))

	// Nothing changed
	snapshot := m.Snapshot()
	assert.Empty(t, snapshot.Steps[0].Items)
	assert.Empty(t, snapshot.Steps[1].Items)
}

func TestSelectionManager_IsComplete(t *testing.T) {
	m := setupSelectionTest()

	// Required base step is empty
	assert.False(t, m.IsComplete())

	m.Toggle("base", "Arroz de Sushi")
	assert.True(t, m.IsComplete())

	// Optional topping step never blocks completion
	m.Toggle("topping", "Queso Crema")
	assert.True(t, m.IsComplete())

	m.Toggle("base", "Arroz de Sushi") // clears the base
	assert.False(t, m.IsComplete())
}

func TestSelectionManager_IsComplete_NoSteps(t *testing.T) {
	m := NewSelectionManager()
	assert.False(t, m.IsComplete())

	m.Configure(nil)
	assert.False(t, m.IsComplete())
}

func TestSelectionManager_Reset(t *testing.T) {
	m := setupSelectionTest()
	m.Toggle("base", "Arroz de Sushi")
	m.Toggle("topping", "Queso Crema")

	m.Reset()

	snapshot := m.Snapshot()
	assert.Empty(t, snapshot.Steps[0].Items)
	assert.Empty(t, snapshot.Steps[1].Items)
	assert.False(t, m.IsComplete())
}

func TestSelectionManager_ConfigureDiscardsSelections(t *testing.T) {
	m := setupSelectionTest()
	m.Toggle("base", "Arroz de Sushi")

	m.Configure(builderTestSteps())

	snapshot := m.Snapshot()
	assert.Empty(t, snapshot.Steps[0].Items)
}

func TestSelectionManager_RunningTotalAndDescription(t *testing.T) {
	m := setupSelectionTest()

	m.Toggle("base", "Arroz de Sushi")
	m.Toggle("topping", "Sésamo Tostado")
	m.Toggle("topping", "Queso Crema")

	snapshot := m.Snapshot()
	assert.Equal(t, "70.50", SelectionTotal(snapshot).StringFixed(2))
	assert.Equal(t,
		[]string{"Arroz de Sushi", "Sésamo Tostado", "Queso Crema"},
		SelectionDescription(snapshot))

	// Removing one topping drops exactly its contribution
	m.Toggle("topping", "Sésamo Tostado")
	snapshot = m.Snapshot()
	assert.Equal(t, "60.50", SelectionTotal(snapshot).StringFixed(2))
	assert.Equal(t,
		[]string{"Arroz de Sushi", "Queso Crema"},
		SelectionDescription(snapshot))
}

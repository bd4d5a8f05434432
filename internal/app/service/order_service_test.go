package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
	"github.com/kaizensushi/storefront-backend/internal/app/repository"
	"github.com/kaizensushi/storefront-backend/pkg/whatsapp"
)

func setupOrderServiceTest(t *testing.T, phone string) (OrderService, CartService, SelectionManager) {
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)

	catalog := &stubCatalog{
		catalog: testCatalog(),
		name:    "KAIZEN Sushi",
		phone:   phone,
	}
	selection := NewSelectionManager()
	selection.Configure(catalog.Steps())
	cartService := NewCartService(repository.NewCartRepository(store), catalog, selection, &recordingNotifier{})
	orderService := NewOrderService(cartService, catalog)
	return orderService, cartService, selection
}

func TestOrderService_Place_EmptyCart(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t, "+52 667 202 6789")

	_, err := orderService.Place()
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, ok := orderService.Pending()
	assert.False(t, ok)
}

func TestOrderService_Place_Success(t *testing.T) {
	orderService, cartService, _ := setupOrderServiceTest(t, "+52 667 202 6789")
	cartService.AddCatalogItem("roll-cal")

	snapshot, err := orderService.Place()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(snapshot.OrderID, "ORD-"))
	assert.Len(t, snapshot.Lines, 1)

	pending, ok := orderService.Pending()
	assert.True(t, ok)
	assert.Equal(t, snapshot.OrderID, pending.OrderID)
}

func TestOrderService_Format(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t, "+52 667 202 6789")

	snapshot := model.OrderSnapshot{
		OrderID: "ORD-1717171717171",
		Lines: []model.CartLine{
			{ID: "roll-cal", Name: "Rollo California", Price: money("12.00"), Quantity: 3, Notes: "sin cebolla"},
			{
				ID:          "custom-1",
				Name:        "Tu rollo personalizado",
				Price:       money("70.50"),
				Quantity:    1,
				IsCustom:    true,
				Description: "Arroz de Sushi + Queso Crema",
			},
		},
		Total: money("106.50"),
	}

	expected := strings.Join([]string{
		"KAIZEN Sushi - Pedido ORD-1717171717171",
		"",
		"3 x Rollo California — $36.00 ( $12.00 c/u )",
		"    • NOTA: sin cebolla",
		"1 x Tu rollo personalizado — $70.50 ( $70.50 c/u )",
		"    • Arroz de Sushi + Queso Crema",
		"",
		"Total: $106.50",
		"",
		"Por favor confirmar. Gracias!",
	}, "\n")

	assert.Equal(t, expected, orderService.Format(snapshot))
}

func TestOrderService_Format_Empty(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t, "")

	message := orderService.Format(model.OrderSnapshot{OrderID: "ORD-1"})
	assert.Equal(t, "KAIZEN Sushi - Pedido vacío", message)
}

func TestOrderService_Complete_Success(t *testing.T) {
	orderService, cartService, _ := setupOrderServiceTest(t, "+52 (667) 202-6789")
	cartService.AddCatalogItem("roll-cal")
	_, err := orderService.Place()
	require.NoError(t, err)

	link, err := orderService.Complete()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/526672026789?text="))
	assert.Contains(t, link, "Rollo+California")

	// Handoff consumed the snapshot and emptied the cart
	assert.Empty(t, cartService.Lines())
	_, ok := orderService.Pending()
	assert.False(t, ok)

	_, err = orderService.Complete()
	assert.ErrorIs(t, err, ErrNoPendingOrder)
}

func TestOrderService_Complete_PhoneNotConfigured(t *testing.T) {
	orderService, cartService, _ := setupOrderServiceTest(t, "")
	cartService.AddCatalogItem("roll-cal")
	_, err := orderService.Place()
	require.NoError(t, err)

	_, err = orderService.Complete()
	assert.ErrorIs(t, err, whatsapp.ErrPhoneNotConfigured)

	// Nothing was consumed: the order can complete once a number exists
	assert.Len(t, cartService.Lines(), 1)
	_, ok := orderService.Pending()
	assert.True(t, ok)
}

func TestOrderService_Dismiss(t *testing.T) {
	orderService, cartService, _ := setupOrderServiceTest(t, "+52 667 202 6789")
	cartService.AddCatalogItem("roll-cal")
	_, err := orderService.Place()
	require.NoError(t, err)

	assert.True(t, orderService.Dismiss())
	assert.False(t, orderService.Dismiss())

	// Dismissing keeps the cart
	assert.Len(t, cartService.Lines(), 1)
}

func TestOrderService_PreviewMessage(t *testing.T) {
	orderService, cartService, _ := setupOrderServiceTest(t, "+52 667 202 6789")

	_, err := orderService.PreviewMessage()
	assert.ErrorIs(t, err, ErrNoPendingOrder)

	cartService.AddCatalogItem("roll-cal")
	_, err = orderService.Place()
	require.NoError(t, err)

	message, err := orderService.PreviewMessage()
	require.NoError(t, err)
	assert.Contains(t, message, "1 x Rollo California — $110.00 ( $110.00 c/u )")
	assert.Contains(t, message, "Total: $110.00")

	// Preview does not consume the pending order
	_, ok := orderService.Pending()
	assert.True(t, ok)
}

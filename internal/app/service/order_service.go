package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
	"github.com/kaizensushi/storefront-backend/pkg/whatsapp"
)

var (
	ErrEmptyCart      = errors.New("cannot place an order on an empty cart")
	ErrNoPendingOrder = errors.New("no order is pending")
)

// OrderService turns a cart snapshot into the WhatsApp handoff. Placing an
// order holds an immutable snapshot; completing it builds the deep link and
// clears the cart; dismissing it leaves the cart intact. The snapshot is
// dropped from memory either way.
type OrderService interface {
	Place() (model.OrderSnapshot, error)
	Pending() (model.OrderSnapshot, bool)
	// PreviewMessage formats the pending order without consuming it.
	PreviewMessage() (string, error)
	// Complete returns the handoff URL and clears the cart. The cart is
	// only cleared when the link could actually be built.
	Complete() (string, error)
	Dismiss() bool
	Format(snapshot model.OrderSnapshot) string
}

type orderService struct {
	cart    CartService
	catalog CatalogService

	mu      sync.Mutex
	pending *model.OrderSnapshot
}

func NewOrderService(cart CartService, catalog CatalogService) OrderService {
	return &orderService{
		cart:    cart,
		catalog: catalog,
	}
}

func (s *orderService) Place() (model.OrderSnapshot, error) {
	snapshot := s.cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		logger.Warn("Order placement on empty cart", nil)
		return model.OrderSnapshot{}, ErrEmptyCart
	}

	s.mu.Lock()
	s.pending = &snapshot
	s.mu.Unlock()

	logger.Info("Order placed", map[string]interface{}{
		"order_id": snapshot.OrderID,
		"lines":    len(snapshot.Lines),
		"total":    snapshot.Total.StringFixed(2),
	})
	return snapshot, nil
}

func (s *orderService) Pending() (model.OrderSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return model.OrderSnapshot{}, false
	}
	return *s.pending, true
}

func (s *orderService) PreviewMessage() (string, error) {
	snapshot, ok := s.Pending()
	if !ok {
		return "", ErrNoPendingOrder
	}
	return s.Format(snapshot), nil
}

func (s *orderService) Complete() (string, error) {
	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()

	if pending == nil {
		return "", ErrNoPendingOrder
	}

	link, err := whatsapp.Link(s.catalog.RestaurantPhone(), s.Format(*pending))
	if err != nil {
		logger.Warn("Order handoff blocked", map[string]interface{}{
			"order_id": pending.OrderID,
			"error":    err.Error(),
		})
		return "", err
	}

	// Handoff succeeded: the cart is done and the snapshot is consumed.
	s.cart.Clear()
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	logger.Info("Order handed off", map[string]interface{}{
		"order_id": pending.OrderID,
	})
	return link, nil
}

func (s *orderService) Dismiss() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return false
	}
	logger.Info("Pending order dismissed", map[string]interface{}{
		"order_id": s.pending.OrderID,
	})
	s.pending = nil
	return true
}

// Format renders the plain-text handoff message. Line layout:
//
//	{business} - Pedido {orderId}
//
//	{qty} x {name} — ${lineTotal} ( ${unitPrice} c/u )
//	    • {description}    (custom lines only)
//	    • NOTA: {notes}    (when notes are present)
//
//	Total: ${grandTotal}
//
//	Por favor confirmar. Gracias!
func (s *orderService) Format(snapshot model.OrderSnapshot) string {
	business := s.catalog.RestaurantName()
	if len(snapshot.Lines) == 0 {
		return business + " - Pedido vacío"
	}

	lines := []string{
		fmt.Sprintf("%s - Pedido %s", business, snapshot.OrderID),
		"",
	}

	for _, item := range snapshot.Lines {
		l := fmt.Sprintf("%d x %s — $%s ( $%s c/u )",
			item.Quantity, item.Name,
			LineTotal(item).StringFixed(2), item.Price.StringFixed(2))
		if item.IsCustom && item.Description != "" {
			l += "\n    • " + item.Description
		}
		if item.Notes != "" {
			l += "\n    • NOTA: " + item.Notes
		}
		lines = append(lines, l)
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Total: $%s", snapshot.Total.StringFixed(2)),
		"",
		"Por favor confirmar. Gracias!",
	)
	return strings.Join(lines, "\n")
}

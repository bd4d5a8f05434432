package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaizensushi/storefront-backend/internal/app/service"
	apperrors "github.com/kaizensushi/storefront-backend/internal/errors"
	"github.com/kaizensushi/storefront-backend/internal/middleware"
	"github.com/kaizensushi/storefront-backend/pkg/whatsapp"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// PlaceOrder snapshots the cart as the pending order.
// POST /api/v1/order
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	snapshot, err := ctrl.orderService.Place()
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			log.Warn("Order rejected: empty cart", nil)
			apperrors.Conflict(c, apperrors.OrderEmptyCart, "Tu carrito está vacío")
			return
		}
		log.Error("Failed to place order", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":   snapshot,
		"message": ctrl.orderService.Format(snapshot),
	})
}

// GetPending returns the pending order and its formatted message.
// GET /api/v1/order/pending
func (ctrl *OrderController) GetPending(c *gin.Context) {
	snapshot, ok := ctrl.orderService.Pending()
	if !ok {
		apperrors.NotFound(c, apperrors.OrderNotPending, "No hay ningún pedido en curso")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":   snapshot,
		"message": ctrl.orderService.Format(snapshot),
	})
}

// CompleteOrder builds the WhatsApp handoff link and clears the cart.
// POST /api/v1/order/complete
func (ctrl *OrderController) CompleteOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	link, err := ctrl.orderService.Complete()
	if err != nil {
		if errors.Is(err, service.ErrNoPendingOrder) {
			apperrors.NotFound(c, apperrors.OrderNotPending, "No hay ningún pedido en curso")
			return
		}
		if errors.Is(err, whatsapp.ErrPhoneNotConfigured) {
			log.Warn("Order handoff blocked: no destination phone", nil)
			apperrors.Conflict(c, apperrors.OrderPhoneNotConfigured, "Número de restaurante no configurado")
			return
		}
		log.Error("Failed to complete order", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"whatsapp_url": link,
	})
}

// DismissOrder drops the pending order, leaving the cart intact.
// POST /api/v1/order/dismiss
func (ctrl *OrderController) DismissOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dismissed": ctrl.orderService.Dismiss(),
	})
}

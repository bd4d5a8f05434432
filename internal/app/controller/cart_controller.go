package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
	"github.com/kaizensushi/storefront-backend/internal/app/service"
	apperrors "github.com/kaizensushi/storefront-backend/internal/errors"
	"github.com/kaizensushi/storefront-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

func cartSummary(lines []model.CartLine, clearPending bool) gin.H {
	itemCount := 0
	for _, line := range lines {
		itemCount += line.Quantity
	}
	return gin.H{
		"lines":         lines,
		"line_count":    len(lines),
		"item_count":    itemCount,
		"total":         service.GrandTotal(lines).StringFixed(2),
		"clear_pending": clearPending,
	}
}

// GetCart returns the cart lines and the grand total.
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartSummary(ctrl.cartService.Lines(), ctrl.cartService.ClearPending()))
}

// AddItem adds one catalog item, merging with an existing line of the
// same id.
// POST /api/v1/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add item request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Datos de solicitud inválidos")
		return
	}

	line, err := ctrl.cartService.AddCatalogItem(req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			log.Warn("Item not found for cart", map[string]interface{}{
				"item_id": req.ItemID,
			})
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Artículo no encontrado en el menú")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"item_id": req.ItemID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "¡Añadido al pedido!",
		"line":    line,
	})
}

// AddCustom commits the current builder selection as a new custom line.
// POST /api/v1/cart/custom
func (ctrl *CartController) AddCustom(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	line, err := ctrl.cartService.AddCustom()
	if err != nil {
		if errors.Is(err, service.ErrSelectionIncomplete) {
			log.Warn("Custom composition rejected: incomplete selection", nil)
			apperrors.BadRequest(c, apperrors.BuilderIncomplete, "Completa los pasos obligatorios del taller")
			return
		}
		log.Error("Failed to add custom composition", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "¡Rollo creado y añadido!",
		"line":    line,
	})
}

// AdjustQuantity applies a +1/-1 delta; -1 at quantity 1 removes the line.
// PUT /api/v1/cart/items/:id/quantity
func (ctrl *CartController) AdjustQuantity(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid quantity request", map[string]interface{}{
			"line_id": c.Param("id"),
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Datos de solicitud inválidos")
		return
	}

	if err := ctrl.cartService.AdjustQuantity(c.Param("id"), req.Delta); err != nil {
		if errors.Is(err, service.ErrInvalidDelta) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "El ajuste de cantidad debe ser +1 o -1")
			return
		}
		log.Error("Failed to adjust quantity", err, map[string]interface{}{
			"line_id": c.Param("id"),
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, cartSummary(ctrl.cartService.Lines(), ctrl.cartService.ClearPending()))
}

// RemoveLine removes a line unconditionally; an unknown id changes nothing.
// DELETE /api/v1/cart/items/:id
func (ctrl *CartController) RemoveLine(c *gin.Context) {
	ctrl.cartService.RemoveLine(c.Param("id"))
	c.JSON(http.StatusOK, cartSummary(ctrl.cartService.Lines(), ctrl.cartService.ClearPending()))
}

// UpdateNotes overwrites the free-text notes of one line.
// PUT /api/v1/cart/items/:id/notes
func (ctrl *CartController) UpdateNotes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid notes request", map[string]interface{}{
			"line_id": c.Param("id"),
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Datos de solicitud inválidos")
		return
	}

	ctrl.cartService.SetNotes(c.Param("id"), req.Notes)
	c.JSON(http.StatusOK, gin.H{
		"message": "Nota guardada",
	})
}

// RequestClear starts the two-step clear flow.
// POST /api/v1/cart/clear
func (ctrl *CartController) RequestClear(c *gin.Context) {
	ctrl.cartService.RequestClear()
	c.JSON(http.StatusOK, gin.H{
		"message":       "Confirma para vaciar el carrito",
		"clear_pending": true,
	})
}

// ConfirmClear executes a previously requested clear.
// POST /api/v1/cart/clear/confirm
func (ctrl *CartController) ConfirmClear(c *gin.Context) {
	cleared := ctrl.cartService.ConfirmClear()
	response := cartSummary(ctrl.cartService.Lines(), false)
	response["cleared"] = cleared
	c.JSON(http.StatusOK, response)
}

// CancelClear abandons the clear flow without mutating anything.
// POST /api/v1/cart/clear/cancel
func (ctrl *CartController) CancelClear(c *gin.Context) {
	ctrl.cartService.CancelClear()
	c.JSON(http.StatusOK, gin.H{
		"message":       "Operación cancelada",
		"clear_pending": false,
	})
}

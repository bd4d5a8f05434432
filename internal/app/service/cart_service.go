package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
	"github.com/kaizensushi/storefront-backend/internal/app/repository"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

var (
	ErrItemNotFound        = errors.New("catalog item not found")
	ErrSelectionIncomplete = errors.New("custom selection is incomplete")
	ErrInvalidDelta        = errors.New("quantity delta must be +1 or -1")
)

// Display name of a committed custom composition; its make-up goes in the
// line description.
const customLineName = "Tu rollo personalizado"

// CartService is the single mutation surface of the cart. Every mutation
// leaves the store consistent and persisted before returning; a failing
// storage write is logged, never surfaced.
type CartService interface {
	Lines() []model.CartLine
	// AddCatalogItem merges into an existing line of the same id or
	// appends a fresh one with quantity 1.
	AddCatalogItem(itemID string) (model.CartLine, error)
	// AddCustom commits the current builder selection as a new line.
	// Custom lines get a fresh unique id, so they never merge.
	AddCustom() (model.CartLine, error)
	// AdjustQuantity applies +1 or -1; -1 at quantity 1 removes the line.
	// Unknown line ids are a silent no-op.
	AdjustQuantity(lineID string, delta int) error
	RemoveLine(lineID string)
	// SetNotes persists immediately but deliberately emits no cart-changed
	// event: re-rendering would disrupt in-progress text entry.
	SetNotes(lineID, notes string)
	// Two-step clear: nothing is mutated until the explicit confirmation.
	RequestClear()
	ConfirmClear() bool
	CancelClear()
	ClearPending() bool
	// Clear empties the cart unconditionally. Used by the confirm flow and
	// after a successful order handoff.
	Clear()
	// Snapshot returns an immutable deep copy with a fresh order id and
	// the grand total. The cart itself is untouched.
	Snapshot() model.OrderSnapshot
}

type cartService struct {
	repo      repository.CartRepository
	catalog   CatalogService
	selection SelectionManager
	notifier  Notifier

	mu             sync.Mutex
	lines          []model.CartLine
	clearRequested bool
}

// NewCartService loads the persisted cart. A missing, corrupt, or
// unreadable entry starts an empty cart; the storefront must come up
// regardless.
func NewCartService(
	repo repository.CartRepository,
	catalog CatalogService,
	selection SelectionManager,
	notifier Notifier,
) CartService {
	lines, err := repo.Load()
	if err != nil {
		logger.Error("Failed to load persisted cart, starting empty", err)
		lines = []model.CartLine{}
	}
	logger.Info("Cart initialized", map[string]interface{}{
		"lines": len(lines),
	})
	return &cartService{
		repo:      repo,
		catalog:   catalog,
		selection: selection,
		notifier:  notifier,
		lines:     lines,
	}
}

func (s *cartService) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CopyLines(s.lines)
}

func (s *cartService) AddCatalogItem(itemID string) (model.CartLine, error) {
	item, ok := s.catalog.FindItem(itemID)
	if !ok {
		logger.Warn("Cannot add to cart: item not in catalog", map[string]interface{}{
			"item_id": itemID,
		})
		return model.CartLine{}, ErrItemNotFound
	}

	s.mu.Lock()
	var line model.CartLine
	merged := false
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			line = s.lines[i]
			merged = true
			break
		}
	}
	if !merged {
		line = model.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		}
		s.lines = append(s.lines, line)
	}
	s.persistLocked()
	count := len(s.lines)
	s.mu.Unlock()

	logger.Info("Catalog item added to cart", map[string]interface{}{
		"item_id":  item.ID,
		"merged":   merged,
		"quantity": line.Quantity,
	})
	s.notifier.Toast("¡Añadido al pedido!")
	s.notifier.CartChanged(count)
	return line, nil
}

func (s *cartService) AddCustom() (model.CartLine, error) {
	if !s.selection.IsComplete() {
		logger.Warn("Cannot add custom item: selection incomplete", nil)
		return model.CartLine{}, ErrSelectionIncomplete
	}

	snapshot := s.selection.Snapshot()
	line := model.CartLine{
		ID:          "custom-" + uuid.NewString(),
		Name:        customLineName,
		Price:       SelectionTotal(snapshot),
		Quantity:    1,
		IsCustom:    true,
		Description: strings.Join(SelectionDescription(snapshot), " + "),
	}

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.persistLocked()
	count := len(s.lines)
	s.mu.Unlock()

	// The builder starts fresh once its composition is in the cart.
	s.selection.Reset()

	logger.Info("Custom composition added to cart", map[string]interface{}{
		"line_id":     line.ID,
		"price":       line.Price.StringFixed(2),
		"description": line.Description,
	})
	s.notifier.Toast("¡Rollo creado y añadido!")
	s.notifier.CartChanged(count)
	return line, nil
}

func (s *cartService) AdjustQuantity(lineID string, delta int) error {
	if delta != 1 && delta != -1 {
		return ErrInvalidDelta
	}

	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].ID != lineID {
			continue
		}
		s.lines[i].Quantity += delta
		if s.lines[i].Quantity <= 0 {
			// Quantity never drops to 0 while the line exists.
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}
		changed = true
		break
	}
	if changed {
		s.persistLocked()
	}
	count := len(s.lines)
	s.mu.Unlock()

	if !changed {
		logger.Warn("Quantity adjustment on unknown cart line", map[string]interface{}{
			"line_id": lineID,
		})
		return nil
	}

	s.notifier.CartChanged(count)
	return nil
}

func (s *cartService) RemoveLine(lineID string) {
	s.mu.Lock()
	removed := false
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		s.persistLocked()
	}
	count := len(s.lines)
	s.mu.Unlock()

	if removed {
		logger.Info("Cart line removed", map[string]interface{}{
			"line_id": lineID,
		})
		s.notifier.CartChanged(count)
	}
}

func (s *cartService) SetNotes(lineID, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Notes = notes
			s.persistLocked()
			return
		}
	}
	logger.Warn("Notes update on unknown cart line", map[string]interface{}{
		"line_id": lineID,
	})
}

func (s *cartService) RequestClear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearRequested = true
}

func (s *cartService) ConfirmClear() bool {
	s.mu.Lock()
	if !s.clearRequested {
		s.mu.Unlock()
		return false
	}
	s.clearRequested = false
	s.lines = []model.CartLine{}
	s.persistLocked()
	s.mu.Unlock()

	logger.Info("Cart cleared by user confirmation", nil)
	s.notifier.CartChanged(0)
	return true
}

func (s *cartService) CancelClear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearRequested = false
}

func (s *cartService) ClearPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearRequested
}

func (s *cartService) Clear() {
	s.mu.Lock()
	s.clearRequested = false
	s.lines = []model.CartLine{}
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.CartChanged(0)
}

func (s *cartService) Snapshot() model.OrderSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.OrderSnapshot{
		OrderID: model.NewOrderID(time.Now()),
		Lines:   model.CopyLines(s.lines),
		Total:   GrandTotal(s.lines),
	}
}

// persistLocked writes the whole cart through the repository. Storage being
// unavailable must not fail the mutation; the in-memory state stays
// authoritative and the error is logged.
func (s *cartService) persistLocked() {
	if err := s.repo.Save(model.CopyLines(s.lines)); err != nil {
		logger.Error("Failed to persist cart", err, map[string]interface{}{
			"lines": len(s.lines),
		})
	}
}

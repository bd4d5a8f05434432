package repository

import (
	"encoding/json"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

type CartRepository interface {
	Load() ([]model.CartLine, error)
	Save(lines []model.CartLine) error
}

type cartRepository struct {
	store StateStore
}

func NewCartRepository(store StateStore) CartRepository {
	return &cartRepository{store: store}
}

// Load reads the persisted cart. An absent or corrupt entry degrades to an
// empty cart; only a failing store surfaces an error.
func (r *cartRepository) Load() ([]model.CartLine, error) {
	data, ok, err := r.store.Get(StateKeyCart)
	if err != nil {
		return []model.CartLine{}, err
	}
	if !ok {
		return []model.CartLine{}, nil
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.Warn("Stored cart is corrupt, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return []model.CartLine{}, nil
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	return lines, nil
}

func (r *cartRepository) Save(lines []model.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.store.Set(StateKeyCart, data)
}

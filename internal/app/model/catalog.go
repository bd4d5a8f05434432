package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cardinality says whether a builder step accepts one or many selections.
type Cardinality string

const (
	CardinalitySingle Cardinality = "single"
	CardinalityMulti  Cardinality = "multi"
)

// CatalogItem is one sellable entry. Immutable once the catalog is loaded.
type CatalogItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Price        decimal.Decimal   `json:"price"`
	Description  string            `json:"description,omitempty"`
	ImageRef     string            `json:"image,omitempty"`
	TastingNotes []string          `json:"tastingNotes,omitempty"`
	TechSheet    map[string]string `json:"techSheet,omitempty"`
}

// Menu is one navigation category of the storefront.
type Menu struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// BuilderStep is one stage of the custom-item configurator.
type BuilderStep struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Cardinality Cardinality   `json:"cardinality"`
	Required    bool          `json:"required"`
	Options     []CatalogItem `json:"options"`
}

// Catalog is the full loaded catalog document.
type Catalog struct {
	RestaurantName   string                   `json:"restaurantName"`
	RestaurantSlogan string                   `json:"restaurantSlogan"`
	RestaurantPhone  string                   `json:"restaurantPhone"`
	Menus            []Menu                   `json:"menus"`
	Steps            []BuilderStep            `json:"steps"`
	Items            map[string][]CatalogItem `json:"items"`
}

// FindItem looks up a catalog item by id across every menu category.
func (c *Catalog) FindItem(id string) (CatalogItem, bool) {
	for _, menu := range c.Menus {
		for _, item := range c.Items[menu.ID] {
			if item.ID == id {
				return item, true
			}
		}
	}
	return CatalogItem{}, false
}

// catalogDocument mirrors the wire format of the catalog JSON. Item arrays
// live at the top level keyed by menu id, so they are pulled out of the raw
// object in a second pass.
type catalogDocument struct {
	RestaurantName   string `json:"restaurantName"`
	RestaurantSlogan string `json:"restaurantSlogan"`
	RestaurantPhone  string `json:"restaurantPhone"`
	Menus            []Menu `json:"menus"`
	Builder          struct {
		Steps []BuilderStep `json:"steps"`
	} `json:"builder"`
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalog document: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid catalog document: %w", err)
	}

	catalog := &Catalog{
		RestaurantName:   doc.RestaurantName,
		RestaurantSlogan: doc.RestaurantSlogan,
		RestaurantPhone:  doc.RestaurantPhone,
		Menus:            doc.Menus,
		Steps:            doc.Builder.Steps,
		Items:            make(map[string][]CatalogItem, len(doc.Menus)),
	}

	for _, menu := range doc.Menus {
		entry, ok := raw[menu.ID]
		if !ok {
			catalog.Items[menu.ID] = nil
			continue
		}
		var items []CatalogItem
		if err := json.Unmarshal(entry, &items); err != nil {
			return nil, fmt.Errorf("invalid item list for menu %q: %w", menu.ID, err)
		}
		catalog.Items[menu.ID] = items
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (c *Catalog) validate() error {
	seenItems := make(map[string]bool)
	for _, menu := range c.Menus {
		for _, item := range c.Items[menu.ID] {
			if item.ID == "" {
				return fmt.Errorf("menu %q contains an item without id", menu.ID)
			}
			if seenItems[item.ID] {
				return fmt.Errorf("duplicate item id %q", item.ID)
			}
			seenItems[item.ID] = true
			if item.Price.IsNegative() {
				return fmt.Errorf("item %q has a negative price", item.ID)
			}
		}
	}

	seenSteps := make(map[string]bool)
	anyRequired := false
	for i := range c.Steps {
		step := &c.Steps[i]
		if step.ID == "" {
			return fmt.Errorf("builder step %d has no id", i)
		}
		if seenSteps[step.ID] {
			return fmt.Errorf("duplicate builder step id %q", step.ID)
		}
		seenSteps[step.ID] = true

		switch step.Cardinality {
		case CardinalitySingle, CardinalityMulti:
		case "":
			step.Cardinality = CardinalitySingle
		default:
			return fmt.Errorf("builder step %q has unknown cardinality %q", step.ID, step.Cardinality)
		}

		for _, opt := range step.Options {
			if opt.Price.IsNegative() {
				return fmt.Errorf("option %q of step %q has a negative price", opt.Name, step.ID)
			}
		}
		if step.Required {
			anyRequired = true
		}
	}

	// Documents that never mark a step required keep the positional
	// convention: the first declared step is the mandatory one.
	if !anyRequired && len(c.Steps) > 0 {
		c.Steps[0].Required = true
	}

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/kaizensushi/storefront-backend/config"
	"github.com/kaizensushi/storefront-backend/internal/app/model"
)

// Writes the bundled sample catalog document into the assets directory so a
// fresh install has a menu to serve before any remote source is configured.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	outPath := filepath.Join(cfg.Assets.Dir, "catalog.json")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	doc := sampleCatalog(cfg)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode catalog:", err)
	}

	// Round-trip through the parser so a broken sample never ships.
	if _, err := model.ParseCatalog(data); err != nil {
		log.Fatal("Generated catalog is invalid:", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatal("Failed to write catalog:", err)
	}

	fmt.Printf("Catalog written to %s\n", outPath)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleCatalog(cfg *config.Config) map[string]interface{} {
	rolls := []model.CatalogItem{
		{
			ID:           "roll-kaizen-especial",
			Name:         "Rollo Kaizen Especial",
			Price:        price("145.00"),
			Description:  "Salmón flameado, aguacate y queso crema con salsa de anguila.",
			ImageRef:     "images/roll-kaizen.jpg",
			TastingNotes: []string{"Ahumado", "Cremoso", "Umami"},
			TechSheet: map[string]string{
				"Piezas":      "10",
				"Envoltura":   "Arroz de sushi",
				"Proteína":    "Salmón flameado",
				"Complemento": "Salsa de anguila",
			},
		},
		{
			ID:           "roll-dragon",
			Name:         "Rollo Dragón",
			Price:        price("135.00"),
			Description:  "Camarón tempura cubierto de aguacate laminado.",
			ImageRef:     "images/roll-dragon.jpg",
			TastingNotes: []string{"Crujiente", "Fresco"},
			TechSheet: map[string]string{
				"Piezas":    "8",
				"Envoltura": "Arroz de sushi",
				"Proteína":  "Camarón tempura",
			},
		},
		{
			ID:          "roll-california",
			Name:        "Rollo California",
			Price:       price("110.00"),
			Description: "Surimi, pepino y aguacate. El clásico de siempre.",
			ImageRef:    "images/roll-california.jpg",
		},
	}

	drinks := []model.CatalogItem{
		{
			ID:          "bebida-te-verde",
			Name:        "Té Verde Frío",
			Price:       price("35.00"),
			Description: "Infusión ligera, sin azúcar añadida.",
			ImageRef:    "images/te-verde.jpg",
		},
		{
			ID:          "bebida-ramune",
			Name:        "Ramune Original",
			Price:       price("45.00"),
			Description: "Soda japonesa con canica de vidrio.",
			ImageRef:    "images/ramune.jpg",
		},
	}

	steps := []model.BuilderStep{
		{
			ID:          "base",
			Label:       "1. Elige tu base",
			Cardinality: model.CardinalitySingle,
			Required:    true,
			Options: []model.CatalogItem{
				{ID: "base-arroz-sushi", Name: "Arroz de Sushi", Price: price("50.00")},
				{ID: "base-arroz-integral", Name: "Arroz Integral", Price: price("50.50")},
			},
		},
		{
			ID:          "protein",
			Label:       "2. Elige tus proteínas",
			Cardinality: model.CardinalityMulti,
			Options: []model.CatalogItem{
				{ID: "prot-salmon", Name: "Salmón Fresco", Price: price("40.50")},
				{ID: "prot-atun", Name: "Atún Picante", Price: price("50.00")},
				{ID: "prot-camaron", Name: "Camarón Tempura", Price: price("40.00")},
				{ID: "prot-tofu", Name: "Tofu", Price: price("30.00")},
			},
		},
		{
			ID:          "filling",
			Label:       "3. Elige tus rellenos",
			Cardinality: model.CardinalityMulti,
			Options: []model.CatalogItem{
				{ID: "fill-aguacate", Name: "Aguacate", Price: price("20.00")},
				{ID: "fill-queso", Name: "Queso Crema", Price: price("10.50")},
				{ID: "fill-pepino", Name: "Pepino", Price: price("10.00")},
			},
		},
		{
			ID:          "topping",
			Label:       "4. Elige tu topping",
			Cardinality: model.CardinalitySingle,
			Options: []model.CatalogItem{
				{ID: "top-sesamo", Name: "Sésamo Tostado", Price: price("10.50")},
				{ID: "top-cebollin", Name: "Cebollín Crocante", Price: price("10.00")},
			},
		},
	}

	return map[string]interface{}{
		"restaurantName":   cfg.Restaurant.Name,
		"restaurantSlogan": cfg.Restaurant.Slogan,
		"restaurantPhone":  cfg.Restaurant.Phone,
		"menus": []model.Menu{
			{ID: "rollos", Label: "Rollos"},
			{ID: "bebidas", Label: "Bebidas"},
		},
		"rollos":  rolls,
		"bebidas": drinks,
		"builder": map[string]interface{}{
			"steps": steps,
		},
	}
}

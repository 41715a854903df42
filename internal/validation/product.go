package validation

import (
	"fmt"
	"math"
	"strings"

	"perricueva/internal/models"
)

// Field length caps shared with the persistence layer.
const (
	MaxNameLength        = 200
	MaxBrandLength       = 200
	MaxDescriptionLength = 2000
	MaxImageURLLength    = 500
	MaxVariations        = 20
)

// Mutation actions accepted by the admin gateway.
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ValidateProduct checks a mutation payload against the product schema.
// Checks run in a fixed order and stop at the first violation, returning
// a single descriptive error. It is a pure check; trimming and capping
// happen again at persistence time.
func ValidateProduct(p *models.ProductInput, action string) error {
	if action == ActionUpdate || action == ActionDelete {
		if p == nil || strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("product id is required for %s", action)
		}
	}
	if action == ActionDelete {
		return nil
	}

	if p == nil {
		return fmt.Errorf("product is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("nombre is required")
	}
	if len([]rune(p.Name)) > MaxNameLength {
		return fmt.Errorf("nombre must be at most %d characters", MaxNameLength)
	}
	if p.Category == "" {
		return fmt.Errorf("categoria is required")
	}
	if !models.IsValidCategory(p.Category) {
		return fmt.Errorf("categoria must be one of: %s", strings.Join(models.Categories, ", "))
	}
	if p.Brand != nil && len([]rune(*p.Brand)) > MaxBrandLength {
		return fmt.Errorf("marca must be at most %d characters", MaxBrandLength)
	}
	if p.Description != nil && len([]rune(*p.Description)) > MaxDescriptionLength {
		return fmt.Errorf("descripcion must be at most %d characters", MaxDescriptionLength)
	}
	if p.ImageURL != nil && len([]rune(*p.ImageURL)) > MaxImageURLLength {
		return fmt.Errorf("imagen_url must be at most %d characters", MaxImageURLLength)
	}
	if len(p.Variations) > MaxVariations {
		return fmt.Errorf("variaciones must have at most %d entries", MaxVariations)
	}
	for i, v := range p.Variations {
		if strings.TrimSpace(v.Value) == "" {
			return fmt.Errorf("variaciones[%d].value is required", i)
		}
		if v.Price < 0 {
			return fmt.Errorf("variaciones[%d].precio must be 0 or greater", i)
		}
		if v.Stock < 0 || v.Stock != math.Trunc(v.Stock) {
			return fmt.Errorf("variaciones[%d].stock must be a non-negative integer", i)
		}
	}
	return nil
}

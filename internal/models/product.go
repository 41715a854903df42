package models

import "time"

// Categories is the fixed set of product categories the store accepts.
var Categories = []string{"Alimentos", "Accesorios", "Higiene", "Venenos"}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Variation is one purchasable variant of a product (e.g. value "3kg").
// Duplicate entries are allowed.
type Variation struct {
	Key   string  `json:"key"`
	Value string  `json:"value"`
	Price float64 `json:"precio"`
	Stock int     `json:"stock"`
}

// VariationInput is the wire shape of a variation inside a mutation
// request. Stock arrives as a number and is checked for integrality
// before it becomes a Variation.
type VariationInput struct {
	Key   string  `json:"key"`
	Value string  `json:"value"`
	Price float64 `json:"precio"`
	Stock float64 `json:"stock"`
}

// ProductInput is the wire shape of the product object inside a mutation
// request. ID is only meaningful for update and delete.
type ProductInput struct {
	ID          string           `json:"id"`
	Name        string           `json:"nombre"`
	Brand       *string          `json:"marca"`
	Category    string           `json:"categoria"`
	Description *string          `json:"descripcion"`
	ImageURL    *string          `json:"imagen_url"`
	Variations  []VariationInput `json:"variaciones"`
}

// Product represents a catalog product. JSON and column names keep the
// store's original Spanish schema.
type Product struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string      `json:"nombre" gorm:"column:nombre;type:varchar(200);not null"`
	Brand       *string     `json:"marca" gorm:"column:marca;type:varchar(200)"`
	Category    string      `json:"categoria" gorm:"column:categoria;type:varchar(100);not null"`
	Description *string     `json:"descripcion" gorm:"column:descripcion;type:varchar(2000)"`
	ImageURL    *string     `json:"imagen_url" gorm:"column:imagen_url;type:varchar(500)"`
	Variations  []Variation `json:"variaciones" gorm:"column:variaciones;serializer:json"`
	CreatedAt   time.Time   `json:"created_at"`
}

package repositories

import (
	"perricueva/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns products newest-first, optionally filtered by category.
	// An empty category means no filter.
	GetAll(category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	// Update rewrites the mutable columns of the row with product.ID and
	// reloads the stored row into product. CreatedAt is never touched.
	Update(product *models.Product) error
	Delete(id string) error
}

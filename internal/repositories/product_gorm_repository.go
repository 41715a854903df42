package repositories

import (
	"fmt"

	"perricueva/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves products from the database, newest first.
func (r *GORMProductRepository) GetAll(category string) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Order("created_at desc")
	if category != "" {
		query = query.Where("categoria = ?", category)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns of an existing product, then reloads
// the stored row (including the untouched created_at) into product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	if product.Variations == nil {
		product.Variations = []models.Variation{}
	}
	res := r.db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("nombre", "marca", "categoria", "descripcion", "imagen_url", "variaciones").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Updates does not return ErrRecordNotFound for a missing row,
		// so we check RowsAffected.
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	if err := r.db.First(product, "id = ?", product.ID).Error; err != nil {
		return fmt.Errorf("failed to reload product %s after update: %w", product.ID, err)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}

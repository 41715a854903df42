package services

import (
	"perricueva/internal/models"
	"perricueva/internal/repositories"
)

// CatalogService handles the public read side of the catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllProducts retrieves products newest-first, optionally filtered by
// category (empty string means no filter).
func (s *CatalogService) GetAllProducts(category string) ([]models.Product, error) {
	return s.repo.GetAll(category)
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"perricueva/internal/models"
	"perricueva/internal/repositories"
	"perricueva/internal/validation"
	"perricueva/pkg/rabbitmq"
)

// AdminService executes validated product mutations. Every string field is
// trimmed and length-capped again here before persistence, so the store
// never sees over-length data even if a caller skips the payload validator.
type AdminService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewAdminService creates a new AdminService. mqClient may be nil, in which
// case audit events are skipped.
func NewAdminService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *AdminService {
	return &AdminService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// InsertProduct persists a new product and returns the stored row.
func (s *AdminService) InsertProduct(input *models.ProductInput) (*models.Product, error) {
	product := sanitizeProduct(input)
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	s.publishEvent(validation.ActionInsert, product)
	return product, nil
}

// UpdateProduct rewrites an existing product's fields and returns the
// stored row. Repeating the same call with the same payload yields the
// same final row.
func (s *AdminService) UpdateProduct(input *models.ProductInput) (*models.Product, error) {
	product := sanitizeProduct(input)
	product.ID = strings.TrimSpace(input.ID)
	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	s.publishEvent(validation.ActionUpdate, product)
	return product, nil
}

// DeleteProduct removes a product by its ID.
func (s *AdminService) DeleteProduct(id string) error {
	id = strings.TrimSpace(id)
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.publishEvent(validation.ActionDelete, &models.Product{ID: id})
	return nil
}

func (s *AdminService) publishEvent(action string, product *models.Product) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	event := rabbitmq.CatalogEvent{
		Action:    action,
		ProductID: product.ID,
		Name:      product.Name,
		At:        time.Now(),
	}
	if err := s.mqClient.PublishCatalogEvent(event); err != nil {
		log.Printf("Warning: Failed to publish catalog event for product %s: %v", product.ID, err)
	}
}

// sanitizeProduct converts a mutation payload into a storable product,
// trimming and capping every string field and clamping variations.
func sanitizeProduct(input *models.ProductInput) *models.Product {
	product := &models.Product{
		Name:        capRunes(strings.TrimSpace(input.Name), validation.MaxNameLength),
		Brand:       sanitizeOptional(input.Brand, validation.MaxBrandLength),
		Category:    capRunes(strings.TrimSpace(input.Category), 100),
		Description: sanitizeOptional(input.Description, validation.MaxDescriptionLength),
		ImageURL:    sanitizeOptional(input.ImageURL, validation.MaxImageURLLength),
	}

	variations := input.Variations
	if len(variations) > validation.MaxVariations {
		variations = variations[:validation.MaxVariations]
	}
	product.Variations = make([]models.Variation, 0, len(variations))
	for _, v := range variations {
		product.Variations = append(product.Variations, models.Variation{
			Key:   strings.TrimSpace(v.Key),
			Value: strings.TrimSpace(v.Value),
			Price: v.Price,
			Stock: int(v.Stock),
		})
	}
	return product
}

// sanitizeOptional trims and caps an optional field; blank values become nil,
// matching how the store represents absent fields.
func sanitizeOptional(value *string, max int) *string {
	if value == nil {
		return nil
	}
	trimmed := capRunes(strings.TrimSpace(*value), max)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func capRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

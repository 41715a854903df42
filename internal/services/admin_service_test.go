package services_test

import (
	"fmt"
	"strings"
	"testing"

	"perricueva/internal/models"
	"perricueva/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(category string) ([]models.Product, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestAdminService_InsertProduct_Sanitizes(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAdminService(mockRepo, nil) // nil mq client is tolerated

	longBrand := "  " + strings.Repeat("b", 250) + "  "
	blank := "   "
	input := &models.ProductInput{
		Name:        "  Croquetas Premium  ",
		Brand:       &longBrand,
		Category:    "Alimentos",
		Description: &blank,
		Variations: []models.VariationInput{
			{Key: " Peso ", Value: " 3kg ", Price: 1500, Stock: 12},
		},
	}

	var stored *models.Product
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*models.Product)
	}).Return(nil).Once()

	product, err := service.InsertProduct(input)
	assert.NoError(t, err)
	assert.Same(t, stored, product)

	assert.Equal(t, "Croquetas Premium", product.Name)
	assert.NotNil(t, product.Brand)
	assert.Equal(t, strings.Repeat("b", 200), *product.Brand)
	assert.Nil(t, product.Description, "blank optional fields become nil")
	assert.Nil(t, product.ImageURL)
	assert.Equal(t, []models.Variation{{Key: "Peso", Value: "3kg", Price: 1500, Stock: 12}}, product.Variations)
	mockRepo.AssertExpectations(t)
}

func TestAdminService_InsertProduct_ClampsVariations(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAdminService(mockRepo, nil)

	input := &models.ProductInput{Name: "Croquetas", Category: "Alimentos"}
	for i := 0; i < 25; i++ {
		input.Variations = append(input.Variations, models.VariationInput{Value: "3kg", Price: 10, Stock: 1})
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.InsertProduct(input)
	assert.NoError(t, err)
	assert.Len(t, product.Variations, 20)
	mockRepo.AssertExpectations(t)
}

func TestAdminService_InsertProduct_RepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAdminService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("database error")).Once()

	product, err := service.InsertProduct(&models.ProductInput{Name: "Croquetas", Category: "Alimentos"})
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestAdminService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAdminService(mockRepo, nil)

	input := &models.ProductInput{
		ID:       " prod-1 ",
		Name:     "Croquetas",
		Category: "Alimentos",
	}

	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "prod-1" && p.Name == "Croquetas"
	})).Return(nil).Twice()

	product, err := service.UpdateProduct(input)
	assert.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)

	// Repeating the identical update produces the same row.
	again, err := service.UpdateProduct(input)
	assert.NoError(t, err)
	assert.Equal(t, product, again)
	mockRepo.AssertExpectations(t)
}

func TestAdminService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAdminService(mockRepo, nil)

	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).
		Return(fmt.Errorf("product with ID 99 not found for update")).Once()

	product, err := service.UpdateProduct(&models.ProductInput{ID: "99", Name: "X", Category: "Alimentos"})
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found for update")
	mockRepo.AssertExpectations(t)
}

func TestAdminService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewAdminService(mockRepo, nil)

	mockRepo.On("Delete", "prod-1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(" prod-1 "))

	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err := service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}

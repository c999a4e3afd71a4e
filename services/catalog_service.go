package services

import (
	"context"
	"errors"
	"strings"

	"storefront/models"
	"storefront/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService defines the interface for product business logic.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
}

type catalogServiceImpl struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{products: products, logger: logger}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, ErrInternal
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("Failed to get product", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return product, nil
}

// CreateProduct persists a new catalog entry. Name uniqueness is checked up
// front and again enforced by the unique index, so a concurrent insert still
// surfaces as DuplicateName.
func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	if _, err := s.products.FindByName(ctx, req.Name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to look up product name", zap.Error(err))
		return nil, ErrInternal
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
	}
	if err := s.products.Create(ctx, product); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, ErrDuplicateName
		}
		s.logger.Error("Failed to create product", zap.String("name", req.Name), zap.Error(err))
		return nil, ErrInternal
	}

	s.logger.Info("Product created", zap.String("name", product.Name), zap.Int64("price", product.Price))
	return product, nil
}

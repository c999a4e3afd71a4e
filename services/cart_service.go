package services

import (
	"context"
	"errors"

	"storefront/models"
	"storefront/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CartService defines the interface for cart business logic.
type CartService interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, *ServiceError)
	GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, *ServiceError)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) *ServiceError
}

type cartServiceImpl struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{carts: carts, products: products, logger: logger}
}

// AddItem inserts one cart row for the product, copying its name as the
// label. Re-adding the same product creates another row.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, *ServiceError) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("Failed to look up product", zap.String("product_id", productID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	item := &models.CartItem{
		Label:     product.Name,
		ProductID: product.ID,
		UserID:    userID,
	}
	if err := s.carts.Create(ctx, item); err != nil {
		s.logger.Error("Failed to add cart item", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	return item, nil
}

// GetCart joins the user's cart rows to the catalog in memory and computes
// the display total, duplicates counted individually.
func (s *cartServiceImpl) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, *ServiceError) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list cart", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	var total int64
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			// A dangling reference means a product was removed underneath a
			// live cart. Surface nothing to the client beyond a generic fault.
			s.logger.Error("Dangling cart reference",
				zap.String("user_id", userID.String()),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err),
			)
			return nil, ErrInternal
		}
		total += product.Price
	}

	if items == nil {
		items = []models.CartItem{}
	}
	return &models.CartView{Items: items, Total: total}, nil
}

// RemoveItem deletes the user's oldest cart row for the product. Removing an
// already-removed product yields CartItemNotFound, never a fault.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID uuid.UUID) *ServiceError {
	if err := s.carts.DeleteFirstByProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		s.logger.Error("Failed to remove cart item", zap.String("user_id", userID.String()), zap.Error(err))
		return ErrInternal
	}
	return nil
}

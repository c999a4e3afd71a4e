package repository

import (
	"context"

	"storefront/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartRepository defines the interface for cart line-item data access. All
// operations are scoped to the owning user.
type CartRepository interface {
	Create(ctx context.Context, item *models.CartItem) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	DeleteFirstByProduct(ctx context.Context, userID, productID uuid.UUID) error
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository.
func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteFirstByProduct removes the oldest cart row for the given user and
// product in a single statement, so two concurrent removals cannot both
// claim the same row. Returns gorm.ErrRecordNotFound when no row was
// deleted, so a repeated removal is a clean miss rather than a fault.
func (r *GormCartRepository) DeleteFirstByProduct(ctx context.Context, userID, productID uuid.UUID) error {
	oldest := r.db.Model(&models.CartItem{}).
		Select("id").
		Where("user_id = ? AND product_id = ?", userID, productID).
		Order("created_at").
		Limit(1)

	res := r.db.WithContext(ctx).
		Where("id = (?)", oldest).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

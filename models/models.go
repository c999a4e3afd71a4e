package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. The admin account is the only one allowed to create products.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a registered storefront account.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Product is a catalog entry. Price is an integer in major currency units;
// it is scaled to minor units only when building a checkout session.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(250);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	Price       int64     `gorm:"not null" json:"price"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CartItem is one "add to cart" action. There is no quantity column: adding
// the same product twice creates two rows, each counted in the total.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(250);not null" json:"label"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CartView is the cart as returned to the client: the raw line rows plus a
// display total in major units. The payment provider computes the
// authoritative charge from the submitted line items, not from this total.
type CartView struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateProductRequest is the payload for the admin product-creation endpoint.
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=250"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// CheckoutSessionResponse carries the opaque session handle the client uses
// to redirect to the hosted payment page.
type CheckoutSessionResponse struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

// Migrate runs the idempotent schema migration at process start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Product{}, &CartItem{})
}

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

// minorUnitsPerMajor converts catalog prices (whole major currency units)
// into the minor units the payment provider expects.
const minorUnitsPerMajor = 100

// LineItem is one priced, quantified entry submitted to the payment gateway.
type LineItem struct {
	Name       string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

// CheckoutSessionRequest is everything the gateway needs to build a hosted
// payment session.
type CheckoutSessionRequest struct {
	CustomerEmail    string
	LineItems        []LineItem
	SuccessURL       string
	CancelURL        string
	AllowedCountries []string
	Metadata         map[string]string
}

// CheckoutGateway creates hosted payment sessions. Implemented by the Stripe
// client; mocked in tests.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (string, error)
}

// CheckoutService reconciles a user's cart with the payment provider: it
// turns cart rows into a priced session request, and completes the order
// once the provider confirms payment.
type CheckoutService interface {
	CreateSession(ctx context.Context, userID uuid.UUID) (*models.CheckoutSessionResponse, *ServiceError)
	CompleteOrder(ctx context.Context, userID uuid.UUID) *ServiceError
}

type checkoutServiceImpl struct {
	carts            repository.CartRepository
	products         repository.ProductRepository
	users            repository.UserRepository
	gateway          CheckoutGateway
	notifier         NotificationService
	domain           string
	currency         string
	allowedCountries []string
	logger           *zap.Logger
}

// NewCheckoutService creates a new CheckoutService. domain is the base URL
// for the success/cancel redirect targets.
func NewCheckoutService(
	carts repository.CartRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	gateway CheckoutGateway,
	notifier NotificationService,
	domain, currency string,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		carts:            carts,
		products:         products,
		users:            users,
		gateway:          gateway,
		notifier:         notifier,
		domain:           domain,
		currency:         currency,
		allowedCountries: []string{"US", "CA"},
		logger:           logger,
	}
}

// CreateSession loads the user's cart, resolves every referenced product and
// submits the priced line items to the gateway. Nothing is mutated here: the
// cart survives until the provider confirms payment via webhook.
func (s *checkoutServiceImpl) CreateSession(ctx context.Context, userID uuid.UUID) (*models.CheckoutSessionResponse, *ServiceError) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list cart", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load user for checkout", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	var total int64
	lineItems := make([]LineItem, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("Dangling cart reference at checkout",
					zap.String("user_id", userID.String()),
					zap.String("product_id", item.ProductID.String()),
				)
			} else {
				s.logger.Error("Failed to resolve product at checkout", zap.Error(err))
			}
			return nil, ErrInternal
		}

		total += product.Price
		lineItems = append(lineItems, LineItem{
			Name:       product.Name,
			Currency:   s.currency,
			UnitAmount: product.Price * minorUnitsPerMajor,
			Quantity:   1,
		})
	}

	req := &CheckoutSessionRequest{
		CustomerEmail:    user.Email,
		LineItems:        lineItems,
		SuccessURL:       s.domain + "/checkout/success",
		CancelURL:        s.domain + "/checkout/cancel",
		AllowedCountries: s.allowedCountries,
		Metadata:         map[string]string{"user_id": userID.String()},
	}

	sessionID, err := s.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.logger.Warn("Checkout session creation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, ErrGateway
	}

	s.logger.Info("Checkout session created",
		zap.String("user_id", userID.String()),
		zap.String("session_id", sessionID),
		zap.Int64("total", total),
		zap.Int("line_items", len(lineItems)),
	)
	return &models.CheckoutSessionResponse{ID: sessionID, Total: total}, nil
}

// CompleteOrder runs after the provider has confirmed payment: the cart is
// purged first (payment already happened, the purge must not be lost to a
// mail failure), then the confirmation email goes out.
func (s *checkoutServiceImpl) CompleteOrder(ctx context.Context, userID uuid.UUID) *ServiceError {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load user for order completion", zap.String("user_id", userID.String()), zap.Error(err))
		return ErrInternal
	}

	if err := s.carts.ClearByUser(ctx, userID); err != nil {
		s.logger.Error("Failed to purge cart", zap.String("user_id", userID.String()), zap.Error(err))
		return ErrInternal
	}

	if svcErr := s.notifier.SendOrderConfirmation(ctx, user); svcErr != nil {
		return svcErr
	}

	s.logger.Info("Order completed", zap.String("user_id", userID.String()))
	return nil
}

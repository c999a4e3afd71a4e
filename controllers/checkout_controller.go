package controllers

import (
	"encoding/json"
	"net/http"

	"storefront/middleware"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// WebhookVerifier verifies and decodes an incoming payment-provider webhook.
type WebhookVerifier interface {
	ParseWebhook(r *http.Request) (stripe.Event, error)
}

// CheckoutController handles checkout-session creation, the provider
// webhook, and the post-redirect landings.
type CheckoutController struct {
	checkoutService services.CheckoutService
	verifier        WebhookVerifier
	logger          *zap.Logger
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(checkoutService services.CheckoutService, verifier WebhookVerifier, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
		verifier:        verifier,
		logger:          logger,
	}
}

// CreateSession handles POST /checkout/session. On success the client gets
// the opaque session id to redirect to the hosted payment page.
func (kc *CheckoutController) CreateSession(c *gin.Context) {
	resp, svcErr := kc.checkoutService.CreateSession(c.Request.Context(), middleware.GetUserID(c))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": resp.ID, "total": resp.Total})
}

// StripeWebhook handles POST /webhook/stripe. Cart purge and the
// confirmation email are gated on a signature-verified completion event,
// never on the browser merely landing on the success page. A failed
// completion responds 5xx so the provider redelivers the event; the purge
// is idempotent, so a retry after a partial failure is safe.
func (kc *CheckoutController) StripeWebhook(c *gin.Context) {
	event, err := kc.verifier.ParseWebhook(c.Request)
	if err != nil {
		kc.logger.Warn("Webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		if svcErr := kc.handleCheckoutCompleted(c, event); svcErr != nil {
			c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
			return
		}
	default:
		kc.logger.Info("Unhandled webhook event type", zap.String("event_type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// handleCheckoutCompleted runs the order side effects for a completed
// session. Malformed payloads and missing metadata are acked with nil since
// redelivery cannot repair them; only a CompleteOrder failure propagates.
func (kc *CheckoutController) handleCheckoutCompleted(c *gin.Context, event stripe.Event) *services.ServiceError {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		kc.logger.Error("Failed to unmarshal checkout session", zap.Error(err))
		return nil
	}

	userID, err := uuid.Parse(sess.Metadata["user_id"])
	if err != nil {
		kc.logger.Warn("Missing or invalid user_id metadata in checkout session",
			zap.String("session_id", sess.ID),
		)
		return nil
	}

	if svcErr := kc.checkoutService.CompleteOrder(c.Request.Context(), userID); svcErr != nil {
		kc.logger.Error("Failed to complete order",
			zap.String("session_id", sess.ID),
			zap.String("user_id", userID.String()),
			zap.String("reason", svcErr.Message),
		)
		return svcErr
	}

	kc.logger.Info("Checkout completed",
		zap.String("session_id", sess.ID),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// Success handles GET /checkout/success. Purely a landing page: the order
// side effects run in the webhook handler.
func (kc *CheckoutController) Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Payment received, a confirmation email is on its way"})
}

// Cancel handles GET /checkout/cancel. No store mutation.
func (kc *CheckoutController) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Checkout cancelled, your cart is untouched"})
}

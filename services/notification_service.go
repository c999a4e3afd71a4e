package services

import (
	"context"
	"fmt"

	"storefront/models"
	"storefront/sender"

	"go.uber.org/zap"
)

// NotificationService composes and relays the storefront's two outbound
// emails: contact-form submissions and order confirmations.
type NotificationService interface {
	SendContactMessage(ctx context.Context, req *models.ContactRequest) *ServiceError
	SendOrderConfirmation(ctx context.Context, user *models.User) *ServiceError
}

type notificationServiceImpl struct {
	emailSender  sender.EmailSender
	contactEmail string
	logger       *zap.Logger
}

// NewNotificationService creates a new NotificationService. contactEmail is
// the recipient of contact-form submissions.
func NewNotificationService(emailSender sender.EmailSender, contactEmail string, logger *zap.Logger) NotificationService {
	return &notificationServiceImpl{
		emailSender:  emailSender,
		contactEmail: contactEmail,
		logger:       logger,
	}
}

// SendContactMessage relays a contact-form submission to the configured
// recipient. The send blocks the request; a failure surfaces as a generic
// fault, never the transport detail.
func (s *notificationServiceImpl) SendContactMessage(ctx context.Context, req *models.ContactRequest) *ServiceError {
	body := fmt.Sprintf("New message from %s (%s):\n\n%s", req.Name, req.Email, req.Message)
	result, err := s.emailSender.SendEmail(ctx, s.contactEmail, "New contact form message", body)
	if err != nil {
		s.logger.Error("Failed to relay contact message", zap.String("from", req.Email), zap.Error(err))
		return ErrInternal
	}

	s.logger.Info("Contact message relayed",
		zap.String("from", req.Email),
		zap.String("message_id", result.MessageID),
	)
	return nil
}

// SendOrderConfirmation emails the buyer after a verified payment.
func (s *notificationServiceImpl) SendOrderConfirmation(ctx context.Context, user *models.User) *ServiceError {
	body := fmt.Sprintf("Hi %s! We received your order! It will arrive to you in 10 business days.", user.Name)
	result, err := s.emailSender.SendEmail(ctx, user.Email, "New Order", body)
	if err != nil {
		s.logger.Error("Failed to send order confirmation", zap.String("to", user.Email), zap.Error(err))
		return ErrInternal
	}

	s.logger.Info("Order confirmation sent",
		zap.String("to", user.Email),
		zap.String("message_id", result.MessageID),
	)
	return nil
}

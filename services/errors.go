package services

import "net/http"

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// The error taxonomy. Validation-shaped errors carry the status the
// controller should respond with; anything unexpected collapses into
// ErrInternal so no fault detail leaks to the client.
var (
	ErrEmailExists      = &ServiceError{StatusCode: http.StatusConflict, Message: "An account with this email already exists, log in instead"}
	ErrUnknownEmail     = &ServiceError{StatusCode: http.StatusNotFound, Message: "No account with this email"}
	ErrBadPassword      = &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Incorrect password"}
	ErrDuplicateName    = &ServiceError{StatusCode: http.StatusConflict, Message: "A product with this name already exists"}
	ErrProductNotFound  = &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
	ErrCartItemNotFound = &ServiceError{StatusCode: http.StatusNotFound, Message: "Item not in cart"}
	ErrEmptyCart        = &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cart is empty"}
	ErrGateway          = &ServiceError{StatusCode: http.StatusForbidden, Message: "Payment session could not be created"}
	ErrInternal         = &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
)

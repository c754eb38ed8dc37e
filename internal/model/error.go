package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeValidation           = "VALIDATION_FAILED"
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeInvalidLine          = "INVALID_LINE"
	ErrCodeInvalidConfiguration = "INVALID_CONFIGURATION"
	ErrCodeMenuItemNotFound     = "MENU_ITEM_NOT_FOUND"
	ErrCodeInvalidPrice         = "INVALID_PRICE"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeLineNotFound         = "LINE_NOT_FOUND"
	ErrCodeCartEmpty            = "CART_EMPTY"
	ErrCodeReceiptNotFound      = "RECEIPT_NOT_FOUND"
	ErrCodeReceiptFinalized     = "RECEIPT_FINALIZED"
	ErrCodeInvalidPayment       = "INVALID_PAYMENT"
	ErrCodeUsernameTaken        = "USERNAME_TAKEN"
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrCodeInvalidRating        = "INVALID_RATING"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMenuItemNotFound   = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrInvalidPrice       = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrLineNotFound       = NewDomainError(ErrCodeLineNotFound, "Item is not in the cart")
	ErrCartEmpty          = NewDomainError(ErrCodeCartEmpty, "Cart is empty")
	ErrReceiptNotFound    = NewDomainError(ErrCodeReceiptNotFound, "Receipt not found")
	ErrReceiptFinalized   = NewDomainError(ErrCodeReceiptFinalized, "Receipt has already been purchased")
	ErrInvalidPayment     = NewDomainError(ErrCodeInvalidPayment, "Card details are incomplete or invalid")
	ErrUsernameTaken      = NewDomainError(ErrCodeUsernameTaken, "Username already exists")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrInvalidRating      = NewDomainError(ErrCodeInvalidRating, "Rating must be between 1 and 5")
)

// InvalidInputError reports a malformed argument, such as a blank menu item
// name passed to key generation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidLineError reports a cart line with a negative price or quantity.
type InvalidLineError struct {
	KeyText string
	Reason  string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid cart line %q: %s", e.KeyText, e.Reason)
}

// InvalidConfigurationError reports an unusable tax rate or tip.
type InvalidConfigurationError struct {
	Parameter string
	Reason    string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Parameter, e.Reason)
}

package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies made by WithDetails against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Cart-related errors
	ErrCartNotInitialized = NewBaseError(
		http.StatusConflict,
		"CART_NOT_INITIALIZED",
		"Carrito no inicializado",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"La cantidad debe ser al menos 1",
		"",
	)

	ErrLineItemNotFound = NewBaseError(
		http.StatusNotFound,
		"LINE_ITEM_NOT_FOUND",
		"El producto no está en el carrito",
		"",
	)

	ErrCartSyncFailed = NewBaseError(
		http.StatusBadGateway,
		"CART_SYNC_FAILED",
		"No se pudo actualizar el carrito",
		"",
	)

	// Menu-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	// Checkout-related errors
	ErrEmptyCart = NewBaseError(
		http.StatusConflict,
		"EMPTY_CART",
		"Tu carrito está vacío",
		"",
	)

	ErrCheckoutStep = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_STEP_INVALID",
		"Paso de compra inválido",
		"",
	)

	ErrCheckoutNotStarted = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_NOT_STARTED",
		"No hay una compra en curso",
		"",
	)

	ErrAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REQUIRED",
		"Selecciona la dirección de envío",
		"",
	)

	ErrPaymentNotConfirmed = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_NOT_CONFIRMED",
		"Confirma que realizaste el pago",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_CREATION_FAILED",
		"No se pudo crear el pedido",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido no encontrado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos",
		"",
	)

	// General errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"El servicio no está disponible",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// BackendError wraps a failed backend call, implementing the AppError interface
type BackendError struct {
	err     error
	details string
}

// NewBackendError creates a backend-related error
func NewBackendError(err error, details string) AppError {
	return &BackendError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return errors.Wrap(e.err, "backend request failed").Error()
}

// Unwrap exposes the underlying transport or status error
func (e *BackendError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_REQUEST_FAILED"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return "Error en la petición"
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.details
}

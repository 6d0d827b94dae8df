package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Ошибки корзины
	ErrCartNotReady    = fmt.Errorf("cart store is not ready")
	ErrNilProduct      = fmt.Errorf("product must not be nil")
	ErrInvalidQuantity = fmt.Errorf("quantity must be a positive integer")
	ErrCartEmpty       = fmt.Errorf("cart is empty")

	// Ошибки каталога
	ErrNoProducts      = fmt.Errorf("no product ids provided")
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrEmptyDataset    = fmt.Errorf("catalog dataset is empty")

	// Ошибки оформления заказа
	ErrInvalidEmail         = fmt.Errorf("invalid email format")
	ErrInvalidPaymentMethod = fmt.Errorf("unsupported payment method")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingFields    = fmt.Errorf("required fields are missing")
	ErrInvalidProductID = fmt.Errorf("invalid product id")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

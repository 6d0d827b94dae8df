package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartshop-tech/go-backend/internal/cfg"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartUC struct {
	snapshot domain.CartState
	cleared  bool
	clearErr error
}

func (f *fakeCartUC) AddItem(ctx context.Context, product *domain.Product, quantity int) (domain.CartState, error) {
	return f.snapshot, nil
}

func (f *fakeCartUC) RemoveItem(ctx context.Context, productID int64) (domain.CartState, error) {
	return f.snapshot, nil
}

func (f *fakeCartUC) SetQuantity(ctx context.Context, productID int64, quantity int) (domain.CartState, error) {
	return f.snapshot, nil
}

func (f *fakeCartUC) Clear(ctx context.Context) (domain.CartState, error) {
	if f.clearErr != nil {
		return domain.CartState{}, f.clearErr
	}
	f.cleared = true
	return domain.EmptyCartState(), nil
}

func (f *fakeCartUC) Contains(productID int64) bool  { return false }
func (f *fakeCartUC) QuantityOf(productID int64) int { return 0 }
func (f *fakeCartUC) Snapshot() domain.CartState     { return f.snapshot }
func (f *fakeCartUC) Subscribe(fn func(domain.CartState)) func() {
	return func() {}
}

func validOrderReq() *PlaceOrderReq {
	return NewPlaceOrderReq(domain.ShippingAddress{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Address:  "1 Main St",
		City:     "Springfield",
		State:    "IL",
		ZipCode:  "62701",
		Country:  "USA",
	}, domain.PaymentMethodCard)
}

func filledCartState() domain.CartState {
	return domain.NewCartState([]domain.CartLine{
		domain.NewCartLine(*testProduct(1, 10000), 2),
	}, testCartCfg().TaxRate)
}

func newTestCheckoutUC(cart CartUC) *CheckoutUseCase {
	return NewCheckoutUC(cart, &cfg.CheckoutCfg{ProcessingDelay: time.Millisecond}, nopLogger{})
}

func TestPlaceOrder(t *testing.T) {
	cart := &fakeCartUC{snapshot: filledCartState()}
	uc := newTestCheckoutUC(cart)

	res, err := uc.PlaceOrder(context.Background(), validOrderReq())
	require.NoError(t, err)

	assert.NotEmpty(t, res.OrderID)
	assert.Equal(t, 2, res.Summary.ItemCount)
	assert.Equal(t, int64(20000), res.Summary.Subtotal)
	assert.Equal(t, int64(0), res.Summary.Shipping)
	assert.Equal(t, int64(2000), res.Summary.Tax)
	assert.Equal(t, int64(22000), res.Summary.Total)
	assert.True(t, cart.cleared)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	cart := &fakeCartUC{snapshot: domain.EmptyCartState()}
	uc := newTestCheckoutUC(cart)

	_, err := uc.PlaceOrder(context.Background(), validOrderReq())
	assert.True(t, errors.Is(err, e.ErrCartEmpty))
}

func TestPlaceOrderMissingFields(t *testing.T) {
	cart := &fakeCartUC{snapshot: filledCartState()}
	uc := newTestCheckoutUC(cart)

	req := validOrderReq()
	req.Address.City = "  "

	_, err := uc.PlaceOrder(context.Background(), req)
	assert.True(t, errors.Is(err, e.ErrMissingFields))
	assert.False(t, cart.cleared)
}

func TestPlaceOrderInvalidEmail(t *testing.T) {
	cart := &fakeCartUC{snapshot: filledCartState()}
	uc := newTestCheckoutUC(cart)

	req := validOrderReq()
	req.Address.Email = "not-an-email"

	_, err := uc.PlaceOrder(context.Background(), req)
	assert.True(t, errors.Is(err, e.ErrInvalidEmail))
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	cart := &fakeCartUC{snapshot: filledCartState()}
	uc := newTestCheckoutUC(cart)

	req := validOrderReq()
	req.PaymentMethod = "crypto"

	_, err := uc.PlaceOrder(context.Background(), req)
	assert.True(t, errors.Is(err, e.ErrInvalidPaymentMethod))
}

func TestPlaceOrderClearFailure(t *testing.T) {
	cart := &fakeCartUC{snapshot: filledCartState(), clearErr: e.ErrCartNotReady}
	uc := newTestCheckoutUC(cart)

	_, err := uc.PlaceOrder(context.Background(), validOrderReq())
	assert.True(t, errors.Is(err, e.ErrCartNotReady))
}

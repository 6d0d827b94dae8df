package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smartshop-tech/go-backend/internal/cfg"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CheckoutUseCase имитирует оформление заказа: платёжного шлюза и
// серверного хранения заказов нет. Успешное оформление фиксированной
// длительности очищает корзину — это весь его эффект.
type CheckoutUseCase struct {
	cart   CartUC
	cfg    *cfg.CheckoutCfg
	logger logger.Logger
}

func NewCheckoutUC(cart CartUC, cfg *cfg.CheckoutCfg, logger logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		cart:   cart,
		cfg:    cfg,
		logger: logger,
	}
}

// PlaceOrder валидирует адрес и способ оплаты, выдерживает фиксированную
// задержку обработки (пути отмены нет), собирает сводку заказа из снимка
// корзины и очищает корзину.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	if err := validateAddress(&req.Address); err != nil {
		return nil, e.Wrap(op, err)
	}
	if !req.PaymentMethod.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidPaymentMethod)
	}

	snapshot := c.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, e.Wrap(op, e.ErrCartEmpty)
	}

	// Имитация обращения к платёжному провайдеру
	time.Sleep(c.cfg.ProcessingDelay)

	orderID := uuid.NewString()
	summary := domain.NewOrderSummary(snapshot)

	if _, err := c.cart.Clear(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("order %s placed: %d item(s), total %d cents", orderID, summary.ItemCount, summary.Total)

	return &PlaceOrderRes{
		OrderID: orderID,
		Summary: summary,
	}, nil
}

func validateAddress(addr *domain.ShippingAddress) error {
	required := []string{
		addr.FullName,
		addr.Email,
		addr.Phone,
		addr.Address,
		addr.City,
		addr.State,
		addr.ZipCode,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return e.ErrMissingFields
		}
	}

	if !emailRe.MatchString(addr.Email) {
		return e.ErrInvalidEmail
	}

	return nil
}

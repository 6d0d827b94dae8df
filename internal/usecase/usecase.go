package usecase

import (
	"context"

	"github.com/smartshop-tech/go-backend/internal/domain"
)

// CartUC — операции над единственной авторитетной корзиной.
// Мутации синхронны по отношению к видимости состояния: возвращённый
// CartState уже содержит пересчитанные производные поля.
type CartUC interface {
	AddItem(ctx context.Context, product *domain.Product, quantity int) (domain.CartState, error)
	RemoveItem(ctx context.Context, productID int64) (domain.CartState, error)
	SetQuantity(ctx context.Context, productID int64, quantity int) (domain.CartState, error)
	Clear(ctx context.Context) (domain.CartState, error)

	Contains(productID int64) bool
	QuantityOf(productID int64) int
	Snapshot() domain.CartState

	// Subscribe регистрирует наблюдателя, получающего снимок состояния
	// после каждой зафиксированной мутации. Возвращает функцию отписки.
	Subscribe(fn func(domain.CartState)) func()
}

type CatalogUC interface {
	Seed(ctx context.Context) error
	ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	ListCategories(ctx context.Context) ([]CategoryInfo, error)
}

type CheckoutUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error)
}

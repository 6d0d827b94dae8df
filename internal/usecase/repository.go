package usecase

import (
	"context"

	"github.com/smartshop-tech/go-backend/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	List(ctx context.Context, filter *ListProductsReq) ([]ProductInfo, error)
}

type CategoryRepository interface {
	CreateOrGet(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]CategoryInfo, error)
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

// CartRepository — долговременное хранилище снимка корзины.
// Save — fire-and-forget с точки зрения хранилища корзины: ошибка записи
// логируется вызывающей стороной и не откатывает состояние в памяти.
// Load обязан возвращать пустой список при отсутствии или порче данных.
type CartRepository interface {
	Save(ctx context.Context, lines []domain.CartLine) error
	Load(ctx context.Context) ([]domain.CartLine, error)
}

//go:generate goverter gen github.com/smartshop-tech/go-backend/internal/repository/redis/converter

package converter

import (
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/usecase"
)

// ProductInfoConverter преобразует DTO товара между usecase и моделью Redis.
// goverter:converter
type ProductInfoConverter interface {
	ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
	ToArrRedisModel(entities []usecase.ProductInfo) []ProductInfoRedisModel
	ToArrUseCase(models []ProductInfoRedisModel) []usecase.ProductInfo
}

// CartLineConverter преобразует позиции корзины между domain и моделью Redis.
// goverter:converter
// goverter:ignore CreatedAt UpdatedAt IsArchived
type CartLineConverter interface {
	ToRedisModel(entity *domain.CartLine) *CartLineRedisModel
	ToDomain(model *CartLineRedisModel) *domain.CartLine
	ToArrRedisModel(entities []domain.CartLine) []CartLineRedisModel
	ToArrDomain(models []CartLineRedisModel) []domain.CartLine
}

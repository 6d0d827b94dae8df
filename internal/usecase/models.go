package usecase

import "github.com/smartshop-tech/go-backend/internal/domain"

// CATALOG USECASE

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID            int64
	Name          string
	Price         int64
	OriginalPrice *int64
	CategoryID    int64
	CategorySlug  string
	CategoryName  string
	Image         string
	Rating        float64
	ReviewCount   int
	Description   string
	Features      []string
	Stock         int
	Brand         string
	IsNew         bool
	IsFeatured    bool
}

// CategoryInfo — DTO категории с количеством товаров в ней.
type CategoryInfo struct {
	ID           int64
	Slug         string
	Name         string
	Icon         string
	ProductCount int
}

// GetProductsReq запрос информации о товарах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных товаров.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ListProductsReq — фильтры списка товаров витрины.
type ListProductsReq struct {
	CategorySlug string
	FeaturedOnly bool
}

// Dataset — статический набор данных каталога.
type Dataset struct {
	Categories []domain.Category
	Products   []DatasetProduct
}

// DatasetProduct — товар из набора данных: категория задана слагом,
// идентификатор категории присваивается при посеве.
type DatasetProduct struct {
	Product      domain.Product
	CategorySlug string
}

// CHECKOUT USECASE

// PlaceOrderReq — запрос на оформление заказа.
type PlaceOrderReq struct {
	Address       domain.ShippingAddress
	PaymentMethod domain.PaymentMethod
}

// PlaceOrderRes — результат имитированного оформления заказа.
type PlaceOrderRes struct {
	OrderID string
	Summary domain.OrderSummary
}

// REPOSITORIES

type UpsertProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

// MAPPERS

func NewUpsertProductRes(product *domain.Product, noChanges bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product:   product,
		NoChanges: noChanges,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewPlaceOrderReq(address domain.ShippingAddress, method domain.PaymentMethod) *PlaceOrderReq {
	return &PlaceOrderReq{
		Address:       address,
		PaymentMethod: method,
	}
}

// ToDomain возвращает снимок товара для позиции корзины.
func (p ProductInfo) ToDomain() domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		CategoryID:    p.CategoryID,
		Image:         p.Image,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Description:   p.Description,
		Features:      p.Features,
		Stock:         p.Stock,
		Brand:         p.Brand,
		IsNew:         p.IsNew,
		IsFeatured:    p.IsFeatured,
	}
}

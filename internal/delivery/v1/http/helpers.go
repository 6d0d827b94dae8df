package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/money"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrNilProduct):
		return http.StatusBadRequest, e.ErrNilProduct.Error()
	case errors.Is(err, e.ErrInvalidEmail):
		return http.StatusBadRequest, e.ErrInvalidEmail.Error()
	case errors.Is(err, e.ErrInvalidPaymentMethod):
		return http.StatusBadRequest, e.ErrInvalidPaymentMethod.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrCartEmpty):
		return http.StatusConflict, e.ErrCartEmpty.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCartNotReady):
		return http.StatusServiceUnavailable, e.ErrCartNotReady.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseIDParam читает целочисленный path-параметр {id}.
func parseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidProductID
	}
	return id, nil
}

// VIEW MODELS

// ProductResponse отражает usecase.ProductInfo: цены дублируются
// в центах и в готовой к показу строке.
type ProductResponse struct {
	ID                     int64    `json:"id"`
	Name                   string   `json:"name"`
	Price                  int64    `json:"price"`
	PriceFormatted         string   `json:"price_formatted"`
	OriginalPrice          *int64   `json:"original_price,omitempty"`
	OriginalPriceFormatted *string  `json:"original_price_formatted,omitempty"`
	Category               string   `json:"category"`
	CategoryName           string   `json:"category_name"`
	Image                  string   `json:"image"`
	Rating                 float64  `json:"rating"`
	ReviewCount            int      `json:"review_count"`
	Description            string   `json:"description"`
	Features               []string `json:"features"`
	Stock                  int      `json:"stock"`
	Brand                  string   `json:"brand"`
	IsNew                  bool     `json:"is_new"`
	IsFeatured             bool     `json:"is_featured"`
}

type CategoryResponse struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	ProductCount int    `json:"product_count"`
}

type CartItemResponse struct {
	ProductID          int64  `json:"product_id"`
	Name               string `json:"name"`
	Price              int64  `json:"price"`
	PriceFormatted     string `json:"price_formatted"`
	Image              string `json:"image"`
	Quantity           int    `json:"quantity"`
	LineTotal          int64  `json:"line_total"`
	LineTotalFormatted string `json:"line_total_formatted"`
}

type CartResponse struct {
	Items             []CartItemResponse `json:"items"`
	ItemCount         int                `json:"item_count"`
	Subtotal          int64              `json:"subtotal"`
	SubtotalFormatted string             `json:"subtotal_formatted"`
	Tax               int64              `json:"tax"`
	TaxFormatted      string             `json:"tax_formatted"`
	Total             int64              `json:"total"`
	TotalFormatted    string             `json:"total_formatted"`
}

type OrderResponse struct {
	OrderID           string       `json:"order_id"`
	Summary           CartResponse `json:"summary"`
	Shipping          int64        `json:"shipping"`
	ShippingFormatted string       `json:"shipping_formatted"`
}

func NewProductResponse(p usecase.ProductInfo) ProductResponse {
	res := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		PriceFormatted: money.Format(p.Price),
		Category:       p.CategorySlug,
		CategoryName:   p.CategoryName,
		Image:          p.Image,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Description:    p.Description,
		Features:       p.Features,
		Stock:          p.Stock,
		Brand:          p.Brand,
		IsNew:          p.IsNew,
		IsFeatured:     p.IsFeatured,
	}
	if p.OriginalPrice != nil {
		formatted := money.Format(*p.OriginalPrice)
		res.OriginalPrice = p.OriginalPrice
		res.OriginalPriceFormatted = &formatted
	}
	return res
}

func NewCartResponse(state domain.CartState) CartResponse {
	items := make([]CartItemResponse, 0, len(state.Items))
	for _, line := range state.Items {
		lineTotal := money.LineTotal(line.Product.Price, line.Quantity)
		items = append(items, CartItemResponse{
			ProductID:          line.Product.ID,
			Name:               line.Product.Name,
			Price:              line.Product.Price,
			PriceFormatted:     money.Format(line.Product.Price),
			Image:              line.Product.Image,
			Quantity:           line.Quantity,
			LineTotal:          lineTotal,
			LineTotalFormatted: money.Format(lineTotal),
		})
	}

	return CartResponse{
		Items:             items,
		ItemCount:         state.ItemCount,
		Subtotal:          state.Subtotal,
		SubtotalFormatted: money.Format(state.Subtotal),
		Tax:               state.Tax,
		TaxFormatted:      money.Format(state.Tax),
		Total:             state.Total,
		TotalFormatted:    money.Format(state.Total),
	}
}

func NewOrderResponse(res *usecase.PlaceOrderRes) OrderResponse {
	summary := domain.CartState{
		Items:     res.Summary.Items,
		ItemCount: res.Summary.ItemCount,
		Subtotal:  res.Summary.Subtotal,
		Tax:       res.Summary.Tax,
		Total:     res.Summary.Total,
	}
	return OrderResponse{
		OrderID:           res.OrderID,
		Summary:           NewCartResponse(summary),
		Shipping:          res.Summary.Shipping,
		ShippingFormatted: money.Format(res.Summary.Shipping),
	}
}

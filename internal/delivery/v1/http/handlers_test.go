package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

var taxRate = decimal.RequireFromString("0.10")

type fakeCatalogUC struct {
	products   []usecase.ProductInfo
	categories []usecase.CategoryInfo
	listErr    error
}

func (f *fakeCatalogUC) Seed(ctx context.Context) error { return nil }

func (f *fakeCatalogUC) ListProducts(ctx context.Context, req *usecase.ListProductsReq) ([]usecase.ProductInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	res := make([]usecase.ProductInfo, 0, len(f.products))
	for _, p := range f.products {
		if req.CategorySlug != "" && p.CategorySlug != req.CategorySlug {
			continue
		}
		if req.FeaturedOnly && !p.IsFeatured {
			continue
		}
		res = append(res, p)
	}
	return res, nil
}

func (f *fakeCatalogUC) GetProductsInfo(ctx context.Context, req *usecase.GetProductsReq) (*usecase.GetProductsRes, error) {
	return usecase.NewGetProductsRes(f.products, nil), nil
}

func (f *fakeCatalogUC) GetProduct(ctx context.Context, id int64) (*usecase.ProductInfo, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeCatalogUC) ListCategories(ctx context.Context) ([]usecase.CategoryInfo, error) {
	return f.categories, nil
}

type fakeCartUC struct {
	state domain.CartState
}

func (f *fakeCartUC) AddItem(ctx context.Context, product *domain.Product, quantity int) (domain.CartState, error) {
	if product == nil {
		return domain.CartState{}, e.ErrNilProduct
	}
	if quantity <= 0 {
		return domain.CartState{}, e.ErrInvalidQuantity
	}
	items := append(f.state.Items, domain.NewCartLine(*product, quantity))
	f.state = domain.NewCartState(items, taxRate)
	return f.state, nil
}

func (f *fakeCartUC) RemoveItem(ctx context.Context, productID int64) (domain.CartState, error) {
	items := make([]domain.CartLine, 0, len(f.state.Items))
	for _, line := range f.state.Items {
		if line.Product.ID != productID {
			items = append(items, line)
		}
	}
	f.state = domain.NewCartState(items, taxRate)
	return f.state, nil
}

func (f *fakeCartUC) SetQuantity(ctx context.Context, productID int64, quantity int) (domain.CartState, error) {
	if quantity <= 0 {
		return f.RemoveItem(ctx, productID)
	}
	for i, line := range f.state.Items {
		if line.Product.ID == productID {
			f.state.Items[i].Quantity = quantity
		}
	}
	f.state = domain.NewCartState(f.state.Items, taxRate)
	return f.state, nil
}

func (f *fakeCartUC) Clear(ctx context.Context) (domain.CartState, error) {
	f.state = domain.EmptyCartState()
	return f.state, nil
}

func (f *fakeCartUC) Contains(productID int64) bool  { return false }
func (f *fakeCartUC) QuantityOf(productID int64) int { return 0 }
func (f *fakeCartUC) Snapshot() domain.CartState     { return f.state.Clone() }
func (f *fakeCartUC) Subscribe(fn func(domain.CartState)) func() {
	return func() {}
}

var testProducts = []usecase.ProductInfo{
	{
		ID:           1,
		Name:         "Nebula X5 Pro",
		Price:        99999,
		CategoryID:   1,
		CategorySlug: "mobiles",
		CategoryName: "Mobiles",
		Stock:        42,
		Brand:        "Nebula",
		IsFeatured:   true,
	},
	{
		ID:           2,
		Name:         "Bolt 65W GaN Charger",
		Price:        3999,
		CategoryID:   3,
		CategorySlug: "accessories",
		CategoryName: "Accessories",
		Stock:        340,
		Brand:        "Bolt",
	},
}

func newCatalogRouter(catalog *fakeCatalogUC) *chi.Mux {
	r := chi.NewRouter()
	registerCatalogRoutes(r, NewCatalogHandler(catalog, nopLogger{}))
	return r
}

func newCartRouter(cart *fakeCartUC, catalog *fakeCatalogUC) *chi.Mux {
	r := chi.NewRouter()
	registerCartRoutes(r, NewCartHandler(cart, catalog, nopLogger{}))
	return r
}

func TestListProducts(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res []ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "Nebula X5 Pro", res[0].Name)
	assert.Equal(t, "999.99", res[0].PriceFormatted)
}

func TestListProductsFiltered(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodGet, "/products?category=accessories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res []ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, int64(2), res[0].ID)
}

func TestGetProduct(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(1), res.ID)
}

func TestGetProductNotFound(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodGet, "/products/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductBadID(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategories(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogUC{categories: []usecase.CategoryInfo{
		{ID: 1, Slug: "mobiles", Name: "Mobiles", Icon: "smartphone", ProductCount: 3},
	}})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res []CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "mobiles", res[0].Slug)
	assert.Equal(t, 3, res[0].ProductCount)
}

func TestAddItem(t *testing.T) {
	cart := &fakeCartUC{state: domain.EmptyCartState()}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	body, _ := json.Marshal(addItemRequest{ProductID: 1, Quantity: 2})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Items[0].Quantity)
	assert.Equal(t, int64(199998), res.Subtotal)
	assert.Equal(t, res.Subtotal+res.Tax, res.Total)
}

func TestAddItemUnknownProduct(t *testing.T) {
	cart := &fakeCartUC{state: domain.EmptyCartState()}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	body, _ := json.Marshal(addItemRequest{ProductID: 99, Quantity: 1})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItemInvalidBody(t *testing.T) {
	cart := &fakeCartUC{state: domain.EmptyCartState()}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	cart := &fakeCartUC{state: domain.EmptyCartState()}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	body, _ := json.Marshal(addItemRequest{ProductID: 2})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Items[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	product := testProducts[0].ToDomain()
	cart := &fakeCartUC{state: domain.NewCartState([]domain.CartLine{
		domain.NewCartLine(product, 1),
	}, taxRate)}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	body, _ := json.Marshal(setQuantityRequest{Quantity: 5})
	req := httptest.NewRequest(http.MethodPut, "/cart/items/1", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, 5, res.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	product := testProducts[0].ToDomain()
	cart := &fakeCartUC{state: domain.NewCartState([]domain.CartLine{
		domain.NewCartLine(product, 1),
	}, taxRate)}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Items)
}

func TestGetCart(t *testing.T) {
	product := testProducts[0].ToDomain()
	cart := &fakeCartUC{state: domain.NewCartState([]domain.CartLine{
		domain.NewCartLine(product, 2),
	}, taxRate)}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.ItemCount)
	assert.Equal(t, "1999.98", res.SubtotalFormatted)
}

func TestClearCart(t *testing.T) {
	product := testProducts[0].ToDomain()
	cart := &fakeCartUC{state: domain.NewCartState([]domain.CartLine{
		domain.NewCartLine(product, 2),
	}, taxRate)}
	router := newCartRouter(cart, &fakeCatalogUC{products: testProducts})

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(0), res.Total)
}

type fakeCheckoutUC struct {
	res *usecase.PlaceOrderRes
	err error
}

func (f *fakeCheckoutUC) PlaceOrder(ctx context.Context, req *usecase.PlaceOrderReq) (*usecase.PlaceOrderRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newCheckoutRouter(checkout *fakeCheckoutUC) *chi.Mux {
	r := chi.NewRouter()
	registerCheckoutRoutes(r, NewCheckoutHandler(checkout, nopLogger{}))
	return r
}

func validCheckoutBody() []byte {
	body, _ := json.Marshal(placeOrderRequest{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "+1 555 0100",
		Address:       "1 Main St",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62701",
		Country:       "USA",
		PaymentMethod: "card",
	})
	return body
}

func TestPlaceOrderHandler(t *testing.T) {
	product := testProducts[0].ToDomain()
	state := domain.NewCartState([]domain.CartLine{domain.NewCartLine(product, 1)}, taxRate)
	checkout := &fakeCheckoutUC{res: &usecase.PlaceOrderRes{
		OrderID: "order-123",
		Summary: domain.NewOrderSummary(state),
	}}
	router := newCheckoutRouter(checkout)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(validCheckoutBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var res OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "order-123", res.OrderID)
	assert.Equal(t, 1, res.Summary.ItemCount)
	assert.Equal(t, int64(0), res.Shipping)
	assert.Equal(t, "0.00", res.ShippingFormatted)
}

func TestPlaceOrderHandlerEmptyCart(t *testing.T) {
	router := newCheckoutRouter(&fakeCheckoutUC{err: e.ErrCartEmpty})

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(validCheckoutBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPlaceOrderHandlerValidationError(t *testing.T) {
	router := newCheckoutRouter(&fakeCheckoutUC{err: e.ErrInvalidEmail})

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(validCheckoutBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, e.ErrInvalidEmail.Error(), res.Message)
}

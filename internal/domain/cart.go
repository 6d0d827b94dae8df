package domain

import (
	"github.com/shopspring/decimal"
	"github.com/smartshop-tech/go-backend/pkg/money"
)

// CartLine — одна позиция корзины: снимок товара и положительное количество.
// Инвариант корзины: не более одной позиции на товар, позиции с
// неположительным количеством не существуют.
type CartLine struct {
	Product  Product
	Quantity int
}

func NewCartLine(product Product, quantity int) CartLine {
	return CartLine{
		Product:  product,
		Quantity: quantity,
	}
}

// CartState — список позиций корзины и производные поля.
// Производные поля никогда не изменяются отдельно от списка позиций:
// единственный способ получить состояние — NewCartState.
type CartState struct {
	Items     []CartLine
	ItemCount int
	Subtotal  int64 // в центах
	Tax       int64 // в центах
	Total     int64 // в центах
}

// NewCartState пересчитывает производные поля по списку позиций.
func NewCartState(items []CartLine, taxRate decimal.Decimal) CartState {
	lines := make([]money.Line, len(items))
	for i, item := range items {
		lines[i] = money.Line{PriceCents: item.Product.Price, Quantity: item.Quantity}
	}

	subtotal := money.Subtotal(lines)
	tax := money.Tax(subtotal, taxRate)

	return CartState{
		Items:     items,
		ItemCount: money.ItemCount(lines),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     money.Total(subtotal, tax),
	}
}

// EmptyCartState возвращает пустое состояние корзины.
func EmptyCartState() CartState {
	return CartState{Items: []CartLine{}}
}

// Clone возвращает копию состояния с собственным списком позиций,
// чтобы подписчики не могли изменить состояние хранилища.
func (s CartState) Clone() CartState {
	cp := s
	cp.Items = make([]CartLine, len(s.Items))
	copy(cp.Items, s.Items)

	return cp
}

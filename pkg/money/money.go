// Package money содержит денежную арифметику корзины.
// Все суммы хранятся в центах (int64), округление — только на границе
// вычисления налога и при разборе/форматировании строковых цен.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smartshop-tech/go-backend/pkg/e"
)

// DefaultTaxRate — фиксированная ставка налога (10%).
var DefaultTaxRate = decimal.RequireFromString("0.10")

// LineTotal возвращает стоимость позиции: цена в центах * количество.
func LineTotal(priceCents int64, quantity int) int64 {
	return priceCents * int64(quantity)
}

// Line — пара (цена в центах, количество) для расчёта итогов.
type Line struct {
	PriceCents int64
	Quantity   int
}

// Subtotal возвращает сумму стоимостей всех позиций в центах.
func Subtotal(lines []Line) int64 {
	var sum int64
	for _, line := range lines {
		sum += LineTotal(line.PriceCents, line.Quantity)
	}

	return sum
}

// Tax возвращает налог от суммы в центах, округлённый до целого цента.
// Round у decimal для неотрицательных значений — это round-half-up.
func Tax(subtotalCents int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(subtotalCents).Mul(rate).Round(0).IntPart()
}

// Total возвращает итоговую сумму: подытог + налог.
func Total(subtotalCents, taxCents int64) int64 {
	return subtotalCents + taxCents
}

// ItemCount возвращает суммарное количество единиц товара.
func ItemCount(lines []Line) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}

// Format форматирует цену в центах как строку с двумя знаками ("219.98").
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ParseCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (10^9 dollars)
func ParseCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

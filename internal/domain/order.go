package domain

// PaymentMethod — способ оплаты, поддерживаемый витриной.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// Valid сообщает, входит ли способ оплаты в поддерживаемый набор.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodCOD
}

// ShippingAddress — адрес доставки, живёт только в рамках оформления заказа.
type ShippingAddress struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	ZipCode  string
	Country  string
}

// OrderSummary — сводка заказа, построенная из снимка корзины на момент
// оформления. Никуда не сохраняется.
type OrderSummary struct {
	Items     []CartLine
	ItemCount int
	Subtotal  int64
	Shipping  int64 // всегда 0: доставка бесплатная
	Tax       int64
	Total     int64
}

func NewOrderSummary(state CartState) OrderSummary {
	return OrderSummary{
		Items:     state.Items,
		ItemCount: state.ItemCount,
		Subtotal:  state.Subtotal,
		Shipping:  0,
		Tax:       state.Tax,
		Total:     state.Total,
	}
}

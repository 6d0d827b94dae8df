package http

import (
	"encoding/json"
	"net/http"

	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

type placeOrderRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Проверяет адрес и способ оплаты, формирует сводку заказа и очищает корзину
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		placeOrderRequest	true	"Адрес доставки и способ оплаты"
//	@Success		201		{object}	OrderResponse		"Сводка оформленного заказа"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse		"Корзина пуста"
//	@Router			/checkout [post]
func (h *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	ucReq := usecase.NewPlaceOrderReq(domain.ShippingAddress{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Country:  req.Country,
	}, domain.PaymentMethod(req.PaymentMethod))

	res, err := h.checkoutUsecase.PlaceOrder(r.Context(), ucReq)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewOrderResponse(res))
}

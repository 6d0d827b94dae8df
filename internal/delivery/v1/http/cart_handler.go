package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase    usecase.CartUC
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, catalogUsecase usecase.CatalogUC, logger logger.Logger) *CartHandler {
	return &CartHandler{
		cartUsecase:    cartUsecase,
		catalogUsecase: catalogUsecase,
		logger:         logger,
	}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// getCart
//
//	@Summary		Текущее состояние корзины
//	@Description	Возвращает позиции корзины и пересчитанные суммы
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse	"Состояние корзины"
//	@Failure		503	{object}	ErrorResponse	"Корзина ещё не загружена"
//	@Router			/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cartUsecase.Snapshot()))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Добавляет товар каталога в корзину или увеличивает количество существующей позиции
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addItemRequest	true	"Товар и количество"
//	@Success		200		{object}	CartResponse	"Состояние корзины после добавления"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.ProductID <= 0 {
		WriteError(w, e.ErrInvalidProductID)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalogUsecase.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	snapshot := product.ToDomain()
	state, err := h.cartUsecase.AddItem(r.Context(), &snapshot, req.Quantity)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(state))
}

// setQuantity
//
//	@Summary		Изменение количества позиции
//	@Description	Устанавливает количество позиции; ноль и меньше удаляют позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Идентификатор товара"
//	@Param			request	body		setQuantityRequest	true	"Новое количество"
//	@Success		200		{object}	CartResponse		"Состояние корзины после изменения"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	state, err := h.cartUsecase.SetQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(state))
}

// removeItem
//
//	@Summary		Удаление позиции из корзины
//	@Description	Удаляет позицию целиком; отсутствующая позиция не является ошибкой
//	@Tags			cart
//	@Produce		json
//	@Param			id	path		int				true	"Идентификатор товара"
//	@Success		200	{object}	CartResponse	"Состояние корзины после удаления"
//	@Failure		400	{object}	ErrorResponse	"Некорректный идентификатор"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.cartUsecase.RemoveItem(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(state))
}

// clearCart
//
//	@Summary		Очистка корзины
//	@Description	Удаляет все позиции корзины
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse	"Пустая корзина"
//	@Router			/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	state, err := h.cartUsecase.Clear(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(state))
}

// streamCartEvents
//
//	@Summary		Поток изменений корзины
//	@Description	Server-Sent Events: отдаёт снимок корзины после каждой мутации
//	@Tags			cart
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"Поток событий cart"
//	@Router			/cart/events [get]
func (h *CartHandler) streamCartEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, e.ErrInternalServerError)
		return
	}

	// Соединение живёт дольше WriteTimeout сервера
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Warnf("sse: reset write deadline: %s", err.Error())
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Буфер на одно состояние: при отставании подписчика промежуточные
	// снимки заменяются последним
	states := make(chan domain.CartState, 1)
	unsubscribe := h.cartUsecase.Subscribe(func(state domain.CartState) {
		select {
		case states <- state:
		default:
			select {
			case <-states:
			default:
			}
			select {
			case states <- state:
			default:
			}
		}
	})
	defer unsubscribe()

	if err := writeCartEvent(w, h.cartUsecase.Snapshot()); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case state := <-states:
			if err := writeCartEvent(w, state); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeCartEvent(w http.ResponseWriter, state domain.CartState) error {
	data, err := json.Marshal(NewCartResponse(state))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: cart\ndata: %s\n\n", data)
	return err
}

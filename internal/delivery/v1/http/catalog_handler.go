package http

import (
	"net/http"

	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров витрины
//	@Description	Возвращает товары каталога, опционально отфильтрованные по категории и признаку featured
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query		string			false	"Слаг категории"
//	@Param			featured	query		bool			false	"Только рекомендуемые товары"
//	@Success		200			{array}		ProductResponse	"Список товаров"
//	@Failure		500			{object}	ErrorResponse	"Внутренняя ошибка"
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := &usecase.ListProductsReq{
		CategorySlug: r.URL.Query().Get("category"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
	}

	products, err := h.catalogUsecase.ListProducts(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, NewProductResponse(p))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает один товар каталога по идентификатору
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int				true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse	"Товар"
//	@Failure		400	{object}	ErrorResponse	"Некорректный идентификатор"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), r.URL.Path)
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(*product))
}

// listCategories
//
//	@Summary		Категории каталога
//	@Description	Возвращает категории с количеством товаров в каждой
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		CategoryResponse	"Список категорий"
//	@Failure		500	{object}	ErrorResponse		"Внутренняя ошибка"
//	@Router			/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, CategoryResponse{
			ID:           c.ID,
			Slug:         c.Slug,
			Name:         c.Name,
			Icon:         c.Icon,
			ProductCount: c.ProductCount,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}

package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/smartshop-tech/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		cartHandler := NewCartHandler(cartUC, catalogUC, r.logger)
		registerCartRoutes(v1, cartHandler)

		checkoutHandler := NewCheckoutHandler(checkoutUC, r.logger)
		registerCheckoutRoutes(v1, checkoutHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
	})
	router.Get("/categories", h.listCategories)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", h.getCart)
		c.Delete("/", h.clearCart)
		c.Get("/events", h.streamCartEvents)
		c.Post("/items", h.addItem)
		c.Put("/items/{id}", h.setQuantity)
		c.Delete("/items/{id}", h.removeItem)
	})
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Post("/checkout", h.placeOrder)
}

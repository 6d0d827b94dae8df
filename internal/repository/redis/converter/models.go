package converter

// ProductInfoRedisModel — кэшируемое представление товара.
type ProductInfoRedisModel struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	CategoryID    int64    `json:"category_id"`
	CategorySlug  string   `json:"category_slug"`
	CategoryName  string   `json:"category_name"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Stock         int      `json:"stock"`
	Brand         string   `json:"brand"`
	IsNew         bool     `json:"is_new"`
	IsFeatured    bool     `json:"is_featured"`
}

// ProductSnapshotRedisModel — снимок товара внутри сохранённой позиции
// корзины. Снимок намеренно не содержит служебных полей каталога.
type ProductSnapshotRedisModel struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	CategoryID    int64    `json:"category_id"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Stock         int      `json:"stock"`
	Brand         string   `json:"brand"`
	IsNew         bool     `json:"is_new"`
	IsFeatured    bool     `json:"is_featured"`
}

// CartLineRedisModel — сохранённая позиция корзины: снимок товара и количество.
type CartLineRedisModel struct {
	Product  ProductSnapshotRedisModel `json:"product"`
	Quantity int                       `json:"quantity"`
}

package domain

import "time"

// Product описывает товар витрины
type Product struct {
	ID            int64
	Name          string
	Price         int64  // Цена хранится в центах
	OriginalPrice *int64 // Цена до скидки в центах, nil если скидки нет
	CategoryID    int64
	Image         string
	Rating        float64
	ReviewCount   int
	Description   string
	Features      []string
	Stock         int
	Brand         string
	IsNew         bool
	IsFeatured    bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	IsArchived    bool
}

func NewProduct(id int64, name string, price int64, categoryID int64) *Product {
	return &Product{
		ID:         id,
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
	}
}

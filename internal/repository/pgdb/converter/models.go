package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Price         int64      `db:"price"`
	OriginalPrice *int64     `db:"original_price"`
	CategoryID    int64      `db:"category_id"`
	Image         string     `db:"image"`
	Rating        float64    `db:"rating"`
	ReviewCount   int        `db:"review_count"`
	Description   string     `db:"description"`
	Features      []string   `db:"features"`
	Stock         int        `db:"stock"`
	Brand         string     `db:"brand"`
	IsNew         bool       `db:"is_new"`
	IsFeatured    bool       `db:"is_featured"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
	IsArchived    bool       `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID         int64      `db:"id"`
	Slug       string     `db:"slug"`
	Name       string     `db:"name"`
	Icon       string     `db:"icon"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

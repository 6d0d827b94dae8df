package domain

import "time"

// Category описывает категорию товара.
// Slug — фиксированный машинный идентификатор категории из набора данных
// каталога ("mobiles", "laptops", "accessories", "smart-devices").
type Category struct {
	ID         int64
	Slug       string
	Name       string
	Icon       string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewCategory(slug, name, icon string) *Category {
	return &Category{
		Slug: slug,
		Name: name,
		Icon: icon,
	}
}

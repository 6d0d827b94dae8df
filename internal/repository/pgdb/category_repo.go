package pgdb

import (
	"context"

	"github.com/jimlawless/whereami"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/tr"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool Querier
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool Querier, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// CreateOrGet идемпотентно создаёт категорию по слагу.
// Существующая категория обновляет имя и иконку из набора данных и
// возвращается с её идентификатором.
func (c *CategoryRepo) CreateOrGet(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO categories(slug, name, icon) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			icon = EXCLUDED.icon
		RETURNING id, slug, name, icon, created_at, updated_at, is_archived;
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Slug, category.Name, category.Icon).
		Scan(
			&model.ID, &model.Slug, &model.Name, &model.Icon,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает все категории с количеством товаров в каждой.
func (c *CategoryRepo) List(ctx context.Context) ([]usecase.CategoryInfo, error) {
	query := `
		SELECT cat.id, cat.slug, cat.name, cat.icon, COUNT(pr.id)
		FROM categories cat
		LEFT JOIN products pr ON pr.category_id = cat.id AND NOT pr.is_archived
		WHERE NOT cat.is_archived
		GROUP BY cat.id, cat.slug, cat.name, cat.icon
		ORDER BY cat.id
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CategoryInfo, 0)
	for rows.Next() {
		var category usecase.CategoryInfo
		if err := rows.Scan(
			&category.ID, &category.Slug, &category.Name,
			&category.Icon, &category.ProductCount,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

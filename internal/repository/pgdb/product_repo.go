package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/tr"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool Querier
	conv converter.ProductConverter
}

func NewProductRepo(pool Querier, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Upsert идемпотентно создаёт или обновляет товар по идентификатору из
// набора данных. Запись обновляется только при фактическом изменении полей.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*usecase.UpsertProductRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH upsert AS (
		INSERT INTO products (
			id, name, price, original_price, category_id, image, rating,
			review_count, description, features, stock, brand, is_new, is_featured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			category_id = EXCLUDED.category_id,
			image = EXCLUDED.image,
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			description = EXCLUDED.description,
			features = EXCLUDED.features,
			stock = EXCLUDED.stock,
			brand = EXCLUDED.brand,
			is_new = EXCLUDED.is_new,
			is_featured = EXCLUDED.is_featured,
			updated_at = NOW()
		WHERE
			products.name IS DISTINCT FROM EXCLUDED.name OR
			products.price IS DISTINCT FROM EXCLUDED.price OR
			products.original_price IS DISTINCT FROM EXCLUDED.original_price OR
			products.category_id IS DISTINCT FROM EXCLUDED.category_id OR
			products.image IS DISTINCT FROM EXCLUDED.image OR
			products.rating IS DISTINCT FROM EXCLUDED.rating OR
			products.review_count IS DISTINCT FROM EXCLUDED.review_count OR
			products.description IS DISTINCT FROM EXCLUDED.description OR
			products.features IS DISTINCT FROM EXCLUDED.features OR
			products.stock IS DISTINCT FROM EXCLUDED.stock OR
			products.brand IS DISTINCT FROM EXCLUDED.brand OR
			products.is_new IS DISTINCT FROM EXCLUDED.is_new OR
			products.is_featured IS DISTINCT FROM EXCLUDED.is_featured
		RETURNING
			id, name, price, original_price, category_id, image, rating,
			review_count, description, features, stock, brand, is_new,
			is_featured, created_at, updated_at, is_archived
		)
		SELECT
			id, name, price, original_price, category_id, image, rating,
			review_count, description, features, stock, brand, is_new,
			is_featured, created_at, updated_at, is_archived,
			false AS no_changes
		FROM upsert

		UNION ALL

		SELECT
			id, name, price, original_price, category_id, image, rating,
			review_count, description, features, stock, brand, is_new,
			is_featured, created_at, updated_at, is_archived,
			true AS no_changes
		FROM products
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.ProductModel
	var noChanges bool
	err = tx.QueryRow(ctx, query,
		product.ID, product.Name, product.Price, product.OriginalPrice,
		product.CategoryID, product.Image, product.Rating, product.ReviewCount,
		product.Description, product.Features, product.Stock, product.Brand,
		product.IsNew, product.IsFeatured,
	).Scan(
		&model.ID, &model.Name, &model.Price, &model.OriginalPrice,
		&model.CategoryID, &model.Image, &model.Rating, &model.ReviewCount,
		&model.Description, &model.Features, &model.Stock, &model.Brand,
		&model.IsNew, &model.IsFeatured, &model.CreatedAt, &model.UpdatedAt,
		&model.IsArchived, &noChanges,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewUpsertProductRes(p.conv.ToEntity(&model), noChanges), nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам,
// включая категорию.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT
			pr.id, pr.name, pr.price, pr.original_price, pr.category_id,
			cat.slug, cat.name, pr.image, pr.rating, pr.review_count,
			pr.description, pr.features, pr.stock, pr.brand, pr.is_new, pr.is_featured
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1) AND NOT pr.is_archived
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProductsInfo(rows)
}

// List возвращает товары витрины с учётом фильтров по категории и признаку
// «рекомендуемый», в порядке идентификаторов.
func (p *ProductRepo) List(ctx context.Context, filter *usecase.ListProductsReq) ([]usecase.ProductInfo, error) {
	query := `
		SELECT
			pr.id, pr.name, pr.price, pr.original_price, pr.category_id,
			cat.slug, cat.name, pr.image, pr.rating, pr.review_count,
			pr.description, pr.features, pr.stock, pr.brand, pr.is_new, pr.is_featured
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE NOT pr.is_archived
		  AND ($1 = '' OR cat.slug = $1)
		  AND (NOT $2 OR pr.is_featured)
		ORDER BY pr.id
	`

	rows, err := p.pool.Query(ctx, query, filter.CategorySlug, filter.FeaturedOnly)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProductsInfo(rows)
}

func scanProductsInfo(rows pgx.Rows) ([]usecase.ProductInfo, error) {
	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Price, &product.OriginalPrice,
			&product.CategoryID, &product.CategorySlug, &product.CategoryName,
			&product.Image, &product.Rating, &product.ReviewCount,
			&product.Description, &product.Features, &product.Stock,
			&product.Brand, &product.IsNew, &product.IsFeatured,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

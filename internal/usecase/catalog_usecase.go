package usecase

import (
	"context"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
	"github.com/smartshop-tech/go-backend/pkg/tr"
)

// CatalogUseCase реализует чтение каталога витрины и посев статического
// набора данных. Каталог неизменяем после посева: витрина его только читает.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	dataset      DatasetInfra
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	dataset DatasetInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		dataset:      dataset,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// Seed идемпотентно загружает статический набор данных каталога в БД в
// одной транзакции. Повторный посев того же набора не меняет записи.
func (c *CatalogUseCase) Seed(ctx context.Context) error {
	const op = "CatalogUseCase.Seed"

	ds, err := c.dataset.LoadDataset(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	if len(ds.Products) == 0 {
		return e.Wrap(op, e.ErrEmptyDataset)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction().(pgx.Tx))

	// идемпотентное создание категорий
	categoryIDs := make(map[string]int64, len(ds.Categories))
	for i := range ds.Categories {
		category, catErr := c.categoryRepo.CreateOrGet(ctx, &ds.Categories[i])
		if catErr != nil {
			err = catErr
			return e.Wrap(op, err)
		}
		categoryIDs[category.Slug] = category.ID
	}

	// идемпотентное создание товаров; меняются только записи с новыми данными
	var changed []int64
	for _, dp := range ds.Products {
		product := dp.Product
		categoryID, ok := categoryIDs[dp.CategorySlug]
		if !ok {
			c.logger.Warnf("dataset product %d references unknown category %q, skipped", product.ID, dp.CategorySlug)
			continue
		}
		product.CategoryID = categoryID

		res, upErr := c.productRepo.Upsert(ctx, &product)
		if upErr != nil {
			err = upErr
			return e.Wrap(op, err)
		}
		if !res.NoChanges {
			changed = append(changed, res.Product.ID)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	// Удаление из кэша устаревших данных изменившихся товаров
	if len(changed) > 0 {
		if err := c.cacheRepo.DeleteProducts(ctx, changed); err != nil {
			c.logger.Warnf("Failed to invalidate products cache: %v", e.Wrap(op, err))
		}
	}

	c.logger.Infof("catalog seeded: %d categories, %d products (%d changed)",
		len(ds.Categories), len(ds.Products), len(changed))

	return nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам.
func (c *CatalogUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "CatalogUseCase.GetProductsInfo"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	// Поиск товаров в кэше
	cacheProductsMap, err := c.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	// Получение товаров из БД
	var productsFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsFromDB, err = c.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProducts(bgCtx, productsFromDB); err != nil {
				c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsFromDB))
	for _, product := range productsFromDB {
		dbProductsMap[product.ID] = product
	}

	// Формирование результата
	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// GetProduct возвращает один товар или e.ErrProductNotFound.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "CatalogUseCase.GetProduct"

	res, err := c.GetProductsInfo(ctx, NewGetProductsReq([]int64{id}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(res.Products) == 0 {
		return nil, e.ErrProductNotFound
	}

	return &res.Products[0], nil
}

// ListProducts возвращает товары витрины с учётом фильтров.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// ListCategories возвращает все категории каталога.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

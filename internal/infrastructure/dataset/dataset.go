package dataset

import (
	"context"
	"encoding/json"
	"os"

	"github.com/smartshop-tech/go-backend/internal/cfg"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
	"github.com/smartshop-tech/go-backend/pkg/money"
)

// FileInfrastructure читает статический набор данных каталога из JSON-файла.
// Цены в файле записаны в долларах и переводятся в центы при загрузке.
type FileInfrastructure struct {
	cfg    *cfg.CatalogCfg
	logger logger.Logger
}

func NewFileInfrastructure(cfg *cfg.CatalogCfg, logger logger.Logger) *FileInfrastructure {
	return &FileInfrastructure{
		cfg:    cfg,
		logger: logger,
	}
}

// fileCategory и fileProduct повторяют схему файла данных.
// Категория идентифицируется слагом, товар ссылается на неё по слагу.
type fileCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type fileProduct struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Price         json.Number  `json:"price"`
	OriginalPrice *json.Number `json:"originalPrice,omitempty"`
	Category      string       `json:"category"`
	Image         string       `json:"image"`
	Rating        float64      `json:"rating"`
	ReviewCount   int          `json:"reviewCount"`
	Description   string       `json:"description"`
	Features      []string     `json:"features"`
	Stock         int          `json:"stock"`
	Brand         string       `json:"brand"`
	IsNew         bool         `json:"isNew,omitempty"`
	IsFeatured    bool         `json:"isFeatured,omitempty"`
}

type fileDataset struct {
	Categories []fileCategory `json:"categories"`
	Products   []fileProduct  `json:"products"`
}

// LoadDataset читает и разбирает файл набора данных.
// Некорректная цена любого товара делает весь набор невалидным.
func (f *FileInfrastructure) LoadDataset(ctx context.Context) (*usecase.Dataset, error) {
	const op = "FileInfrastructure.LoadDataset"

	raw, err := os.ReadFile(f.cfg.DataPath)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var file fileDataset
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, e.Wrap(op, err)
	}

	ds := &usecase.Dataset{
		Categories: make([]domain.Category, 0, len(file.Categories)),
		Products:   make([]usecase.DatasetProduct, 0, len(file.Products)),
	}

	for _, c := range file.Categories {
		ds.Categories = append(ds.Categories, domain.Category{
			Slug: c.ID,
			Name: c.Name,
			Icon: c.Icon,
		})
	}

	for _, p := range file.Products {
		priceCents, err := money.ParseCents(p.Price.String())
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		var originalCents *int64
		if p.OriginalPrice != nil {
			cents, err := money.ParseCents(p.OriginalPrice.String())
			if err != nil {
				return nil, e.Wrap(op, err)
			}
			originalCents = &cents
		}

		ds.Products = append(ds.Products, usecase.DatasetProduct{
			Product: domain.Product{
				ID:            p.ID,
				Name:          p.Name,
				Price:         priceCents,
				OriginalPrice: originalCents,
				Image:         p.Image,
				Rating:        p.Rating,
				ReviewCount:   p.ReviewCount,
				Description:   p.Description,
				Features:      p.Features,
				Stock:         p.Stock,
				Brand:         p.Brand,
				IsNew:         p.IsNew,
				IsFeatured:    p.IsFeatured,
			},
			CategorySlug: p.Category,
		})
	}

	f.logger.Infof("%s: loaded %d categories, %d products from %s", op, len(ds.Categories), len(ds.Products), f.cfg.DataPath)
	return ds, nil
}

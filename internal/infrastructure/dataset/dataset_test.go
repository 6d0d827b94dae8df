package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartshop-tech/go-backend/internal/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func writeDataset(t *testing.T, content string) *FileInfrastructure {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewFileInfrastructure(&cfg.CatalogCfg{DataPath: path}, nopLogger{})
}

func TestLoadDataset(t *testing.T) {
	infra := writeDataset(t, `{
		"categories": [
			{"id": "mobiles", "name": "Mobiles", "icon": "smartphone"}
		],
		"products": [
			{
				"id": 1,
				"name": "Nebula X5 Pro",
				"price": 999.99,
				"originalPrice": 1099.99,
				"category": "mobiles",
				"image": "/images/products/nebula-x5-pro.jpg",
				"rating": 4.7,
				"reviewCount": 1284,
				"description": "Flagship smartphone",
				"features": ["256GB storage"],
				"stock": 42,
				"brand": "Nebula",
				"isNew": true,
				"isFeatured": true
			},
			{
				"id": 2,
				"name": "Nebula A2 Lite",
				"price": 250,
				"category": "mobiles",
				"image": "/images/products/nebula-a2-lite.jpg",
				"rating": 4.2,
				"reviewCount": 673,
				"description": "Everyday phone",
				"features": [],
				"stock": 120,
				"brand": "Nebula"
			}
		]
	}`)

	ds, err := infra.LoadDataset(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Categories, 1)
	assert.Equal(t, "mobiles", ds.Categories[0].Slug)
	assert.Equal(t, "Mobiles", ds.Categories[0].Name)

	require.Len(t, ds.Products, 2)
	assert.Equal(t, int64(99999), ds.Products[0].Product.Price)
	require.NotNil(t, ds.Products[0].Product.OriginalPrice)
	assert.Equal(t, int64(109999), *ds.Products[0].Product.OriginalPrice)
	assert.Equal(t, "mobiles", ds.Products[0].CategorySlug)

	assert.Equal(t, int64(25000), ds.Products[1].Product.Price)
	assert.Nil(t, ds.Products[1].Product.OriginalPrice)
}

func TestLoadDatasetMissingFile(t *testing.T) {
	infra := NewFileInfrastructure(&cfg.CatalogCfg{DataPath: "does/not/exist.json"}, nopLogger{})

	_, err := infra.LoadDataset(context.Background())
	require.Error(t, err)
}

func TestLoadDatasetInvalidPrice(t *testing.T) {
	infra := writeDataset(t, `{
		"categories": [],
		"products": [
			{"id": 1, "name": "Broken", "price": -5, "category": "mobiles"}
		]
	}`)

	_, err := infra.LoadDataset(context.Background())
	require.Error(t, err)
}

func TestLoadDatasetMalformedJSON(t *testing.T) {
	infra := writeDataset(t, `{"categories": [`)

	_, err := infra.LoadDataset(context.Background())
	require.Error(t, err)
}

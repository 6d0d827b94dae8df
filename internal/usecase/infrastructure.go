package usecase

import "context"

// DatasetInfra отдаёт статический набор данных каталога, поставляемый
// вместе с приложением. Загружается один раз при старте.
type DatasetInfra interface {
	LoadDataset(ctx context.Context) (*Dataset, error)
}

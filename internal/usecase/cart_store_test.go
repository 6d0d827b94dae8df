package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartshop-tech/go-backend/internal/cfg"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeCartRepo struct {
	mu       sync.Mutex
	saved    [][]domain.CartLine
	saveFunc func(ctx context.Context, lines []domain.CartLine) error
	loadFunc func(ctx context.Context) ([]domain.CartLine, error)
}

func (f *fakeCartRepo) Save(ctx context.Context, lines []domain.CartLine) error {
	if f.saveFunc != nil {
		return f.saveFunc(ctx, lines)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, lines)
	return nil
}

func (f *fakeCartRepo) Load(ctx context.Context) ([]domain.CartLine, error) {
	if f.loadFunc != nil {
		return f.loadFunc(ctx)
	}
	return nil, nil
}

func (f *fakeCartRepo) lastSaved() []domain.CartLine {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return nil
	}
	return f.saved[len(f.saved)-1]
}

func testCartCfg() *cfg.CartCfg {
	return &cfg.CartCfg{
		TaxRate:     decimal.RequireFromString("0.10"),
		SaveTimeout: time.Second,
		SaveRetries: 2,
		SaveBackoff: time.Millisecond,
	}
}

func testProduct(id int64, priceCents int64) *domain.Product {
	return domain.NewProduct(id, "test product", priceCents, 1)
}

func readyStore(t *testing.T, repo *fakeCartRepo) *CartStore {
	t.Helper()
	store := NewCartStore(repo, testCartCfg(), nopLogger{})
	store.Load(context.Background())
	return store
}

func TestCartStoreRejectsMutationsBeforeLoad(t *testing.T) {
	store := NewCartStore(&fakeCartRepo{}, testCartCfg(), nopLogger{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	assert.True(t, errors.Is(err, e.ErrCartNotReady))

	_, err = store.Clear(context.Background())
	assert.True(t, errors.Is(err, e.ErrCartNotReady))
}

func TestCartStoreLoadFailOpen(t *testing.T) {
	repo := &fakeCartRepo{
		loadFunc: func(ctx context.Context) ([]domain.CartLine, error) {
			return nil, errors.New("connection refused")
		},
	}
	store := NewCartStore(repo, testCartCfg(), nopLogger{})
	store.Load(context.Background())

	state, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, state.ItemCount)
}

func TestCartStoreLoadRestoresSavedLines(t *testing.T) {
	repo := &fakeCartRepo{
		loadFunc: func(ctx context.Context) ([]domain.CartLine, error) {
			return []domain.CartLine{
				domain.NewCartLine(*testProduct(1, 10000), 2),
				domain.NewCartLine(*testProduct(2, 5000), 1),
			}, nil
		},
	}
	store := readyStore(t, repo)

	state := store.Snapshot()
	assert.Len(t, state.Items, 2)
	assert.Equal(t, 3, state.ItemCount)
	assert.Equal(t, int64(25000), state.Subtotal)
}

func TestCartStoreLoadSanitizesCorruptLines(t *testing.T) {
	repo := &fakeCartRepo{
		loadFunc: func(ctx context.Context) ([]domain.CartLine, error) {
			return []domain.CartLine{
				domain.NewCartLine(*testProduct(1, 100), 2),
				domain.NewCartLine(*testProduct(2, 200), 0),
				domain.NewCartLine(*testProduct(1, 100), 3),
			}, nil
		},
	}
	store := readyStore(t, repo)

	state := store.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestCartStoreAddItem(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	state, err := store.AddItem(context.Background(), testProduct(1, 10000), 2)
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, int64(20000), state.Subtotal)
	assert.Equal(t, int64(2000), state.Tax)
	assert.Equal(t, int64(22000), state.Total)
}

func TestCartStoreAddItemMergesExistingLine(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)
	state, err := store.AddItem(context.Background(), testProduct(1, 100), 2)
	require.NoError(t, err)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
}

func TestCartStoreAddItemValidation(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), nil, 1)
	assert.True(t, errors.Is(err, e.ErrNilProduct))

	_, err = store.AddItem(context.Background(), testProduct(1, 100), 0)
	assert.True(t, errors.Is(err, e.ErrInvalidQuantity))

	_, err = store.AddItem(context.Background(), testProduct(1, 100), -5)
	assert.True(t, errors.Is(err, e.ErrInvalidQuantity))
}

func TestCartStoreRemoveItem(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)

	state, err := store.RemoveItem(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, state.Items)

	// Удаление отсутствующей позиции — no-op
	state, err = store.RemoveItem(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCartStoreSetQuantity(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)

	state, err := store.SetQuantity(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, state.Items[0].Quantity)
}

func TestCartStoreSetQuantityZeroRemovesLine(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 3)
	require.NoError(t, err)

	state, err := store.SetQuantity(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
	assert.False(t, store.Contains(1))

	_, err = store.AddItem(context.Background(), testProduct(1, 100), 3)
	require.NoError(t, err)

	state, err = store.SetQuantity(context.Background(), 1, -1)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCartStoreClear(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)
	_, err = store.AddItem(context.Background(), testProduct(2, 200), 2)
	require.NoError(t, err)

	state, err := store.Clear(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Items)
	assert.Equal(t, int64(0), state.Total)
}

func TestCartStoreContainsAndQuantityOf(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 4)
	require.NoError(t, err)

	assert.True(t, store.Contains(1))
	assert.Equal(t, 4, store.QuantityOf(1))
	assert.False(t, store.Contains(2))
	assert.Equal(t, 0, store.QuantityOf(2))
}

func TestCartStoreTotalsInvariant(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 99999), 1)
	require.NoError(t, err)
	state, err := store.AddItem(context.Background(), testProduct(2, 3999), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(107997), state.Subtotal)
	assert.Equal(t, state.Subtotal+state.Tax, state.Total)
}

func TestCartStorePersistsSnapshotInBackground(t *testing.T) {
	repo := &fakeCartRepo{}
	store := readyStore(t, repo)

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 2)
	require.NoError(t, err)

	require.NoError(t, store.WaitForPersistence(context.Background()))

	saved := repo.lastSaved()
	require.Len(t, saved, 1)
	assert.Equal(t, int64(1), saved[0].Product.ID)
	assert.Equal(t, 2, saved[0].Quantity)
}

func TestCartStorePersistFailureDoesNotAffectState(t *testing.T) {
	repo := &fakeCartRepo{
		saveFunc: func(ctx context.Context, lines []domain.CartLine) error {
			return errors.New("redis down")
		},
	}
	store := readyStore(t, repo)

	state, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, state.ItemCount)

	require.NoError(t, store.WaitForPersistence(context.Background()))
	assert.Equal(t, 1, store.Snapshot().ItemCount)
}

// Первая запись падает и повторяется уже после следующей мутации: повтор
// должен нести актуальное состояние, а не снимок на момент первой мутации.
func TestCartStorePersistRetryReflectsLatestState(t *testing.T) {
	var (
		mu        sync.Mutex
		persisted [][]domain.CartLine
		failedOne bool
	)
	firstSave := make(chan struct{})
	release := make(chan struct{})

	repo := &fakeCartRepo{}
	repo.saveFunc = func(ctx context.Context, lines []domain.CartLine) error {
		mu.Lock()
		first := !failedOne
		failedOne = true
		mu.Unlock()

		if first {
			close(firstSave)
			<-release
			return errors.New("connection reset")
		}

		mu.Lock()
		persisted = append(persisted, lines)
		mu.Unlock()
		return nil
	}

	store := readyStore(t, repo)

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)
	<-firstSave

	_, err = store.RemoveItem(context.Background(), 1)
	require.NoError(t, err)
	close(release)

	require.NoError(t, store.WaitForPersistence(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, persisted)
	for _, lines := range persisted {
		assert.Empty(t, lines)
	}
}

func TestCartStoreSubscribe(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	var mu sync.Mutex
	var notified []domain.CartState
	unsubscribe := store.Subscribe(func(state domain.CartState) {
		mu.Lock()
		defer mu.Unlock()
		notified = append(notified, state)
	})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)

	mu.Lock()
	require.Len(t, notified, 1)
	assert.Equal(t, 1, notified[0].ItemCount)
	mu.Unlock()

	unsubscribe()

	_, err = store.Clear(context.Background())
	require.NoError(t, err)

	mu.Lock()
	assert.Len(t, notified, 1)
	mu.Unlock()
}

func TestCartStoreSnapshotIsACopy(t *testing.T) {
	store := readyStore(t, &fakeCartRepo{})

	_, err := store.AddItem(context.Background(), testProduct(1, 100), 1)
	require.NoError(t, err)

	snapshot := store.Snapshot()
	snapshot.Items[0].Quantity = 99

	assert.Equal(t, 1, store.QuantityOf(1))
}

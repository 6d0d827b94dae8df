package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/smartshop-tech/go-backend/internal/cfg"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/jitter"
	"github.com/smartshop-tech/go-backend/pkg/logger"
)

type storeStatus int

const (
	statusUninitialized storeStatus = iota
	statusLoading
	statusReady
)

// CartStore владеет единственным авторитетным состоянием корзины.
// Все мутации сериализуются мьютексом и фиксируются атомарно: сразу после
// возврата операции список позиций и производные поля согласованы.
// Запись в долговременное хранилище выполняется в фоне и никогда не
// блокирует мутацию и не откатывает её.
type CartStore struct {
	mu     sync.Mutex
	status storeStatus
	state  domain.CartState

	repo   CartRepository
	cfg    *cfg.CartCfg
	logger logger.Logger

	subMu     sync.Mutex
	subs      map[int]func(domain.CartState)
	nextSubID int

	saveWG sync.WaitGroup
}

func NewCartStore(repo CartRepository, cfg *cfg.CartCfg, logger logger.Logger) *CartStore {
	return &CartStore{
		status: statusUninitialized,
		state:  domain.EmptyCartState(),
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		subs:   make(map[int]func(domain.CartState)),
	}
}

// Load однократно восстанавливает корзину из хранилища и переводит Store
// в состояние Ready. Любая ошибка чтения деградирует до пустой корзины:
// терминального состояния ошибки у загрузки нет.
func (s *CartStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == statusReady {
		return
	}
	s.status = statusLoading

	lines, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warnf("failed to load saved cart, starting empty: %v", err)
		lines = nil
	}

	s.state = domain.NewCartState(sanitizeLines(lines), s.cfg.TaxRate)
	s.status = statusReady

	s.logger.Infof("cart store ready: %d line(s) restored", len(s.state.Items))
}

// AddItem добавляет товар в корзину. Если позиция для product.ID уже есть,
// её количество увеличивается; иначе новая позиция добавляется в конец.
// Верхней границей по product.Stock хранилище намеренно не ограничивает:
// это зона ответственности потребителя.
func (s *CartStore) AddItem(ctx context.Context, product *domain.Product, quantity int) (domain.CartState, error) {
	if product == nil {
		return domain.CartState{}, e.ErrNilProduct
	}
	if quantity <= 0 {
		return domain.CartState{}, e.ErrInvalidQuantity
	}

	return s.mutate(func(items []domain.CartLine) []domain.CartLine {
		for i, item := range items {
			if item.Product.ID == product.ID {
				items[i].Quantity += quantity
				return items
			}
		}

		return append(items, domain.NewCartLine(*product, quantity))
	})
}

// RemoveItem удаляет позицию по идентификатору товара.
// Отсутствие позиции не является ошибкой.
func (s *CartStore) RemoveItem(ctx context.Context, productID int64) (domain.CartState, error) {
	return s.mutate(func(items []domain.CartLine) []domain.CartLine {
		return removeLine(items, productID)
	})
}

// SetQuantity заменяет количество в позиции. Неположительное количество
// эквивалентно удалению позиции. Если позиции нет — no-op.
func (s *CartStore) SetQuantity(ctx context.Context, productID int64, quantity int) (domain.CartState, error) {
	return s.mutate(func(items []domain.CartLine) []domain.CartLine {
		if quantity <= 0 {
			return removeLine(items, productID)
		}

		for i, item := range items {
			if item.Product.ID == productID {
				items[i].Quantity = quantity
				break
			}
		}

		return items
	})
}

// Clear безусловно сбрасывает корзину в пустое состояние.
func (s *CartStore) Clear(ctx context.Context) (domain.CartState, error) {
	return s.mutate(func([]domain.CartLine) []domain.CartLine {
		return []domain.CartLine{}
	})
}

// Contains сообщает, есть ли в корзине позиция для данного товара.
func (s *CartStore) Contains(productID int64) bool {
	return s.QuantityOf(productID) > 0
}

// QuantityOf возвращает количество в позиции или 0, если позиции нет.
func (s *CartStore) QuantityOf(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.state.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}

	return 0
}

// Snapshot возвращает копию текущего состояния корзины.
func (s *CartStore) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Subscribe регистрирует наблюдателя. Наблюдатель вызывается синхронно
// после каждой зафиксированной мутации, вне блокировки состояния.
func (s *CartStore) Subscribe(fn func(domain.CartState)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// WaitForPersistence дожидается завершения фоновых записей корзины,
// начатых к моменту вызова. Используется при остановке приложения.
func (s *CartStore) WaitForPersistence(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.saveWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mutate применяет apply к копии списка позиций, пересчитывает производные
// поля и фиксирует новое состояние. После фиксации уведомляет подписчиков
// и запускает фоновую запись полного снимка.
func (s *CartStore) mutate(apply func([]domain.CartLine) []domain.CartLine) (domain.CartState, error) {
	s.mu.Lock()

	if s.status != statusReady {
		s.mu.Unlock()
		return domain.CartState{}, e.ErrCartNotReady
	}

	items := make([]domain.CartLine, len(s.state.Items))
	copy(items, s.state.Items)

	newState := domain.NewCartState(apply(items), s.cfg.TaxRate)
	s.state = newState
	s.mu.Unlock()

	snapshot := newState.Clone()
	s.notify(snapshot)
	s.persist()

	return snapshot, nil
}

func (s *CartStore) notify(state domain.CartState) {
	s.subMu.Lock()
	fns := make([]func(domain.CartState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// persist пишет полный снимок состояния в фоне, с повторами и джиттером.
// Каждая попытка читает снимок заново: отложенный повтор несёт состояние,
// актуальное на момент самой попытки, и не может перезаписать более свежую
// успешную запись устаревшими данными.
// Неудача только логируется: состояние в памяти остаётся авторитетным.
func (s *CartStore) persist() {
	const maxBackoff = 2 * time.Second

	s.saveWG.Add(1)
	go func() {
		defer s.saveWG.Done()

		var lastErr error
		for attempt := 0; attempt <= s.cfg.SaveRetries; attempt++ {
			if attempt > 0 {
				time.Sleep(jitter.ExponentialBackoff(s.cfg.SaveBackoff, maxBackoff, attempt-1, jitter.DefaultJitter))
			}

			snapshot := s.Snapshot()
			ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SaveTimeout)
			lastErr = s.repo.Save(ctx, snapshot.Items)
			cancel()

			if lastErr == nil {
				return
			}
		}

		s.logger.Warnf("cart snapshot not persisted after %d attempt(s): %v", s.cfg.SaveRetries+1, lastErr)
	}()
}

func removeLine(items []domain.CartLine, productID int64) []domain.CartLine {
	result := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			result = append(result, item)
		}
	}

	return result
}

// sanitizeLines восстанавливает инварианты корзины для данных, пришедших
// из хранилища: дубликаты позиций сливаются, неположительные количества
// отбрасываются.
func sanitizeLines(lines []domain.CartLine) []domain.CartLine {
	result := make([]domain.CartLine, 0, len(lines))
	index := make(map[int64]int, len(lines))

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}

		if i, ok := index[line.Product.ID]; ok {
			result[i].Quantity += line.Quantity
			continue
		}

		index[line.Product.ID] = len(result)
		result = append(result, line)
	}

	return result
}

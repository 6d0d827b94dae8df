package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
	"github.com/smartshop-tech/go-backend/internal/domain"
	"github.com/smartshop-tech/go-backend/internal/repository/redis/converter"
	"github.com/smartshop-tech/go-backend/pkg/clients"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
)

// cartKey — фиксированный ключ сохранённой корзины, без версии.
const cartKey = "smartshop-cart"

// CartRepo хранит снимок корзины в Redis: один ключ, в котором лежит
// JSON-массив позиций (снимок товара + количество). TTL нет: корзина
// переживает перезапуски.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartLineConverter
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartLineConverter, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		logger: logger,
	}
}

// Save сериализует полный снимок списка позиций и записывает его в слот.
// Пустой список записывается как пустой массив, а не удаляется: отличие
// «пустая корзина» / «корзины никогда не было» сохраняется.
func (r *CartRepo) Save(ctx context.Context, lines []domain.CartLine) error {
	models := r.conv.ToArrRedisModel(lines)
	if models == nil {
		models = []converter.CartLineRedisModel{}
	}

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, cartKey, data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Load читает слот корзины. Отсутствие ключа — пустая корзина.
// Непарсящиеся данные не являются ошибкой: слот считается пустым,
// предупреждение уходит в лог (fail-open).
func (r *CartRepo) Load(ctx context.Context) ([]domain.CartLine, error) {
	data, err := r.client.Client.Get(ctx, cartKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []domain.CartLine{}, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CartLineRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Saved cart is corrupt, starting empty: %v", e.Wrap(whereami.WhereAmI(), err))
		return []domain.CartLine{}, nil
	}

	return r.conv.ToArrDomain(models), nil
}

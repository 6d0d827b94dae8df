package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
	"github.com/smartshop-tech/go-backend/pkg/money"
)

type Config struct {
	Http     *HTTPConfig
	Db       *PGDBCfg
	Redis    *RedisCfg
	Catalog  *CatalogCfg
	Checkout *CheckoutCfg
	Cart     *CartCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	ProductTTL  time.Duration
}

type CatalogCfg struct {
	DataPath string // путь к статическому набору данных каталога
}

type CheckoutCfg struct {
	ProcessingDelay time.Duration // имитация обработки платежа
}

type CartCfg struct {
	TaxRate     decimal.Decimal
	SaveTimeout time.Duration // таймаут одной фоновой записи корзины
	SaveRetries int           // число повторов записи корзины
	SaveBackoff time.Duration // базовая задержка между повторами
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cart, err := loadCartCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	checkout, err := loadCheckoutCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:     http,
		Db:       db,
		Redis:    redis,
		Catalog:  loadCatalogCfg(),
		Checkout: checkout,
		Cart:     cart,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:     getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:     getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  getEnvOrDefault("SSL_MODE", defaultSSLMode),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultProductTTL   = 3 * time.Minute
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	productTTL, err := parseDurationEnv("PRODUCT_TTL", defaultProductTTL)
	if err != nil {
		log.Errorf(err, "invalid PRODUCT_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		ProductTTL:  productTTL,
	}, nil
}

func loadCatalogCfg() *CatalogCfg {
	const defaultDataPath = "data/products.json"

	return &CatalogCfg{
		DataPath: getEnvOrDefault("CATALOG_DATA_PATH", defaultDataPath),
	}
}

func loadCheckoutCfg(log logger.Logger) (*CheckoutCfg, error) {
	// Оформление заказа имитируется фиксированной задержкой без пути отмены
	const defaultProcessingDelay = 2 * time.Second

	delay, err := parseDurationEnv("CHECKOUT_PROCESSING_DELAY", defaultProcessingDelay)
	if err != nil {
		log.Errorf(err, "invalid CHECKOUT_PROCESSING_DELAY")
		return nil, err
	}

	return &CheckoutCfg{ProcessingDelay: delay}, nil
}

func loadCartCfg(log logger.Logger) (*CartCfg, error) {
	const (
		defaultSaveTimeout = 3 * time.Second
		defaultSaveRetries = 3
		defaultSaveBackoff = 100 * time.Millisecond
	)

	rateStr := getEnvOrDefault("TAX_RATE", money.DefaultTaxRate.String())
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || rate.IsNegative() {
		log.Errorf(err, "invalid TAX_RATE: %s", rateStr)
		return nil, e.Wrap("TAX_RATE", e.ErrIncorrectEnvVariable)
	}

	saveTimeout, err := parseDurationEnv("CART_SAVE_TIMEOUT", defaultSaveTimeout)
	if err != nil {
		log.Errorf(err, "invalid CART_SAVE_TIMEOUT")
		return nil, err
	}

	saveRetries, err := parseIntEnv("CART_SAVE_RETRIES", defaultSaveRetries)
	if err != nil {
		log.Errorf(err, "invalid CART_SAVE_RETRIES")
		return nil, err
	}

	saveBackoff, err := parseDurationEnv("CART_SAVE_BACKOFF", defaultSaveBackoff)
	if err != nil {
		log.Errorf(err, "invalid CART_SAVE_BACKOFF")
		return nil, err
	}

	return &CartCfg{
		TaxRate:     rate,
		SaveTimeout: saveTimeout,
		SaveRetries: saveRetries,
		SaveBackoff: saveBackoff,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается, когда конфигурация не прошла проверку
	ErrInvalid = errors.New("config: invalid configuration")
)

// Переменные окружения, переопределяющие секреты из файла
const (
	envDBPassword      = "DB_PASSWORD"
	envJWTSecret       = "JWT_SECRET"
	envStripeSecretKey = "STRIPE_SECRET_KEY"
	envRedisPassword   = "REDIS_PASSWORD"
	envAMQPURL         = "AMQP_URL"
)

// defaultWriteRetries значение booking.write_retries, если ключ не задан в файле
const defaultWriteRetries = 3

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Payments PaymentsConfig `toml:"payments"`
	Redis    RedisConfig    `toml:"redis"`
	Events   EventsConfig   `toml:"events"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type PaymentsConfig struct {
	SecretKey       string `toml:"secret_key"`
	BaseURL         string `toml:"base_url"` // пусто - боевой API Stripe
	Currency        string `toml:"currency"`
	Timeout         int    `toml:"timeout"` // секунды
	MaxRetries      int64  `toml:"max_retries"` // 0 - без повторов на стороне SDK
	VerifyOnConfirm bool   `toml:"verify_on_confirm"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	LockTTL  int    `toml:"lock_ttl"`  // секунды
	LockWait int    `toml:"lock_wait"` // миллисекунды
}

type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type BookingConfig struct {
	// WriteRetries повторы локальной записи после успешного вызова провайдера
	WriteRetries int `toml:"write_retries"`
}

// Load читает .env (если есть), файл конфигурации и переменные окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := newConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newConfig заполняет поля, для которых явный 0 в файле допустим.
// Ключи, отсутствующие в файле, сохраняют эти значения.
func newConfig() *Config {
	return &Config{
		Booking: BookingConfig{WriteRetries: defaultWriteRetries},
	}
}

func (c *Config) applyEnv() {
	overrideFromEnv(&c.Database.Password, envDBPassword)
	overrideFromEnv(&c.Auth.JWTSecret, envJWTSecret)
	overrideFromEnv(&c.Payments.SecretKey, envStripeSecretKey)
	overrideFromEnv(&c.Redis.Password, envRedisPassword)
	overrideFromEnv(&c.Events.URL, envAMQPURL)
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "hotel-booking")

	setDefault(&c.Payments.Currency, "usd")
	setDefault(&c.Payments.Timeout, 10)
	c.Payments.Currency = strings.ToLower(c.Payments.Currency)

	setDefault(&c.Redis.Addr, "localhost:6379")
	setDefault(&c.Redis.LockTTL, 30)
	setDefault(&c.Redis.LockWait, 2000)

	setDefault(&c.Events.Exchange, "hotel-booking")
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret is required")
	}
	if c.Payments.SecretKey == "" {
		problems = append(problems, "payments.secret_key is required")
	}
	if len(c.Payments.Currency) != 3 {
		problems = append(problems, "payments.currency must be an ISO 4217 code")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if c.Events.Enabled && c.Events.URL == "" {
		problems = append(problems, "events.url is required when events are enabled")
	}
	if c.Payments.MaxRetries < 0 {
		problems = append(problems, "payments.max_retries must not be negative")
	}
	if c.Booking.WriteRetries < 0 {
		problems = append(problems, "booking.write_retries must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

func overrideFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDefault[T comparable](dst *T, def T) {
	var zero T
	if *dst == zero {
		*dst = def
	}
}

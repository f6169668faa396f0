// config предоставляет структуру конфигурации tweet-dashboard
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Twitter  TwitterConfig  `yaml:"twitter"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Limits   LimitsConfig   `yaml:"limits"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50091"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// TwitterConfig — доступ к поисковому API твитов.
//
// BearerToken обязателен: без него сервис не должен подниматься
// (конфигурационная ошибка фатальна и не ретраится).
type TwitterConfig struct {
	BearerToken string `yaml:"bearer_token" env:"TWITTER_BEARER_TOKEN" env-required:"true"`
	BaseURL     string `yaml:"base_url"     env:"TWITTER_BASE_URL"     env-default:"https://api.x.com/2/tweets/search/recent"`
	// MaxResults — размер страницы поиска у апстрима.
	MaxResults int `yaml:"max_results" env:"TWITTER_MAX_RESULTS" env-default:"10"`
}

// AnalysisConfig — адрес внешнего сервиса sentiment/bot-анализа.
type AnalysisConfig struct {
	BaseURL string `yaml:"base_url" env:"ANALYSIS_BASE_URL" env-default:"http://127.0.0.1:8000"`
}

// SnapshotConfig — каталог файлового кэша последних успешных выборок.
type SnapshotConfig struct {
	Dir string `yaml:"dir" env:"SNAPSHOT_DIR" env-default:"data/snapshots"`
}

// LimitsConfig — серверные лимиты на выдачу /tweets.
type LimitsConfig struct {
	// Применяется при запросе с limit=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	// Верхняя граница для limit.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Service — общий дедлайн входящего запроса.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
	// Search — таймаут исходящего вызова поискового API.
	Search time.Duration `yaml:"search" env:"SEARCH_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Twitter.BearerToken == "" {
		return fmt.Errorf("twitter.bearer_token is required")
	}
	if c.Twitter.BaseURL == "" {
		return fmt.Errorf("twitter.base_url is required")
	}
	if c.Twitter.MaxResults <= 0 {
		return fmt.Errorf("twitter.max_results must be > 0")
	}
	if c.Snapshot.Dir == "" {
		return fmt.Errorf("snapshot.dir is required")
	}
	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	return nil
}

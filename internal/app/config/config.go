package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type CatalogConfig struct {
	BaseURL     string        `yaml:"base_url" env:"CATALOG_BASE_URL" env-default:"https://v2.api.noroff.dev"`
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"CATALOG_HTTP_TIMEOUT" env-default:"10s"`
}

type ProductCacheConfig struct {
	TTL time.Duration `yaml:"ttl" env:"PRODUCT_CACHE_TTL" env-default:"5m"`
}

type ListingConfig struct {
	PageSize        int           `yaml:"page_size" env:"LISTING_PAGE_SIZE" env-default:"9"`
	SuggestionLimit int           `yaml:"suggestion_limit" env:"LISTING_SUGGESTION_LIMIT" env-default:"6"`
	SearchDebounce  time.Duration `yaml:"search_debounce" env:"LISTING_SEARCH_DEBOUNCE" env-default:"300ms"`
}

type CheckoutConfig struct {
	SubmitDelay time.Duration `yaml:"submit_delay" env:"CHECKOUT_SUBMIT_DELAY" env-default:"600ms"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
}

type Config struct {
	Env          string             `yaml:"env" env:"ENV" env-default:"local"`
	Catalog      CatalogConfig      `yaml:"catalog"`
	ProductCache ProductCacheConfig `yaml:"product_cache"`
	Listing      ListingConfig      `yaml:"listing"`
	Checkout     CheckoutConfig     `yaml:"checkout"`
	Logger       LoggerConfig       `yaml:"logger"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		if _, ok := err.(*os.PathError); ok {
			log.Printf("Warning: Config file not found at %s, attempting to load from environment variables only.", path)
			if errEnv := cleanenv.ReadEnv(&cfg); errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH_STOREFRONT")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}

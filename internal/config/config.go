package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CacheBackendDisk  = "disk"
	CacheBackendRedis = "redis"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Maps     MapsConfig
	OpenAI   OpenAIConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig - где хранятся ответы провайдера карт
type CacheConfig struct {
	Backend     string
	Dir         string
	RedisPrefix string
}

// MapsConfig - настройки клиента Google Maps
type MapsConfig struct {
	APIKey            string
	BaseURL           string
	Language          string
	GeocodeTimeout    time.Duration
	DirectionsTimeout time.Duration
	PlacesTimeout     time.Duration
	MaxConcurrency    int
	FilterLowQuality  bool
	DefaultRadius     int
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type LogConfig struct {
	Level  string
	Format string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env необязателен, переменные окружения имеют приоритет
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("API_HOST"),
			Port:         viper.GetInt("API_PORT"),
			Env:          viper.GetString("API_ENV"),
			AllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Backend:     strings.ToLower(viper.GetString("CACHE_BACKEND")),
			Dir:         viper.GetString("CACHE_DIR"),
			RedisPrefix: viper.GetString("CACHE_REDIS_PREFIX"),
		},
		Maps: MapsConfig{
			APIKey:            viper.GetString("MAPS_API_KEY"),
			BaseURL:           viper.GetString("MAPS_BASE_URL"),
			Language:          viper.GetString("MAPS_LANGUAGE"),
			GeocodeTimeout:    time.Duration(viper.GetInt("MAPS_GEOCODE_TIMEOUT_MS")) * time.Millisecond,
			DirectionsTimeout: time.Duration(viper.GetInt("MAPS_DIRECTIONS_TIMEOUT_MS")) * time.Millisecond,
			PlacesTimeout:     time.Duration(viper.GetInt("MAPS_PLACES_TIMEOUT_MS")) * time.Millisecond,
			MaxConcurrency:    viper.GetInt("MAPS_MAX_CONCURRENCY"),
			FilterLowQuality:  viper.GetBool("MAPS_FILTER_LOW_QUALITY"),
			DefaultRadius:     viper.GetInt("MAPS_DEFAULT_RADIUS"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("OPENAI_API_KEY"),
			BaseURL: viper.GetString("OPENAI_BASE_URL"),
			Model:   viper.GetString("OPENAI_MODEL"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendDisk
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = ".cache"
	}
	if c.Cache.RedisPrefix == "" {
		c.Cache.RedisPrefix = "aroundme:"
	}
	if c.Maps.BaseURL == "" {
		c.Maps.BaseURL = "https://maps.googleapis.com"
	}
	if c.Maps.Language == "" {
		c.Maps.Language = "pl"
	}
	if c.Maps.GeocodeTimeout == 0 {
		c.Maps.GeocodeTimeout = 2000 * time.Millisecond
	}
	if c.Maps.DirectionsTimeout == 0 {
		c.Maps.DirectionsTimeout = 1000 * time.Millisecond
	}
	if c.Maps.PlacesTimeout == 0 {
		c.Maps.PlacesTimeout = 1000 * time.Millisecond
	}
	if c.Maps.MaxConcurrency == 0 {
		c.Maps.MaxConcurrency = 8
	}
	if c.Maps.DefaultRadius == 0 {
		c.Maps.DefaultRadius = 1000
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4"
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "listing-score-workers"
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 10
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Maps.APIKey) == "" {
		return errors.New("MAPS_API_KEY is not set")
	}
	switch c.Cache.Backend {
	case CacheBackendDisk:
		if strings.TrimSpace(c.Cache.Dir) == "" {
			return errors.New("CACHE_DIR is not set")
		}
	case CacheBackendRedis:
	default:
		return fmt.Errorf("unknown CACHE_BACKEND %q", c.Cache.Backend)
	}
	if c.Maps.MaxConcurrency < 0 {
		return errors.New("MAPS_MAX_CONCURRENCY must be positive")
	}
	if c.Maps.DefaultRadius < 1 || c.Maps.DefaultRadius > 50000 {
		return errors.New("MAPS_DEFAULT_RADIUS must be between 1 and 50000 meters")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

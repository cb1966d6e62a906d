package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RegionAPI RegionAPIConfig
	Login     LoginConfig
}

type MongoConfig struct {
	URI            string `env:"MONGO_URI,       default=mongodb://localhost:27017"`
	AppDatabase    string `env:"MONGO_APP_DB,    default=corp-hq"`
	StaticDatabase string `env:"MONGO_STATIC_DB, default=corp-hq-static"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RegionAPIConfig supplies fallbacks for the region API client; entries in
// the config collection take precedence when present.
type RegionAPIConfig struct {
	BaseURL   string `env:"REGION_API_URL"`
	UserAgent string `env:"REGION_API_USER_AGENT, default=corp-hq backend"`
}

type LoginConfig struct {
	ThrottleLimit  int           `env:"LOGIN_THROTTLE_LIMIT,  default=10"`
	ThrottleWindow time.Duration `env:"LOGIN_THROTTLE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

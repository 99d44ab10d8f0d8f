package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Dataset DatasetConfig
	Batch   BatchConfig
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=pfas_checker"`
	Collection string `env:"MONGO_COLLECTION, default=pfas_sites"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type DatasetConfig struct {
	// RefreshInterval is how often the background refresher reloads the
	// contamination dataset from MongoDB. Zero disables background refresh.
	RefreshInterval time.Duration `env:"DATASET_REFRESH_INTERVAL, default=1h"`
}

type BatchConfig struct {
	// MaxRows caps how many data rows a single uploaded file may contain.
	MaxRows int `env:"BATCH_MAX_ROWS, default=50000"`
	// ResultTTL is how long a batch summary stays cached in Redis.
	ResultTTL time.Duration `env:"BATCH_RESULT_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=8000"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// BotToken authenticates outbound sends against the Telegram Bot API.
	// It is also the shared secret for init-data verification unless
	// INITDATA_SECRET overrides it. An empty token degrades broadcasting
	// to a no-op and makes every verification fail closed.
	BotToken       string `env:"BOT_TOKEN"`
	InitDataSecret string `env:"INITDATA_SECRET"`

	// AdminIDs is the static privileged set, comma-separated Telegram ids.
	AdminIDs string `env:"ADMIN_IDS"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Broadcast BroadcastConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=homework_bot"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type BroadcastConfig struct {
	RatePerSec int `env:"BROADCAST_RATE, default=25"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Secret returns the init-data verification secret: the explicit
// override when set, the bot token otherwise.
func (c *Config) Secret() string {
	if c.InitDataSecret != "" {
		return c.InitDataSecret
	}
	return c.BotToken
}

// StaticAdminIDs parses ADMIN_IDS into a set of user ids. Malformed
// entries are skipped rather than fatal.
func (c *Config) StaticAdminIDs() map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, part := range strings.Split(c.AdminIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids[id] = struct{}{}
	}
	return ids
}

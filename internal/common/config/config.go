package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Postgres struct {
		Host            string        `env:"POSTGRES_HOST" envDefault:"localhost"`
		Port            int           `env:"POSTGRES_PORT" envDefault:"5432"`
		User            string        `env:"POSTGRES_USER" envDefault:"postgres"`
		Password        string        `env:"POSTGRES_PASSWORD" envDefault:""`
		Database        string        `env:"POSTGRES_DB" envDefault:"airdrop"`
		SSLMode         string        `env:"POSTGRES_SSLMODE" envDefault:"disable"`
		MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25"`
		MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"5m"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Telegram struct {
		BotToken    string  `env:"BOT_TOKEN,required"`
		BotUsername string  `env:"BOT_USERNAME" envDefault:""`
		AdminIDs    []int64 `env:"ADMIN_IDS" envSeparator:","`
	}

	Solana struct {
		RPCEndpoint     string  `env:"SOLANA_RPC" envDefault:"https://api.mainnet-beta.solana.com"`
		TokenMint       string  `env:"SPL_TOKEN_MINT" envDefault:""`
		TokenAmount     float64 `env:"SPL_TOKEN_AMOUNT" envDefault:"1200"`
		TokenDecimals   int     `env:"SPL_TOKEN_DECIMALS" envDefault:"6"`
		SenderSecretKey string  `env:"SENDER_SECRET_KEY" envDefault:""`
	}

	Admin struct {
		AccessToken       string `env:"ADMIN_ACCESS_TOKEN" envDefault:""`
		EnableAccessToken bool   `env:"ENABLE_ADMIN_TOKEN" envDefault:"false"`
	}

	Airdrop struct {
		// Delay between recipients, a throttle against the RPC endpoint.
		ThrottleDelay   time.Duration `env:"AIRDROP_THROTTLE_DELAY" envDefault:"300ms"`
		TransferTimeout time.Duration `env:"AIRDROP_TRANSFER_TIMEOUT" envDefault:"30s"`
	}

	Cache struct {
		StatusTTL  time.Duration `env:"CACHE_STATUS_TTL" envDefault:"2s"`
		WalletsTTL time.Duration `env:"CACHE_WALLETS_TTL" envDefault:"30s"`
	}
}

func Load() *Config {
	// Missing .env is fine, production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}

package utils

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Remote RemoteConfig
	Store  StoreConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// RemoteConfig controls the gateway's routing policy. An empty BaseURL
// forces local mode; PreferLocal skips the remote even when one is set.
type RemoteConfig struct {
	BaseURL       string
	Timeout       time.Duration
	PreferLocal   bool
	DefaultUserID string
}

type StoreConfig struct {
	Backend  string // memory | redis | postgres
	Redis    RedisConfig
	Database DatabaseConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "quickshow-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REMOTE_TIMEOUT_SECONDS", 5)
	viper.SetDefault("USE_LOCAL_DATA", true)
	viper.SetDefault("DEFAULT_USER_ID", "demo-user")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)

	// A missing .env is fine; env vars and defaults still apply.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Remote: RemoteConfig{
			BaseURL:       viper.GetString("REMOTE_API_URL"),
			Timeout:       time.Duration(viper.GetInt("REMOTE_TIMEOUT_SECONDS")) * time.Second,
			PreferLocal:   viper.GetBool("USE_LOCAL_DATA"),
			DefaultUserID: viper.GetString("DEFAULT_USER_ID"),
		},
		Store: StoreConfig{
			Backend: viper.GetString("STORE_BACKEND"),
			Redis: RedisConfig{
				Addr:     viper.GetString("REDIS_ADDR"),
				Password: viper.GetString("REDIS_PASSWORD"),
				DB:       viper.GetInt("REDIS_DB"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				Name:     viper.GetString("DB_NAME"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASS"),
				MaxConns: viper.GetInt32("DB_MAX_CONNS"),
			},
		},
	}

	return config, nil
}

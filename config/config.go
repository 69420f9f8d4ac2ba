package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all daemon configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Proximity ProximityConfig `mapstructure:"proximity"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// RedisConfig configures the optional Redis backing for rate limiting and
// proximity replay protection. Enabled=false runs the daemon without Redis.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig configures local API authentication. An empty Passphrase
// disables authentication entirely (open local access).
type AuthConfig struct {
	Passphrase string        `mapstructure:"passphrase"`
	JWTSecret  string        `mapstructure:"jwt_secret"`
	Expiry     time.Duration `mapstructure:"expiry"`
	Issuer     string        `mapstructure:"issuer"`
}

// ProximityConfig declares which short-range transports the device exposes.
type ProximityConfig struct {
	NFCAvailable       bool `mapstructure:"nfc_available"`
	BluetoothAvailable bool `mapstructure:"bluetooth_available"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: FLX_.
// Nested keys use underscore: FLX_SERVER_PORT, FLX_AUTH_PASSPHRASE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.passphrase", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.expiry", "24h")
	v.SetDefault("auth.issuer", "fluxa-wallet")
	v.SetDefault("proximity.nfc_available", false)
	v.SetDefault("proximity.bluetooth_available", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: FLX_REDIS_HOST -> redis.host
	v.SetEnvPrefix("FLX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

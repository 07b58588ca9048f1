package config

import (
	"fmt"
	"time"
)

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"NOTEVAULT_REDIS_HOST" env-default:"0.0.0.0"`
	Port           int           `yaml:"port" env:"NOTEVAULT_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"NOTEVAULT_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"NOTEVAULT_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"NOTEVAULT_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"NOTEVAULT_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"NOTEVAULT_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"NOTEVAULT_REDIS_POOL_SIZE" env-default:"10"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"NOTEVAULT_REDIS_DEFAULT_TTL" env-default:"15m"`
	Enabled        bool          `yaml:"enabled" env:"NOTEVAULT_REDIS_ENABLED" env-default:"true"`
}

// GetAddressString возвращает адрес Redis сервера.
func (r *RedisConfig) GetAddressString() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

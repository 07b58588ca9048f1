package config

import "time"

// JWTConfig содержит настройки для токенов доступа.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"NOTEVAULT_JWT_SECRET_KEY" env-default:"Qm9zc0t1cnNrTm90ZXZhdWx0U2VjcmV0S2V5MjAyNQ"`
	TokenTTL   string `yaml:"token_ttl" env:"NOTEVAULT_JWT_TOKEN_TTL" env-default:"30m"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"NOTEVAULT_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена доступа.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 30 * time.Minute
	}
	return duration
}

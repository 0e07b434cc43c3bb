package jwtmw

import (
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret はJWT署名用シークレットの環境変数名です。
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyJWTTTL はアクセストークン有効期間の環境変数名です（time.ParseDuration形式）。
	EnvKeyJWTTTL = "JWT_TTL"

	defaultTTL = 24 * time.Hour
)

// Config はJWT発行に関する設定です。
type Config struct {
	Secret string
	TTL    time.Duration
}

// LoadConfig は環境変数からJWT設定を読み込みます。
// JWT_TTLが未設定または不正な場合は24時間を使用します。
func LoadConfig() Config {
	ttl := defaultTTL
	if v := os.Getenv(EnvKeyJWTTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	return Config{
		Secret: os.Getenv(EnvKeyJWTSecret),
		TTL:    ttl,
	}
}

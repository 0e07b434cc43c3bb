// Package jwtmw はJWTの発行と検証ミドルウェアを提供します。
package jwtmw

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims は発行するアクセストークンのクレームです。subにはユーザーIDを10進文字列で格納します。
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Generator はHS256で署名したアクセストークンを生成します。
type Generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator は設定からGeneratorを生成します。
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		secret:     []byte(cfg.Secret),
		expiration: cfg.TTL,
		now:        time.Now,
	}
}

// GenerateToken は指定ユーザーの署名済みトークンを返します。
func (g *Generator) GenerateToken(userID uint, email string) (string, error) {
	now := g.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"audience_backend/internal/feature/auth/domain/entity"
)

// minPasswordLength はパスワードの最低文字数です。
const minPasswordLength = 8

// ユーザーが存在しない場合にも比較を行うためのダミーハッシュ
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type UserRepository interface {
	// Create はユーザーを保存します。メールアドレス重複時はErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail はメールアドレスでユーザーを取得します。存在しない場合はErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// JWTGenerator はアクセストークンの発行を抽象化します。
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// AuthUsecase は登録とログインを提供します。
type AuthUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	hashCost     int
}

// NewAuthUsecase はAuthUsecaseを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *AuthUsecase {
	return &AuthUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		hashCost:     bcrypt.DefaultCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup はパスワードをハッシュ化してユーザーを登録します。
func (u *AuthUsecase) Signup(ctx context.Context, email, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrWeakPassword, minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: normalizeEmail(email), Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login は認証に成功した場合に署名済みJWTを返します。
// ユーザーが存在しない場合でもbcrypt比較を行い、応答時間の差を小さくします。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyPasswordHash
	if user != nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if user == nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User は分析を所有する登録ユーザーです。
type User struct {
	ID uint `gorm:"primaryKey"`

	// Email は正規化（小文字・前後空白除去）済みのメールアドレスです。
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password はbcryptハッシュです。平文は保存しません。
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

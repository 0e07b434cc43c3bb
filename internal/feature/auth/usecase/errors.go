package usecase

import "errors"

var (
	// ErrUserNotFound はメールアドレスまたはIDでユーザーが見つからない場合に返されます。
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists は登録済みのメールアドレスで登録しようとした場合に返されます。
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials はメールアドレスまたはパスワードが一致しない場合に返されます。
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword はパスワードが最低文字数に満たない場合に返されます。
	ErrWeakPassword = errors.New("password is too short")
)

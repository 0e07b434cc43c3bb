package usecase

import "errors"

var (
	// ErrDraftNotFound は保存された下書きが存在しない場合にDraftRepositoryが返します。
	ErrDraftNotFound = errors.New("questionnaire draft not found")

	// ErrSubmissionInProgress は同じユーザーのNextが処理中の場合に返されます。
	ErrSubmissionInProgress = errors.New("questionnaire submission already in progress")
)

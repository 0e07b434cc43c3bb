package entity

import (
	"errors"
	"strings"

	analysis "audience_backend/internal/feature/analysis/domain/entity"
)

var (
	// ErrAnswerRequired は現在の質問が未回答（空白のみ含む）のまま進もうとした場合に返されます。
	ErrAnswerRequired = errors.New("answer required")
	// ErrAtFirstQuestion は最初の質問で戻ろうとした場合に返されます。
	ErrAtFirstQuestion = errors.New("already at the first question")
)

// Flow は1ユーザーの質問票の進行状態です。Currentは常に0以上TotalQuestions-1以下です。
type Flow struct {
	Current int            `json:"current"`
	Answers map[int]string `json:"answers"` // 質問ID → 回答
}

// NewFlow は最初の質問から始まる空のFlowを返します。
func NewFlow() *Flow {
	return &Flow{Answers: map[int]string{}}
}

// Normalize は復元した状態の範囲外の値を補正します。
func (f *Flow) Normalize() {
	if f.Current < 0 {
		f.Current = 0
	}
	if f.Current > TotalQuestions-1 {
		f.Current = TotalQuestions - 1
	}
	if f.Answers == nil {
		f.Answers = map[int]string{}
	}
	for id := range f.Answers {
		if id < 1 || id > TotalQuestions {
			delete(f.Answers, id)
		}
	}
}

// Question は現在の質問を返します。
func (f *Flow) Question() Question {
	q, _ := QuestionAt(f.Current)
	return q
}

// Answer は現在の質問への回答を返します。
func (f *Flow) Answer() string {
	return f.Answers[f.Question().ID]
}

// SetAnswer は現在の質問の回答を記録します。後から書いた値が優先されます。
func (f *Flow) SetAnswer(value string) {
	if f.Answers == nil {
		f.Answers = map[int]string{}
	}
	f.Answers[f.Question().ID] = value
}

// CanAdvance は現在の回答が空白以外を含む場合にtrueを返します。
func (f *Flow) CanAdvance() bool {
	return strings.TrimSpace(f.Answer()) != ""
}

// CanGoBack は前の質問へ戻れるかを返します。
func (f *Flow) CanGoBack() bool {
	return f.Current > 0
}

// IsLast は最後の質問かを返します。
func (f *Flow) IsLast() bool {
	return f.Current == TotalQuestions-1
}

// Next は次の質問へ進みます。最後の質問では進まずにsubmit=trueを返し、呼び出し側が送信します。
func (f *Flow) Next() (submit bool, err error) {
	if !f.CanAdvance() {
		return false, ErrAnswerRequired
	}
	if f.IsLast() {
		return true, nil
	}
	f.Current++
	return false, nil
}

// Previous は前の質問へ戻ります。回答は保持されます。
func (f *Flow) Previous() error {
	if !f.CanGoBack() {
		return ErrAtFirstQuestion
	}
	f.Current--
	return nil
}

// Progress は進捗率（%）を返します。
func (f *Flow) Progress() float64 {
	return float64(f.Current+1) / float64(TotalQuestions) * 100
}

// ToInput は回答を質問順に分析入力へ対応付けます。未回答は空文字列です。
func (f *Flow) ToInput() analysis.AnalysisInput {
	return analysis.AnalysisInput{
		ProductDescription: f.Answers[1],
		MainProblem:        f.Answers[2],
		TargetAudience:     f.Answers[3],
		BuyingFactors:      f.Answers[4],
		Platforms:          f.Answers[5],
		MessageTypes:       f.Answers[6],
		AnalysisGoal:       f.Answers[7],
	}
}

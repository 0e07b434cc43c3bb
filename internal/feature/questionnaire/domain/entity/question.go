// Package entity は質問票フィーチャーのドメインエンティティを定義します。
package entity

// QuestionKind は入力欄の種類です。
type QuestionKind string

const (
	KindText     QuestionKind = "text"
	KindTextarea QuestionKind = "textarea"
)

// Question は質問票の1問です。
type Question struct {
	ID          int
	Emoji       string
	PromptAR    string
	PromptEN    string
	Kind        QuestionKind
	Placeholder string
}

// questions は固定の7問です。順番がそのまま分析入力の各項目に対応します。
var questions = []Question{
	{
		ID: 1, Emoji: "📝", Kind: KindText,
		PromptAR:    "صف منتجك أو خدمتك في جملة واحدة",
		PromptEN:    "Describe your product or service in one sentence",
		Placeholder: "مثال: تطبيق لإدارة المشاريع الصغيرة",
	},
	{
		ID: 2, Emoji: "🎯", Kind: KindText,
		PromptAR:    "ما أهم مشكلة يحلها المنتج؟",
		PromptEN:    "What is the main problem your product solves?",
		Placeholder: "مثال: يساعد الشركات الصغيرة على تنظيم مشاريعها بسهولة",
	},
	{
		ID: 3, Emoji: "👥", Kind: KindTextarea,
		PromptAR:    "من هو عميلك الحالي أو المتوقع؟",
		PromptEN:    "Who is your current or expected customer?",
		Placeholder: "مثال: رجال ومرأة من سن 25-45 سنة، أصحاب شركات صغيرة ومتوسطة",
	},
	{
		ID: 4, Emoji: "💰", Kind: KindTextarea,
		PromptAR:    "ما الذي يجعل العميل يشتري منك؟",
		PromptEN:    "What makes customers buy from you?",
		Placeholder: "مثال: السعر المناسب، سهولة الاستخدام، الدعم الفني الممتاز",
	},
	{
		ID: 5, Emoji: "📱", Kind: KindTextarea,
		PromptAR:    "ما المنصات التي يتواجد عليها عملاؤك؟",
		PromptEN:    "What platforms are your customers on?",
		Placeholder: "مثال: فيسبوك، إنستجرام، لينكدإن، جوجل",
	},
	{
		ID: 6, Emoji: "💬", Kind: KindTextarea,
		PromptAR:    "ما نوع الرسائل التي تجذبهم أكثر؟",
		PromptEN:    "What type of messages attract them most?",
		Placeholder: "مثال: رسائل تركز على توفير الوقت والمال، قصص نجاح العملاء",
	},
	{
		ID: 7, Emoji: "🚀", Kind: KindTextarea,
		PromptAR:    "ما هدفك من التحليل؟",
		PromptEN:    "What is your goal from this analysis?",
		Placeholder: "مثال: زيادة المبيعات، تحديد المحتوى المناسب، اختيار قنوات الإعلان",
	},
}

// TotalQuestions は質問数です。
const TotalQuestions = 7

// Questions は質問の一覧をコピーして返します。
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionAt はインデックス（0始まり）の質問を返します。
func QuestionAt(index int) (Question, bool) {
	if index < 0 || index >= len(questions) {
		return Question{}, false
	}
	return questions[index], true
}

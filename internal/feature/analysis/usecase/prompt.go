package usecase

import (
	"fmt"

	"audience_backend/internal/feature/analysis/domain/entity"
)

// SchemaName は構造化出力に付けるスキーマ名です。
const SchemaName = "audience_analysis"

// systemInstruction はモデルをマーケティングのオーディエンス分析の専門家として設定します。
const systemInstruction = "أنت خبير تسويق متخصص في تحليل الجمهور المستهدف. قدم تحليلات احترافية ومفصلة بصيغة JSON صحيحة."

const userPromptTemplate = `أنت خبير تسويق متخصص في تحليل الجمهور المستهدف. قم بتحليل المعلومات التالية وأنتج تقرير احترافي:

منتج/خدمة: %s
المشكلة الرئيسية: %s
الجمهور المستهدف: %s
عوامل الشراء: %s
المنصات: %s
نوع الرسائل: %s
الهدف من التحليل: %s

يرجى إنتاج تحليل شامل يتضمن:
1. ملخص سريع عن الجمهور المستهدف
2. 2-3 شخصيات مشتري مفصلة (اسم، وصف نفسي واجتماعي، أهداف، نقاط ألم، منصات مفضلة، نوع الرسائل، أسلوب الإعلان)
3. قنوات إعلانية موصى بها
4. نبرة صوت مناسبة
5. أنواع محتوى مقترحة
6. توصيات استراتيجية قابلة للتطبيق

الرد يجب أن يكون بصيغة JSON صحيحة بالعربية.`

// BuildPrompt は7つの回答を順番どおりそのまま埋め込んだユーザープロンプトを返します。
func BuildPrompt(in entity.AnalysisInput) string {
	return fmt.Sprintf(userPromptTemplate,
		in.ProductDescription,
		in.MainProblem,
		in.TargetAudience,
		in.BuyingFactors,
		in.Platforms,
		in.MessageTypes,
		in.AnalysisGoal,
	)
}

// SystemInstruction はLLMに渡すシステム指示を返します。
func SystemInstruction() string { return systemInstruction }

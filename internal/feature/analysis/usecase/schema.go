package usecase

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func stringArrayProp(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       map[string]any{"type": "string"},
	}
}

var personaKeys = []string{
	"name", "description", "goals", "painPoints",
	"preferredPlatforms", "messageType", "advertisingApproach",
}

var resultKeys = []string{
	"summary", "buyerPersonas", "channels",
	"toneOfVoice", "contentTypes", "recommendations",
}

// AnalysisSchema は応答に要求するstrictなJSON Schemaを返します。
// 全プロパティが必須で、トップレベルとペルソナの両方でadditionalPropertiesを禁止します。
// 呼び出しごとに新しいmapを返すため、呼び出し側で変更しても安全です。
func AnalysisSchema() map[string]any {
	persona := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":                stringProp("اسم الشخصية"),
			"description":         stringProp("وصف نفسي واجتماعي"),
			"goals":               stringArrayProp("الأهداف والدوافع"),
			"painPoints":          stringArrayProp("نقاط الألم"),
			"preferredPlatforms":  stringArrayProp("المنصات المفضلة"),
			"messageType":         stringProp("نوع الرسائل المناسبة"),
			"advertisingApproach": stringProp("أسلوب الإعلان المناسب"),
		},
		"required":             toAny(personaKeys),
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": stringProp("ملخص سريع عن الجمهور المستهدف"),
			"buyerPersonas": map[string]any{
				"type":        "array",
				"description": "شخصيات المشتري",
				"items":       persona,
			},
			"channels":        stringArrayProp("القنوات الإعلانية الموصى بها"),
			"toneOfVoice":     stringProp("نبرة الصوت المناسبة"),
			"contentTypes":    stringArrayProp("أنواع المحتوى المقترحة"),
			"recommendations": stringArrayProp("التوصيات الاستراتيجية"),
		},
		"required":             toAny(resultKeys),
		"additionalProperties": false,
	}
}

func toAny(keys []string) []any {
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}

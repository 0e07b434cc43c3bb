package usecase

// validAnalysisJSON はスキーマに一致する応答の例です。
const validAnalysisJSON = `{
  "summary": "جمهور من أصحاب الشركات الصغيرة",
  "buyerPersonas": [
    {
      "name": "سارة",
      "description": "رائدة أعمال في الثلاثينات",
      "goals": ["تنظيم المشاريع"],
      "painPoints": ["ضيق الوقت"],
      "preferredPlatforms": ["إنستجرام", "لينكدإن"],
      "messageType": "قصص نجاح",
      "advertisingApproach": "إعلانات فيديو قصيرة"
    }
  ],
  "channels": ["فيسبوك"],
  "toneOfVoice": "ودود ومهني",
  "contentTypes": ["فيديو"],
  "recommendations": ["ابدأ بحملة تجريبية"]
}`

package absa

// Compiled-in lexicon. The Arabic lists deliberately carry multiple spellings
// of the same word (e.g. نظافه/نظافة) because matching is raw substring
// containment with no orthographic normalization. Retrained lexicon versions
// ship as JSON files with the same shape and are loaded via LoadLexicon.
var defaultLexiconDef = LexiconDef{
	Aspects: map[Aspect]map[Language][]string{
		AspectLocation: {
			LanguageArabic:  {"موقع", "مكان", "موضع", "موضوع", "منطقه", "منطقة", "مسافه", "بعيد", "قريب"},
			LanguageEnglish: {"location", "place", "area", "distance", "far", "close", "nearby", "accessible"},
		},
		AspectCleanliness: {
			LanguageArabic:  {"نظافه", "نظيف", "نظافة", "نظيفه", "وسخ", "نظام"},
			LanguageEnglish: {"clean", "cleanness", "hygiene", "dirty", "neat", "tidy", "sanitary"},
		},
		AspectService: {
			LanguageArabic:  {"خدمه", "خدمة", "موظف", "موظفين", "عامل", "استقبال", "تعامل", "معامله", "معاملة"},
			LanguageEnglish: {"service", "staff", "employee", "reception", "treatment", "hospitality", "attendant"},
		},
		AspectPrice: {
			LanguageArabic:  {"سعر", "اسعار", "غالي", "رخيص", "ثمن", "تكلفه", "تكلفة", "قيمه", "فلوس"},
			LanguageEnglish: {"price", "cost", "expensive", "cheap", "value", "money", "affordable", "pricing"},
		},
		AspectFood: {
			LanguageArabic:  {"اكل", "طعام", "مطعم", "طبخ", "وجبه", "وجبة", "مذاق"},
			LanguageEnglish: {"food", "meal", "dish", "restaurant", "cuisine", "taste", "dining", "breakfast", "dinner"},
		},
		AspectFacility: {
			LanguageArabic:  {"مرافق", "غرفه", "غرفة", "حمام", "مسبح", "جيم", "موقف", "واي فاي", "انترنت"},
			LanguageEnglish: {"facility", "room", "bathroom", "pool", "gym", "parking", "wifi", "internet", "amenity"},
		},
		AspectAmbiance: {
			LanguageArabic:  {"جو", "اجواء", "جميل", "هادي", "هادئ", "رائع", "ممتاز", "جمال", "منظر", "ديكور"},
			LanguageEnglish: {"atmosphere", "ambiance", "beautiful", "nice", "great", "view", "decor", "quiet", "peaceful"},
		},
		AspectActivity: {
			LanguageArabic:  {"نشاط", "العاب", "ترفيه", "فعاليات", "انشطه", "لعب", "تسليه"},
			LanguageEnglish: {"activity", "activities", "entertainment", "fun", "events", "games", "recreation"},
		},
	},
	Positive: map[Language][]string{
		LanguageArabic: {
			"جميل", "رائع", "ممتاز", "جيد", "حلو", "نظيف", "منظم", "مريح", "هادئ",
			"مناسب", "جودة", "افضل", "احسن", "روعه", "فخم", "مثالي", "ولا", "عالي",
		},
		LanguageEnglish: {
			"good", "great", "excellent", "amazing", "wonderful", "perfect", "nice", "clean",
			"comfortable", "best", "beautiful", "fantastic", "awesome", "love", "liked",
		},
	},
	Negative: map[Language][]string{
		LanguageArabic: {
			"سيء", "سيئ", "وسخ", "قذر", "غالي", "رديء", "مو", "ما", "سي", "مشكلة",
			"عيب", "يعيب", "يحتاج", "قديم", "بطيء", "ازعاج", "ضعيف", "سيئة", "مزعج",
		},
		LanguageEnglish: {
			"bad", "poor", "terrible", "awful", "dirty", "expensive", "overpriced", "slow",
			"noisy", "old", "problem", "issue", "disappoint", "worst", "hate", "horrible",
		},
	},
}

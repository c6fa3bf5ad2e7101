package prompt

import "strings"

// LanguageAuto is the sentinel meaning "match the input language".
const LanguageAuto = "auto"

// languageNames maps ISO-ish codes to human-readable names for the language
// directive. Unknown codes pass through as-is.
var languageNames = map[string]string{
	"en":  "English",
	"es":  "Spanish",
	"fr":  "French",
	"de":  "German",
	"it":  "Italian",
	"pt":  "Portuguese",
	"ru":  "Russian",
	"ja":  "Japanese",
	"ko":  "Korean",
	"zh":  "Chinese (Simplified)",
	"ar":  "Arabic",
	"hi":  "Hindi",
	"bn":  "Bengali",
	"pa":  "Punjabi",
	"te":  "Telugu",
	"mr":  "Marathi",
	"ta":  "Tamil",
	"ur":  "Urdu",
	"tr":  "Turkish",
	"vi":  "Vietnamese",
	"fa":  "Farsi (Persian)",
	"pl":  "Polish",
	"uk":  "Ukrainian",
	"nl":  "Dutch",
	"ro":  "Romanian",
	"el":  "Greek",
	"cs":  "Czech",
	"sv":  "Swedish",
	"hu":  "Hungarian",
	"fi":  "Finnish",
	"da":  "Danish",
	"no":  "Norwegian",
	"sk":  "Slovak",
	"bg":  "Bulgarian",
	"hr":  "Croatian",
	"sr":  "Serbian",
	"lt":  "Lithuanian",
	"lv":  "Latvian",
	"et":  "Estonian",
	"sl":  "Slovenian",
	"th":  "Thai",
	"id":  "Indonesian",
	"ms":  "Malay",
	"fil": "Filipino (Tagalog)",
	"sw":  "Swahili",
	"he":  "Hebrew",
	"ne":  "Nepali",
	"si":  "Sinhala",
	"km":  "Khmer",
	"my":  "Burmese",
	"ka":  "Georgian",
	"hy":  "Armenian",
	"az":  "Azerbaijani",
	"kk":  "Kazakh",
	"uz":  "Uzbek",
	"af":  "Afrikaans",
	"sq":  "Albanian",
	"ca":  "Catalan",
	"cy":  "Welsh",
	"ga":  "Irish",
	"gu":  "Gujarati",
	"is":  "Icelandic",
	"kn":  "Kannada",
	"mk":  "Macedonian",
	"ml":  "Malayalam",
	"mt":  "Maltese",
	"mn":  "Mongolian",
	"ps":  "Pashto",
	"so":  "Somali",
	"tg":  "Tajik",
	"tk":  "Turkmen",
	"yo":  "Yoruba",
	"zu":  "Zulu",

	"pt-br": "Brazilian Portuguese",
	"zh-tw": "Chinese (Traditional)",
}

// LanguageName resolves a language code to its display name. Codes are
// matched case-insensitively; unknown codes pass through unchanged.
// Returns "" for empty input and the auto sentinel.
func LanguageName(code string) string {
	if code == "" || strings.EqualFold(code, LanguageAuto) {
		return ""
	}
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

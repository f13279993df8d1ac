package oramacore

// Language selects the text analysis language of a collection. Values are
// the service's own identifiers and travel on the wire verbatim.
type Language string

// Languages understood by the service.
const (
	LanguageArabic     Language = "Arabic"
	LanguageChinese    Language = "Chinese"
	LanguageDanish     Language = "Danish"
	LanguageDutch      Language = "Dutch"
	LanguageEnglish    Language = "English"
	LanguageFinnish    Language = "Finnish"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguageGreek      Language = "Greek"
	LanguageHindi      Language = "Hindi"
	LanguageItalian    Language = "Italian"
	LanguageJapanese   Language = "Japanese"
	LanguageKorean     Language = "Korean"
	LanguageNorwegian  Language = "Norwegian"
	LanguagePolish     Language = "Polish"
	LanguagePortuguese Language = "Portuguese"
	LanguageRomanian   Language = "Romanian"
	LanguageRussian    Language = "Russian"
	LanguageSpanish    Language = "Spanish"
	LanguageSwedish    Language = "Swedish"
	LanguageTurkish    Language = "Turkish"
	LanguageUkrainian  Language = "Ukrainian"
)

// DefaultLanguage is applied when collection params omit a language.
const DefaultLanguage = LanguageEnglish

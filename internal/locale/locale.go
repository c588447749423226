// Package locale provides the message catalog for user-facing CLI strings.
// German is the default, matching the tool's primary audience; language
// selection uses BCP 47 matching so values like "en-US" or "de_DE.UTF-8"
// resolve to a supported catalog.
package locale

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.German, // first entry is the fallback
	language.English,
}

var matcher = language.NewMatcher(supported)

// Locale resolves message keys to localized strings.
type Locale struct {
	messages map[string]map[string]string
}

// New returns the catalog best matching the given language string.
func New(lang string) *Locale {
	_, index := language.MatchStrings(matcher, normalize(lang))
	base, _ := supported[index].Base()
	messages, ok := catalogs[base.String()]
	if !ok {
		messages = catalogs["de"]
	}
	return &Locale{messages: messages}
}

// Detect picks the language for a data directory: an explicit setting wins,
// then the company profile's language field, then the LANG environment
// variable.
func Detect(configured, dataDir string) string {
	if configured != "" {
		return configured
	}
	if lang := companyLanguage(filepath.Join(dataDir, "company.json")); lang != "" {
		return lang
	}
	return os.Getenv("LANG")
}

// T returns the message for section and key, or the key itself when missing.
func (l *Locale) T(section, key string) string {
	if s, ok := l.messages[section]; ok {
		if msg, ok := s[key]; ok {
			return msg
		}
	}
	return key
}

// Tf returns the message with "{}" placeholders replaced in order.
func (l *Locale) Tf(section, key string, args ...string) string {
	msg := l.T(section, key)
	for _, arg := range args {
		msg = strings.Replace(msg, "{}", arg, 1)
	}
	return msg
}

func normalize(lang string) string {
	// "de_DE.UTF-8" -> "de-DE"
	if i := strings.IndexByte(lang, '.'); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}

func companyLanguage(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var profile struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return ""
	}
	return profile.Language
}

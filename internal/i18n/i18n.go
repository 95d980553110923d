// Package i18n holds the user-visible message tables. Only strings the
// service itself emits live here (error messages and a few labels); all
// report prose comes from the oracle in the requested language already.
package i18n

import (
	"embed"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tianji-app/fortune-api/internal/domain"
)

//go:embed locales/active.*.json
var localeFS embed.FS

var localeFiles = map[domain.Language]string{
	domain.LangEnglish: "locales/active.en.json",
	domain.LangChinese: "locales/active.zh.json",
	domain.LangSpanish: "locales/active.es.json",
	domain.LangRussian: "locales/active.ru.json",
	domain.LangFrench:  "locales/active.fr.json",
}

// Message IDs the service localizes.
const (
	MsgOracleUnavailable = "error_oracle_unavailable"
	MsgInvalidRequest    = "error_invalid_request"
	MsgInternal          = "error_internal"
)

// Translator resolves message IDs for one of the supported languages.
type Translator struct {
	bundle      *i18n.Bundle
	defaultLang domain.Language
}

// New loads the embedded locale files. All five files ship with the
// binary, so a load failure is a build defect and reported as an error.
func New(defaultLang domain.Language) (*Translator, error) {
	bundle := i18n.NewBundle(language.Chinese)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, path := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, err
		}
	}

	return &Translator{bundle: bundle, defaultLang: defaultLang}, nil
}

// Message returns the localized message for id, falling back to the
// default language and finally to the id itself.
func (t *Translator) Message(lang domain.Language, id string) string {
	loc := i18n.NewLocalizer(t.bundle, string(lang), string(t.defaultLang))
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

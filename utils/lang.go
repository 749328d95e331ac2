package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle loads the message catalogs from the configured directory.
// Packages that localize before initialization get an empty English bundle,
// which makes every lookup fall through to its DefaultMessage.
func InitI18NBundle() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	b.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
	bundle = b
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
	}
	return i18n.NewLocalizer(bundle, lang)
}

// Localize resolves a message by ID with template data, falling back to the
// provided default text when the catalog has no entry.
func Localize(loc *i18n.Localizer, id, fallback string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   data,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

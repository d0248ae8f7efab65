package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var catalogs = []string{"en.yaml", "zh_tw.yaml"}

var bundle *i18n.Bundle

// InitI18NBundle loads every notification message catalog from the directory
// named by `i18n.dir`.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, f := range catalogs {
		bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), f))
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

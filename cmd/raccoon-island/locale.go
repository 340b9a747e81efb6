package main

import (
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

const localeDir = "locales"

// configureLocale loads locales/<lang>/LC_MESSAGES/default.po when present.
// Without a catalog labels fall back to their English names.
func configureLocale(lang string) {
	if lang == "" {
		lang = strings.SplitN(os.Getenv("LANG"), ".", 2)[0]
	}
	if lang == "" {
		lang = "en_GB"
	}
	gotext.Configure(localeDir, lang, "default")
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_Default(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "File Upload and Download", l.GetText(KeyAppTitle))
	assert.Equal(t, "Enter file name", l.GetText(KeyEnterFileName))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("pt")
	assert.Equal(t, "pt", l.GetCurrentLanguage())
	assert.Equal(t, "Enviar", l.GetText(KeyUpload))

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	// unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_FallbackToKey(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !assert.True(t, ok, "missing texts for %s", lang) {
			continue
		}
		for key := range l.texts["en"] {
			assert.NotEmpty(t, texts[key], "%s: missing %s", lang, key)
		}
	}
}

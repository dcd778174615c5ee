package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Translations map[string]string

//go:embed locales
var embedded embed.FS

var (
	locales = make(map[string]Translations)
	mu      sync.RWMutex
)

// LoadEmbedded loads the locales shipped with the binary.
func LoadEmbedded() error {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return err
	}
	return load(sub)
}

// LoadTranslations loads <localePath>/<locale>/views.yaml for every locale directory.
func LoadTranslations(localePath string) error {
	return load(os.DirFS(localePath))
}

func load(fsys fs.FS) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := path.Join(locale, "views.yaml")

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			continue
		}

		var config struct {
			Views Translations `yaml:"VIEWS"`
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		locales[locale] = config.Views
	}

	return nil
}

// Translate looks key up in locale, then in English, then returns key itself.
func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != "en" {
		if trans, ok := locales["en"]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	return key
}

// FromAcceptLanguage picks the primary language tag of an Accept-Language header.
func FromAcceptLanguage(header string) string {
	if header == "" {
		return "en"
	}
	first := strings.TrimSpace(strings.Split(header, ",")[0])
	first = strings.Split(first, ";")[0]
	lang := strings.ToLower(strings.Split(first, "-")[0])
	if lang == "" || lang == "*" {
		return "en"
	}
	return lang
}

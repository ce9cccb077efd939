package langfield

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// LoadCatalog loads per-language message files named
// "<dir>/messages.<lang>.toml" into a bundle usable with WithCatalog.
// Message ids are attribute names; the catalog is the last resort when
// every candidate column of an attribute is empty.
func LoadCatalog(dir string, languages ...string) (*i18n.Bundle, error) {
	if dir == "" {
		dir = "localization"
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, tag := range languages {
		if _, err := bundle.LoadMessageFile(fmt.Sprintf("%s/messages.%v.toml", dir, tag)); err != nil {
			return nil, fmt.Errorf("load catalog for %q: %w", tag, err)
		}
	}

	return bundle, nil
}

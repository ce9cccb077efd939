package langfield

import "github.com/caarlos0/env/v11"

// Config carries the process-level language defaults. A Behavior starts
// from these and functional options override per binding.
type Config struct {
	// DefaultLanguage is the application language used when the context
	// carries none.
	DefaultLanguage string `env:"LANGFIELD_DEFAULT_LANGUAGE" envDefault:"en"`

	// SourceLanguage is the language in which canonical data is expected
	// to exist; it terminates every fallback chain before the bare column.
	SourceLanguage string `env:"LANGFIELD_SOURCE_LANGUAGE" envDefault:"en"`

	// ExtraLanguages are merged into the propagation set used by Copy.
	ExtraLanguages []string `env:"LANGFIELD_EXTRA_LANGUAGES" envSeparator:","`

	// SortLists orders list results ascending by resolved value.
	SortLists bool `env:"LANGFIELD_LIST_SORT" envDefault:"false"`
}

// FromEnv convenience method to process configs.
func FromEnv() (Config, error) {
	return env.ParseAs[Config]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(cfg *Config) error {
	return env.Parse(cfg)
}

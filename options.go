package langfield

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/langfield/langfield/lang"
	"github.com/langfield/langfield/memo"
)

// Option configures a Behavior at binding time.
type Option func(*Behavior)

// WithConfig overrides the environment-derived defaults wholesale.
func WithConfig(cfg Config) Option {
	return func(b *Behavior) {
		b.defaultLanguage = lang.Normalize(cfg.DefaultLanguage)
		b.sourceLanguage = lang.Normalize(cfg.SourceLanguage)
		b.extraLanguages = cfg.ExtraLanguages
		b.sort = cfg.SortLists
	}
}

// WithAttributes restricts the behavior to the named logical attributes.
// Operations on any other attribute report a *NotManagedError. Without
// this option every attribute is managed.
func WithAttributes(attributes ...string) Option {
	return func(b *Behavior) {
		b.attributes = make(map[string]struct{}, len(attributes))
		for _, attribute := range attributes {
			b.attributes[attribute] = struct{}{}
		}
	}
}

// WithLanguages sets the propagation set used by Copy explicitly,
// replacing the {default, source} + extras default.
func WithLanguages(tags ...string) Option {
	return func(b *Behavior) {
		b.languages = tags
	}
}

// WithDefaultLanguage overrides the application language used when the
// context carries none.
func WithDefaultLanguage(tag string) Option {
	return func(b *Behavior) {
		b.defaultLanguage = lang.Normalize(tag)
	}
}

// WithSourceLanguage overrides the fallback language.
func WithSourceLanguage(tag string) Option {
	return func(b *Behavior) {
		b.sourceLanguage = lang.Normalize(tag)
	}
}

// WithScope attaches an always-applied query refinement to list queries.
// A behavior carrying a scope never memoizes list results.
func WithScope(scope Scope) Option {
	return func(b *Behavior) {
		b.scope = scope
	}
}

// WithSort orders list results ascending by resolved value.
func WithSort(sorted bool) Option {
	return func(b *Behavior) {
		b.sort = sorted
	}
}

// WithCatalog attaches a message catalog consulted when every candidate
// column of an attribute turns out empty.
func WithCatalog(bundle *i18n.Bundle) Option {
	return func(b *Behavior) {
		b.catalog = bundle
	}
}

// WithMemo swaps the process-wide memo cache for a caller-owned one.
func WithMemo(cache memo.Cache) Option {
	return func(b *Behavior) {
		if cache != nil {
			b.memo = cache
		}
	}
}

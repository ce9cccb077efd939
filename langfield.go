package langfield

import (
	"context"
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
	"gorm.io/gorm"

	"github.com/langfield/langfield/lang"
	"github.com/langfield/langfield/memo"
	"github.com/langfield/langfield/schema"
)

// Scope is an opaque query refinement passed through to the store,
// composable the same way GORM scopes are.
type Scope = func(db *gorm.DB) *gorm.DB

// defaultMemo backs every Behavior that was not given its own cache.
var defaultMemo = memo.NewCache()

// Behavior binds localized attribute resolution to one GORM model type.
// It is constructed once per model binding and is safe for concurrent use;
// the application language travels on the context, never in mutable state.
type Behavior struct {
	db    *gorm.DB
	model any
	info  *schema.Info

	attributes      map[string]struct{}
	languages       []string
	extraLanguages  []string
	defaultLanguage string
	sourceLanguage  string

	scope   Scope
	sort    bool
	catalog *i18n.Bundle
	memo    memo.Cache
}

// New binds a Behavior to the supplied model type. Language defaults are
// read from the environment (see Config) and can be overridden per
// binding through options.
func New(db *gorm.DB, model any, opts ...Option) (*Behavior, error) {
	if db == nil {
		return nil, errors.New("langfield: a database handle is required")
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	info, err := schema.Inspect(db, model)
	if err != nil {
		return nil, err
	}

	b := &Behavior{
		db:              db,
		model:           model,
		info:            info,
		defaultLanguage: lang.Normalize(cfg.DefaultLanguage),
		sourceLanguage:  lang.Normalize(cfg.SourceLanguage),
		extraLanguages:  cfg.ExtraLanguages,
		sort:            cfg.SortLists,
		memo:            defaultMemo,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.sourceLanguage == "" {
		b.sourceLanguage = b.defaultLanguage
	}

	if len(b.languages) == 0 {
		b.languages = append([]string{b.defaultLanguage, b.sourceLanguage}, b.extraLanguages...)
	}
	b.languages = normalizeSet(b.languages)

	for _, tag := range b.languages {
		if !lang.Valid(tag) {
			util.Log(context.Background()).
				WithField("language", tag).
				WithField("table", info.Table).
				Warn("configured language is not a well formed tag")
		}
	}

	return b, nil
}

// Table returns the storage table the behavior is bound to.
func (b *Behavior) Table() string {
	return b.info.Table
}

// Languages returns the normalized propagation set used by Copy.
func (b *Behavior) Languages() []string {
	languages := make([]string, len(b.languages))
	copy(languages, b.languages)
	return languages
}

// Language returns the effective application language for this call: the
// context value when present, the configured default otherwise.
func (b *Behavior) Language(ctx context.Context) string {
	if tag := FromContext(ctx); tag != "" {
		return lang.Normalize(tag)
	}
	return b.defaultLanguage
}

// SourceLanguage returns the configured fallback language.
func (b *Behavior) SourceLanguage() string {
	return b.sourceLanguage
}

// Candidates resolves the ordered column names that will be tried for an
// attribute under the effective language, filtered down to columns that
// exist on the bound model. An empty result is a *NoLanguageFieldError.
func (b *Behavior) Candidates(ctx context.Context, attribute string) ([]string, error) {
	if err := b.managed(attribute); err != nil {
		return nil, err
	}

	return b.candidatesFor(attribute, b.Language(ctx))
}

// Get resolves the best available value of an attribute on a record: the
// first candidate column holding a non-empty value wins. When everything
// is empty and a catalog was configured, the catalog message for the
// attribute is the last resort; otherwise the empty string is returned.
func (b *Behavior) Get(ctx context.Context, record any, attribute string) (string, error) {
	if err := b.managed(attribute); err != nil {
		return "", err
	}

	current := b.Language(ctx)
	candidates, err := b.candidatesFor(attribute, current)
	if err != nil {
		return "", err
	}

	for _, name := range candidates {
		value, ok := b.info.Value(ctx, record, name)
		if !ok {
			continue
		}
		if !isEmptyValue(value) {
			return renderValue(value), nil
		}
	}

	if b.catalog != nil {
		localizer := i18n.NewLocalizer(b.catalog, current, b.sourceLanguage)
		if message, lerr := localizer.Localize(&i18n.LocalizeConfig{MessageID: attribute}); lerr == nil {
			return message, nil
		}
	}

	return "", nil
}

// FlushMemo drops every memoized list result recorded for this behavior's
// table. Call it after persisting writes to keep list results honest.
func (b *Behavior) FlushMemo() {
	b.memo.Invalidate(b.info.Table)
}

func (b *Behavior) candidatesFor(attribute, current string) ([]string, error) {
	names := lang.Candidates(attribute, current, b.sourceLanguage)

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		if b.info.HasColumn(name) {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 0 {
		return nil, &NoLanguageFieldError{Attribute: attribute, Table: b.info.Table}
	}
	return candidates, nil
}

func (b *Behavior) managed(attribute string) error {
	if len(b.attributes) == 0 {
		return nil
	}
	if _, ok := b.attributes[attribute]; !ok {
		return &NotManagedError{Attribute: attribute}
	}
	return nil
}

func normalizeSet(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = lang.Normalize(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

package langfield

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/langfield/langfield/lang"
	"github.com/langfield/langfield/schema"
)

// Copy propagates one attribute's resolved value from a source record into
// the target record: into the bare attribute column when it exists, and
// into every language-qualified column implied by the configured language
// set. Columns the target lacks are silently skipped; localization data is
// sparse and a partial write is the intended outcome, not a failure.
//
// The optional targetAttribute renames the attribute on the target side;
// it defaults to sourceAttribute. The source value is resolved with Get
// semantics under the effective language, except that a source without any
// matching column simply yields the empty string.
func (b *Behavior) Copy(ctx context.Context, target, source any, sourceAttribute string, targetAttribute ...string) error {
	if err := b.managed(sourceAttribute); err != nil {
		return err
	}

	attribute := sourceAttribute
	if len(targetAttribute) > 0 && targetAttribute[0] != "" {
		attribute = targetAttribute[0]
	}

	value, err := b.sourceValue(ctx, source, sourceAttribute)
	if err != nil {
		return err
	}

	// The target need not be the bound model type; resolve its own schema
	// so writes always go through the target's field layout.
	targetInfo, err := schema.Inspect(b.db, target)
	if err != nil {
		return err
	}

	log := util.Log(ctx).
		WithField("table", targetInfo.Table).
		WithField("attribute", attribute)

	for _, name := range b.copyColumns(targetInfo, attribute) {
		if err = targetInfo.SetValue(ctx, target, name, value); err != nil {
			log.WithError(err).WithField("column", name).Warn("skipping incompatible column")
		}
	}

	return nil
}

// copyColumns lists the target columns a copy writes to: the bare
// attribute first, then per configured language the direct decomposition
// chain of that language alone, with no source-language fallback.
func (b *Behavior) copyColumns(targetInfo *schema.Info, attribute string) []string {
	seen := make(map[string]struct{})
	columns := make([]string, 0, len(b.languages)+1)

	add := func(name string) {
		if !targetInfo.HasColumn(name) {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		columns = append(columns, name)
	}

	add(attribute)
	for _, tag := range b.languages {
		for _, name := range lang.FieldChain(attribute, tag) {
			add(name)
		}
	}

	return columns
}

func (b *Behavior) sourceValue(ctx context.Context, source any, attribute string) (string, error) {
	info, err := schema.Inspect(b.db, source)
	if err != nil {
		return "", err
	}

	for _, name := range lang.Candidates(attribute, b.Language(ctx), b.sourceLanguage) {
		value, ok := info.Value(ctx, source, name)
		if !ok {
			continue
		}
		if !isEmptyValue(value) {
			return renderValue(value), nil
		}
	}

	return "", nil
}

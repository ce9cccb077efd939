package langfield

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/langfield/langfield/memo"
)

// valueColumn is the alias of the derived first-non-empty column.
const valueColumn = "value"

// ValueEntry is one resolved value; ID is empty when the model has no
// single identity column.
type ValueEntry struct {
	ID    string
	Value string
}

// ValueSet is the outcome of List: resolved values in store order (or
// sorted ascending when requested), additionally indexed by identity when
// the model has exactly one primary-key column.
type ValueSet struct {
	Entries []ValueEntry
	ByID    map[string]string
}

// Values returns just the resolved values, in entry order.
func (v *ValueSet) Values() []string {
	values := make([]string, len(v.Entries))
	for i, entry := range v.Entries {
		values[i] = entry.Value
	}
	return values
}

type listQuery struct {
	scope Scope
	sort  bool
}

// ListOption refines a single List call.
type ListOption func(*listQuery)

// ListWithScope applies a call-level filter. Filtered calls always hit the
// store; they neither read nor write the memo.
func ListWithScope(scope Scope) ListOption {
	return func(q *listQuery) {
		q.scope = scope
	}
}

// ListSorted overrides the configured ordering for one call.
func ListSorted(sorted bool) ListOption {
	return func(q *listQuery) {
		q.sort = sorted
	}
}

// List resolves an attribute across all records of the bound model. The
// store computes one derived column, the first non-empty of the candidate
// columns in fallback order. Unfiltered results are memoized per (table,
// attribute, language, source language, ordering) for the process
// lifetime and repeated calls return the same *ValueSet.
func (b *Behavior) List(ctx context.Context, attribute string, opts ...ListOption) (*ValueSet, error) {
	if err := b.managed(attribute); err != nil {
		return nil, err
	}

	current := b.Language(ctx)
	candidates, err := b.candidatesFor(attribute, current)
	if err != nil {
		return nil, err
	}

	query := listQuery{sort: b.sort}
	for _, opt := range opts {
		opt(&query)
	}

	unfiltered := b.scope == nil && query.scope == nil
	key := memo.Key{
		Table:     b.info.Table,
		Attribute: attribute,
		Language:  current,
		Source:    b.sourceLanguage,
		Sorted:    query.sort,
	}
	if unfiltered {
		if cached, ok := b.memo.Get(key); ok {
			if values, isSet := cached.(*ValueSet); isSet {
				return values, nil
			}
		}
	}

	values, err := b.queryValues(ctx, candidates, &query)
	if err != nil {
		return nil, err
	}

	if unfiltered {
		b.memo.Set(key, values)
	}
	return values, nil
}

func (b *Behavior) queryValues(ctx context.Context, candidates []string, query *listQuery) (*ValueSet, error) {
	identity := b.info.IdentityColumn

	// Built from the model, not the bare table name, so that GORM's usual
	// model scoping (soft deletes in particular) applies to list queries
	// the same way it does to every other query on the type.
	db := b.db.WithContext(ctx).Model(b.model)
	if identity != "" {
		db = db.Select(identity + ", " + coalesceExpr(candidates))
	} else {
		db = db.Select(coalesceExpr(candidates))
	}

	if b.scope != nil {
		db = db.Scopes(b.scope)
	}
	if query.scope != nil {
		db = db.Scopes(query.scope)
	}
	if query.sort {
		db = db.Order(valueColumn + " ASC")
	}

	rows, err := db.Rows()
	if err != nil {
		return nil, fmt.Errorf("list %q values: %w", b.info.Table, err)
	}
	defer rows.Close()

	values := &ValueSet{}
	if identity != "" {
		values.ByID = make(map[string]string)
	}

	for rows.Next() {
		var entry ValueEntry
		var value sql.NullString

		if identity != "" {
			var id sql.NullString
			if err = rows.Scan(&id, &value); err != nil {
				return nil, err
			}
			entry = ValueEntry{ID: id.String, Value: value.String}
			values.ByID[entry.ID] = entry.Value
		} else {
			if err = rows.Scan(&value); err != nil {
				return nil, err
			}
			entry = ValueEntry{Value: value.String}
		}

		values.Entries = append(values.Entries, entry)
	}

	return values, rows.Err()
}

// coalesceExpr folds the candidate columns into a single derived column:
// COALESCE(NULLIF(c1, ''), ..., '') AS value. Candidate names come from
// the parsed model schema, never from callers.
func coalesceExpr(candidates []string) string {
	args := make([]string, 0, len(candidates)+1)
	for _, name := range candidates {
		args = append(args, fmt.Sprintf("NULLIF(%s, '')", name))
	}
	args = append(args, "''")
	return fmt.Sprintf("COALESCE(%s) AS %s", strings.Join(args, ", "), valueColumn)
}

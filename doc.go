// Package langfield resolves the best available localized value for a
// logical attribute on a GORM model, following a language-suffixed column
// naming convention.
//
// For an attribute "name", an application language "en-US" and a source
// language "ru", the lookup order is name_en_us, name_en, name_ru, name;
// the first column that exists on the model and holds a non-empty value
// wins. A Behavior bound to a model type exposes three operations on top
// of that rule: Get (pick one record's value), List (collect the resolved
// value across all records, optionally memoized), and Copy (propagate a
// value into every language-qualified column of another record).
//
// The application language is carried explicitly on the context via
// ToContext/FromContext; nothing in this package mutates global state.
package langfield

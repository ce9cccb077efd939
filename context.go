package langfield

import "context"

type contextKey string

func (c contextKey) String() string {
	return "langfield/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// ToContext pins the application language for downstream resolution.
func ToContext(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, tag)
}

// FromContext extracts the application language from the supplied context
// if any was set.
func FromContext(ctx context.Context) string {
	tag, ok := ctx.Value(ctxKeyLanguage).(string)
	if !ok {
		return ""
	}

	return tag
}

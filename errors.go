package langfield

import "fmt"

// NoLanguageFieldError reports that an attribute has no matching column on
// the bound model at all, not even the bare attribute name. It signals a
// configuration or schema mismatch the caller has to fix; there is no
// recovery inside this package.
type NoLanguageFieldError struct {
	Attribute string
	Table     string
}

func (e *NoLanguageFieldError) Error() string {
	return fmt.Sprintf("langfield: no language field found for attribute %q on table %q", e.Attribute, e.Table)
}

// NotManagedError reports an operation on an attribute outside the set the
// Behavior was configured to manage.
type NotManagedError struct {
	Attribute string
}

func (e *NotManagedError) Error() string {
	return fmt.Sprintf("langfield: attribute %q is not managed by this behavior", e.Attribute)
}

// Package validation turns raw request payloads into canonical typed records.
//
// Each resource kind has one schema per operation (create vs. partial
// update). A schema validates the whole payload in a single pass, collecting
// every violation instead of stopping at the first, and silently drops
// unrecognized fields. The canonical record it produces is what the usecase
// and persistence layers consume; the raw payload never travels further.
//
// Field handling follows a per-field policy rather than one global rule:
//
//	strict-fail      wrong type or out-of-bounds scalar fields, oversized
//	                 arrays, order line items
//	lenient-drop     inventory location entries with an empty warehouse or a
//	                 bad quantity, empty feature strings
//	lenient-default  absent optional fields, empty category name, list query
//	                 parameters, stale page tokens (handled in persistence)
package validation

import (
	"fmt"

	domainerrors "storefront/internal/domain/errors"
)

// violations accumulates human-readable messages for every violated field.
type violations []string

func (v *violations) addf(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

// err returns nil when nothing was collected, otherwise a ValidationError
// enumerating all messages.
func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(v)
}

// errAtLeastOneField is the failure for update payloads that touch no
// recognized field.
func errAtLeastOneField() error {
	return domainerrors.NewValidationError([]string{"at least one field required"})
}

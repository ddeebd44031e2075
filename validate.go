// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DefaultValidator returns a *validator.Validate configured the way this
// module expects: a "notblank" rule available to callers that validate
// string-keyed entries, mirroring the host application's own
// DefaultValidator.
func DefaultValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("notblank", validators.NotBlank)
	return validate
}

// EntryWalker is satisfied by every keyed collection in this module
// (HashDict, SortedDict, SmallMap); All stops early if fn returns false.
type EntryWalker[K any, V any] interface {
	All(fn func(K, V) bool)
}

// ValidateEntries walks every value in w through validate.Struct, collecting
// every failure instead of stopping at the first one. This is the same
// shape as the host application's HAMTValidation struct-level validator,
// which walks a HAMT's entries via All and validates each value in turn —
// generalized here to any of this module's keyed collections instead of one
// hand-rolled case per concrete type.
func ValidateEntries[K any, V any](w EntryWalker[K, V], validate *validator.Validate) error {
	var errs []error
	w.All(func(k K, v V) bool {
		if err := validate.Struct(v); err != nil {
			errs = append(errs, fmt.Errorf("entry %v: %w", k, err))
		}
		return true
	})
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d invalid entries: %w", len(errs), errors.Join(errs...))
}

// SPDX-License-Identifier: MIT

package property

import "errors"

// Sentinel errors for column registration and lookup.
var (
	// ErrEmptyName indicates a column was registered without a name.
	ErrEmptyName = errors.New("property: column name is empty")

	// ErrDuplicateName indicates a column with the same name is already registered.
	ErrDuplicateName = errors.New("property: column already exists")

	// ErrNotFound indicates no column is registered under the requested name.
	ErrNotFound = errors.New("property: column not found")

	// ErrTypeMismatch indicates the column exists but stores a different value type.
	ErrTypeMismatch = errors.New("property: column type mismatch")
)

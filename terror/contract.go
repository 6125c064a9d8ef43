// SPDX-License-Identifier: MIT

package terror

// Public API.

type (
	// Err decorates a sentinel error with structured data, e.g. the field a
	// validation failure applies to and its user-safe message.
	Err struct {
		error
		Data map[string]any `json:"data"`
	}
)

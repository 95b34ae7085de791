// SPDX-License-Identifier: MIT

package catalog

import "errors"

var (
	// ErrMalformedLine reports a catalog row that cannot be parsed.
	ErrMalformedLine = errors.New("catalog: malformed line")

	// ErrUnknownStatus reports a colour or status word outside the known set.
	ErrUnknownStatus = errors.New("catalog: unknown status")
)

// SPDX-License-Identifier: MIT

package design

import "errors"

// ErrNoConstruction indicates that the oracle knows no construction for the
// requested parameters (the matching existence query returns false).
var ErrNoConstruction = errors.New("design: no construction known")

// ErrInvalidDesign indicates that a block system or array fails its defining
// balance property. Returned by the Validate* helpers.
var ErrInvalidDesign = errors.New("design: invalid design")

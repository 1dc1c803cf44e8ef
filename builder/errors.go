// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices is returned when a partition size is below 1.
var ErrTooFewVertices = errors.New("builder: too few vertices")

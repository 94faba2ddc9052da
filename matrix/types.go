// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on SetRow and Apply.
const DefaultValidateNaNInf = true

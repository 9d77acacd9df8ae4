// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import "math"

// Heaviside computes the smoothed Heaviside function of the signed distance phi
// (positive in air) with smoothing half-width eps:
//
//          ⎧ 0                                    phi ≤ -eps
//   H    = ⎨ ½・(1 + phi/eps + sin(π・phi/eps)/π)    |phi| < eps
//          ⎩ 1                                    phi ≥ eps
//
//  eps == 0 gives the step function with H(0) = 1
func Heaviside(eps, phi float64) float64 {
	if eps <= 0 {
		if phi >= 0 {
			return 1
		}
		return 0
	}
	if phi >= eps {
		return 1
	}
	if phi <= -eps {
		return 0
	}
	return 0.5 * (1.0 + phi/eps + math.Sin(math.Pi*phi/eps)/math.Pi)
}

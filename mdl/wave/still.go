// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

// Still implements a quiescent water surface at level Level
type Still struct {
	Level float64 // still water level
}

// add model to factory
func init() {
	allocators["still"] = func(prms *Prms, vert int) (Model, error) {
		return &Still{Level: prms.Level}, nil
	}
}

// Mwl returns the still water level
func (o Still) Mwl() float64 { return o.Level }

// Eta returns zero
func (o Still) Eta(t float64, x []float64) float64 { return 0 }

// U sets zero velocity
func (o Still) U(u []float64, t float64, x []float64) {
	u[0], u[1], u[2] = 0, 0, 0
}

// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Opts holds options for blending wave kinematics with air conditions
type Opts struct {
	VertAxis  int       // index of vertical axis (aligned with gravity)
	Wind      []float64 // wind velocity (air phase); nil => zero
	Smoothing float64   // half-width of the smoothed free surface; 0 => sharp interface
	VofAir    float64   // volume fraction of air
	VofWater  float64   // volume fraction of water
}

// DefaultOpts returns default options for a domain with ndim dimensions
func DefaultOpts(ndim int) Opts {
	return Opts{VertAxis: ndim - 1, VofAir: 1, VofWater: 0}
}

// Blender computes velocity, pressure and volume fraction at a point by blending
// wave kinematics (water) with wind (air) through the smoothed Heaviside function
// of the signed distance to the wave-modulated free surface.
//  Note: Blender holds scratch buffers and must not be shared among goroutines
type Blender struct {
	Model     Model      // wave kinematics
	VertAxis  int        // index of vertical axis
	Smoothing float64    // half-width of smoothed interface
	Wind      [3]float64 // wind velocity
	BOr       [3]float64 // outward normal of boundary; used by Pressure
	VofAir    float64    // volume fraction of air
	VofWater  float64    // volume fraction of water

	// scratchpad
	xs    [3]float64 // point moved onto the free surface
	water [3]float64 // water velocity
	u     [3]float64 // blended velocity
}

// NewBlender returns a new Blender
//  bor -- outward normal of boundary; may be nil if Pressure is not needed
func NewBlender(model Model, bor []float64, opts Opts) (o *Blender, err error) {
	if model == nil {
		return nil, chk.Err("wave model must be given to blend wave and air conditions")
	}
	if opts.VertAxis < 0 || opts.VertAxis > 2 {
		return nil, chk.Err("vertical axis index must be 0, 1 or 2. %d is invalid", opts.VertAxis)
	}
	if opts.Smoothing < 0 {
		return nil, chk.Err("smoothing must be non-negative. %g is invalid", opts.Smoothing)
	}
	if len(opts.Wind) > 3 || len(bor) > 3 {
		return nil, chk.Err("wind speed and boundary orientation must have at most 3 components")
	}
	o = &Blender{
		Model:     model,
		VertAxis:  opts.VertAxis,
		Smoothing: opts.Smoothing,
		VofAir:    opts.VofAir,
		VofWater:  opts.VofWater,
	}
	copy(o.Wind[:], opts.Wind)
	copy(o.BOr[:], bor)
	return
}

// Phi computes the signed distance to the free surface along the vertical axis;
// positive in air
func (o *Blender) Phi(t float64, x []float64) float64 {
	level := o.Model.Mwl() + o.Model.Eta(t, x)
	return x[o.VertAxis] - level
}

// H computes the smoothed Heaviside function at (t,x); 1 in air, 0 in water
func (o *Blender) H(t float64, x []float64) float64 {
	return Heaviside(o.Smoothing, o.Phi(t, x))
}

// Velocity computes the blended velocity u = H・wind + (1-H)・water
//  Within the smoothed band on the air side (½ < H < 1), the water velocity is
//  evaluated at the point moved onto the free surface instead of being extrapolated
//  into the air. H == ½ belongs to the water side
func (o *Blender) Velocity(u []float64, t float64, x []float64) {
	φ := o.Phi(t, x)
	H := Heaviside(o.Smoothing, φ)
	switch {
	case H <= 0.5:
		o.Model.U(o.water[:], t, x)
	case H < 1:
		copy(o.xs[:], x)
		o.xs[o.VertAxis] -= φ
		o.Model.U(o.water[:], t, o.xs[:])
	default:
		o.water[0], o.water[1], o.water[2] = 0, 0, 0
	}
	for i := 0; i < 3; i++ {
		u[i] = H*o.Wind[i] + (1.0-H)*o.water[i]
	}
}

// Pressure computes the advective pressure flux condition, i.e. the inflow velocity
// normal to the boundary: p = -BOr・u
func (o *Blender) Pressure(t float64, x []float64) float64 {
	o.Velocity(o.u[:], t, x)
	return -floats.Dot(o.BOr[:], o.u[:])
}

// Vof computes the volume fraction of air, i.e. the smoothed Heaviside H of phi
//  Note: VofAir and VofWater are not used here; they are kept for constant phase conditions
func (o *Blender) Vof(t float64, x []float64) float64 {
	return o.H(t, x)
}

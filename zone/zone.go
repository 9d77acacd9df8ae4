// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package zone implements relaxation zones that generate or absorb waves by
// penalising the velocity within regions of the mesh
package zone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/prklVIP/proteus/mdl/wave"
	"gonum.org/v1/gonum/floats"
)

// ErrConfig indicates an invalid definition of a relaxation zone
var ErrConfig = errors.New("invalid relaxation zone")

// Type defines the type of relaxation zone
type Type int

const (
	Unknown    Type = iota // not set
	Generation             // waves are imposed
	Absorption             // velocity is relaxed to zero
	Porous                 // porous medium
)

// String returns the name of the zone type
func (o Type) String() string {
	switch o {
	case Generation:
		return "generation"
	case Absorption:
		return "absorption"
	case Porous:
		return "porous"
	}
	return "unknown"
}

// GetType returns the zone type corresponding to name (case insensitive)
func GetType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "generation":
		return Generation, nil
	case "absorption":
		return Absorption, nil
	case "porous":
		return Porous, nil
	}
	return Unknown, fmt.Errorf("%w: type %q is not available", ErrConfig, name)
}

// Zone holds a relaxation zone: wave generation, wave absorption or porous region.
//  The solid fraction function (phi) of generation and absorption zones is the signed
//  distance to the plane through Center with normal Orientation:
//        phi(x) = Orientation・(Center - x)
type Zone struct {

	// geometry
	Type         Type      // type of zone
	Center       []float64 // center of zone (3 components)
	Orientation  []float64 // from boundary to tank (3 components)
	EpsFactSolid float64   // half the length of the zone

	// kinematics
	Waves *wave.Blender // waves imposed in generation zones

	// porous medium
	DragAlpha float64 // linear drag coefficient
	DragBeta  float64 // quadratic drag coefficient
	Porosity  float64 // porosity

	// internal
	kind *kind      // functions selected by Init
	d    [3]float64 // scratch: Center - x
}

// kind holds the functions corresponding to one zone type
type kind struct {
	phi func(o *Zone, x []float64) float64
	vel func(o *Zone, u []float64, t float64, x []float64)
}

// kinds holds the functions of all zone types
var kinds = map[Type]*kind{
	Generation: {phi: phiPlane, vel: velWave},
	Absorption: {phi: phiPlane, vel: velZero},
	Porous:     {phi: phiPorous, vel: velZero},
}

// New returns a new relaxation zone with default porous-medium parameters
//  waves -- wave and wind kinematics; required by generation zones only
func New(typ Type, center, orientation []float64, epsFactSolid float64, waves *wave.Blender) (o *Zone, err error) {
	if len(center) < 2 || len(center) > 3 || len(orientation) < 2 || len(orientation) > 3 {
		return nil, fmt.Errorf("%w: center and orientation must have 2 or 3 components. center=%v, orientation=%v", ErrConfig, center, orientation)
	}
	o = &Zone{
		Type:         typ,
		Center:       make([]float64, 3),
		Orientation:  make([]float64, 3),
		EpsFactSolid: epsFactSolid,
		Waves:        waves,
		DragAlpha:    0.5 / 1.005e-6,
		DragBeta:     0,
		Porosity:     1,
	}
	copy(o.Center, center)
	copy(o.Orientation, orientation)
	return
}

// Init selects the functions corresponding to the type of zone
func (o *Zone) Init() error {
	k, ok := kinds[o.Type]
	if !ok {
		return fmt.Errorf("%w: type %q is not available", ErrConfig, o.Type)
	}
	if o.Type == Generation && o.Waves == nil {
		return fmt.Errorf("%w: generation zone requires waves", ErrConfig)
	}
	if len(o.Center) != 3 || len(o.Orientation) != 3 {
		return fmt.Errorf("%w: center and orientation must have 3 components", ErrConfig)
	}
	o.kind = k
	return nil
}

// Phi computes the solid fraction function at x
func (o *Zone) Phi(x []float64) float64 {
	if o.kind == nil {
		chk.Panic("zone of type %q must be initialised first", o.Type)
	}
	return o.kind.phi(o, x)
}

// Velocity computes the target velocity at (t,x); u has 3 components
func (o *Zone) Velocity(u []float64, t float64, x []float64) {
	if o.kind == nil {
		chk.Panic("zone of type %q must be initialised first", o.Type)
	}
	o.kind.vel(o, u, t, x)
}

// functions /////////////////////////////////////////////////////////////////////////////////////////

func phiPlane(o *Zone, x []float64) float64 {
	for i := 0; i < 3; i++ {
		o.d[i] = o.Center[i] - x[i]
	}
	return floats.Dot(o.Orientation, o.d[:])
}

func phiPorous(o *Zone, x []float64) float64 {
	return o.EpsFactSolid
}

func velZero(o *Zone, u []float64, t float64, x []float64) {
	u[0], u[1], u[2] = 0, 0, 0
}

func velWave(o *Zone, u []float64, t float64, x []float64) {
	o.Waves.Velocity(u, t, x)
}

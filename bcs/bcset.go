// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/prklVIP/proteus/mdl/wave"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrConfig indicates missing or inconsistent parameters of a boundary condition
	ErrConfig = errors.New("invalid boundary condition")

	// ErrNotImplemented indicates a boundary condition that is not available yet
	ErrNotImplemented = errors.New("boundary condition not implemented")
)

// Shape defines the geometry owning a boundary
type Shape interface {
	Ndim() int // space dimension of the enclosing domain; 2 or 3
}

// BcSet holds all boundary conditions of one boundary (face) for two-phase flows:
// Dirichlet values, advective and diffusive fluxes of pressure, velocity, volume
// fraction (vof), turbulent kinetic energy (k) and dissipation, plus the conditions
// of the moving mesh.
//  Notes:
//   1) exactly one preset of flow conditions is active at a time; each preset resets
//      all flow conditions first
//   2) the conditions of the moving mesh are independent of the flow presets
type BcSet struct {
	Name   string        // name of boundary; e.g. "x-", "top"
	Shape  Shape         // [optional] shape owning this boundary
	BOr    []float64     // outward normal of boundary (3 components); nil if unknown
	Preset Preset        // active set of flow conditions
	Motion MeshMotion    // active set of mesh conditions
	Waves  *wave.Blender // wave and wind kinematics of an unsteady two-phase inlet
	Body   *RigidBody    // rigid body driving the mesh; shared with the host

	// internal
	conds [NumKeys]Cond // all conditions
	ndim  int           // space dimension
	vel   [3]float64    // scratch: velocity
	dsp   [3]float64    // scratch: mesh displacement
}

// NewBcSet returns a new set of boundary conditions
//  name  -- name of boundary
//  shape -- [optional] shape owning the boundary; nil => 3D
//  bor   -- [optional] outward normal; 2 components are allowed in 2D
func NewBcSet(name string, shape Shape, bor []float64) (o *BcSet, err error) {
	o = &BcSet{Name: name, Shape: shape, ndim: 3}
	if shape != nil {
		o.ndim = shape.Ndim()
		if o.ndim != 2 && o.ndim != 3 {
			return nil, chk.Err("boundary %q: space dimension must be 2 or 3. %d is invalid", name, o.ndim)
		}
	}
	if bor != nil {
		if len(bor) < o.ndim || len(bor) > 3 {
			return nil, chk.Err("boundary %q: orientation must have %d components. %v is invalid", name, o.ndim, bor)
		}
		o.BOr = make([]float64, 3)
		copy(o.BOr, bor)
	}
	for _, key := range meshStress {
		o.conds[key].SetConstant(0)
	}
	return
}

// Ndim returns the space dimension
func (o *BcSet) Ndim() int { return o.ndim }

// Get returns the condition corresponding to key
func (o *BcSet) Get(key Key) *Cond { return &o.conds[key] }

// Eval evaluates the condition corresponding to key at (t,x)
//  ok == false means that there is no constraint at (t,x)
func (o *BcSet) Eval(key Key, t float64, x []float64) (val float64, ok bool) {
	return o.conds[key].Eval(t, x)
}

// Keys returns the keys of all conditions that are set
func (o *BcSet) Keys() (keys []Key) {
	for i := 0; i < int(NumKeys); i++ {
		if o.conds[i].IsSet() {
			keys = append(keys, Key(i))
		}
	}
	return
}

// Reset resets all flow conditions. The conditions of the moving mesh are kept
func (o *BcSet) Reset() {
	for i := 0; i < NumFlowKeys; i++ {
		o.conds[i].Reset()
	}
	o.Preset = None
	o.Waves = nil
}

// presets ///////////////////////////////////////////////////////////////////////////////////////////

// SetNonMaterial sets non-material conditions: zero advective flux of vof and zero
// diffusive flux of velocity
func (o *BcSet) SetNonMaterial() {
	o.Reset()
	o.Preset = NonMaterial
	o.conds[VofAdvective].SetConstant(0)
	o.conds[UDiffusive].SetConstant(0)
	o.conds[VDiffusive].SetConstant(0)
	o.conds[WDiffusive].SetConstant(0)
}

// SetNoSlip sets no-slip conditions
func (o *BcSet) SetNoSlip() {
	o.Reset()
	o.Preset = NoSlip
	o.conds[UDirichlet].SetConstant(0)
	o.conds[VDirichlet].SetConstant(0)
	o.conds[WDirichlet].SetConstant(0)
	o.conds[PAdvective].SetConstant(0)
	o.conds[VofAdvective].SetConstant(0)
	o.conds[KDirichlet].SetConstant(0)
	o.conds[DissipationDiffusive].SetConstant(0)
}

// SetFreeSlip sets free-slip conditions
func (o *BcSet) SetFreeSlip() {
	o.Reset()
	o.Preset = FreeSlip
	o.conds[PAdvective].SetConstant(0)
	o.conds[UAdvective].SetConstant(0)
	o.conds[VAdvective].SetConstant(0)
	o.conds[WAdvective].SetConstant(0)
	o.conds[VofAdvective].SetConstant(0)
	o.conds[KDirichlet].SetConstant(0)
	o.conds[UDiffusive].SetConstant(0)
	o.conds[VDiffusive].SetConstant(0)
	o.conds[WDiffusive].SetConstant(0)
	o.conds[DissipationDiffusive].SetConstant(0)
}

// SetAtmosphere sets open air conditions where water can flow out. The pressure is
// zero and velocity components aligned with the boundary normal are zero
//  orientation -- [optional] orientation of boundary; nil => use BOr
//  vofAir      -- volume fraction of air; e.g. 1
func (o *BcSet) SetAtmosphere(orientation []float64, vofAir float64) error {
	bor := o.BOr
	if orientation != nil {
		if len(orientation) < o.ndim || len(orientation) > 3 {
			return fmt.Errorf("%w: boundary %q: orientation must have %d components. %v is invalid", ErrConfig, o.Name, o.ndim, orientation)
		}
		bor = make([]float64, 3)
		copy(bor, orientation)
	}
	if bor == nil {
		return fmt.Errorf("%w: boundary %q: orientation is required by %v", ErrConfig, o.Name, OpenAir)
	}
	o.Reset()
	o.Preset = OpenAir
	o.conds[PDirichlet].SetConstant(0)
	for i, key := range velDirichlet {
		if bor[i] == 1 || bor[i] == -1 {
			o.conds[key].SetConstant(0)
		}
	}
	o.conds[VofDirichlet].SetConstant(vofAir)
	o.conds[UDiffusive].SetConstant(0)
	o.conds[VDiffusive].SetConstant(0)
	o.conds[WDiffusive].SetConstant(0)
	o.conds[KDiffusive].SetConstant(0)
	o.conds[DissipationDiffusive].SetConstant(0)
	return nil
}

// SetUnsteadyTwoPhaseVelocityInlet imposes the velocity of waves below the free
// surface and wind above it, blended across the smoothed free surface
//  model -- wave kinematics
//  opts  -- [optional] blending options; nil => wave.DefaultOpts(Ndim)
func (o *BcSet) SetUnsteadyTwoPhaseVelocityInlet(model wave.Model, opts *wave.Opts) error {
	if o.BOr == nil {
		return fmt.Errorf("%w: boundary %q: orientation is required by %v", ErrConfig, o.Name, UnsteadyTwoPhaseVelocityInlet)
	}
	op := wave.DefaultOpts(o.ndim)
	if opts != nil {
		op = *opts
	}
	blender, err := wave.NewBlender(model, o.BOr, op)
	if err != nil {
		return fmt.Errorf("%w: boundary %q: %v", ErrConfig, o.Name, err)
	}
	o.Reset()
	o.Preset = UnsteadyTwoPhaseVelocityInlet
	o.Waves = blender
	for i, key := range velDirichlet {
		o.conds[key].SetFunc(o.inletVelocity(i))
	}
	o.conds[VofDirichlet].SetFunc(func(t float64, x []float64) (float64, bool) {
		return o.Waves.Vof(t, x), true
	})
	o.conds[PAdvective].SetFunc(func(t float64, x []float64) (float64, bool) {
		return o.Waves.Pressure(t, x), true
	})
	return nil
}

// SetTwoPhaseVelocityInlet imposes a constant velocity below the water level and an
// open boundary above it. Above the water level, velocity components that are zero
// in U remain zero and the others are unconstrained
//  U          -- inflow velocity (2 or 3 components)
//  waterLevel -- elevation of the water level
//  vertAxis   -- index of vertical axis; negative => Ndim-1
//  vofAir     -- volume fraction of air
//  vofWater   -- volume fraction of water
func (o *BcSet) SetTwoPhaseVelocityInlet(U []float64, waterLevel float64, vertAxis int, vofAir, vofWater float64) error {
	if len(U) < 2 || len(U) > 3 {
		return fmt.Errorf("%w: boundary %q: inflow velocity must have 2 or 3 components. %v is invalid", ErrConfig, o.Name, U)
	}
	if o.BOr == nil {
		return fmt.Errorf("%w: boundary %q: orientation is required by %v", ErrConfig, o.Name, TwoPhaseVelocityInlet)
	}
	if vertAxis < 0 {
		vertAxis = o.ndim - 1
	}
	if vertAxis > 2 {
		return fmt.Errorf("%w: boundary %q: vertical axis index %d is invalid", ErrConfig, o.Name, vertAxis)
	}
	var u [3]float64
	copy(u[:], U)
	pIn := -floats.Dot(u[:], o.BOr) // inflow velocity normal to boundary
	o.Reset()
	o.Preset = TwoPhaseVelocityInlet
	for i := 0; i < len(U); i++ {
		ui := u[i]
		o.conds[velDirichlet[i]].SetFunc(func(t float64, x []float64) (float64, bool) {
			if x[vertAxis] < waterLevel {
				return ui, true
			}
			if ui == 0 {
				return 0, true
			}
			return 0, false
		})
	}
	o.conds[VofDirichlet].SetFunc(func(t float64, x []float64) (float64, bool) {
		if x[vertAxis] < waterLevel {
			return vofWater, true
		}
		return vofAir, true
	})
	o.conds[PAdvective].SetFunc(func(t float64, x []float64) (float64, bool) {
		if x[vertAxis] < waterLevel {
			return pIn, true
		}
		return 0, false
	})
	return nil
}

// SetHydrostaticPressureOutlet would impose a hydrostatic pressure profile with an
// open boundary. It is not available yet and the conditions are not modified
func (o *BcSet) SetHydrostaticPressureOutlet(rho float64, g []float64, refLevel, vof, pRef float64, vertAxis int) error {
	return fmt.Errorf("%w: boundary %q: %v", ErrNotImplemented, o.Name, HydrostaticPressureOutlet)
}

// SetHydrostaticPressureOutletWithDepth would impose a hydrostatic pressure profile
// with a known outflow depth. It is not available yet and the conditions are not modified
func (o *BcSet) SetHydrostaticPressureOutletWithDepth(seaLevel, rhoUp, rhoDown float64, g []float64, refLevel, pRef float64, vertAxis int, vofAir, vofWater float64) error {
	return fmt.Errorf("%w: boundary %q: %v", ErrNotImplemented, o.Name, HydrostaticPressureOutletWithDepth)
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// inletVelocity returns the function computing the i-th component of the blended velocity
func (o *BcSet) inletVelocity(i int) Func {
	return func(t float64, x []float64) (float64, bool) {
		o.Waves.Velocity(o.vel[:], t, x)
		return o.vel[i], true
	}
}

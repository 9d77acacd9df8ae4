// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/prklVIP/proteus/bcs"
	"github.com/prklVIP/proteus/mdl/wave"
	"gonum.org/v1/gonum/mat"
)

// BodyData holds the state of a rigid body driving the motion of mesh nodes
type BodyData struct {
	LastPos []float64   `json:"lastpos" toml:"lastpos"` // last position of body
	H       []float64   `json:"h" toml:"h"`             // displacement of body
	Rot     [][]float64 `json:"rot" toml:"rot"`         // [3][3] rotation matrix; nil => identity
}

// FaceData holds face boundary condition
type FaceData struct {

	// face
	Tag    string    `json:"tag" toml:"tag"`       // tag of face. ex: "x-", "x+", "y-", "y+", "z-", "z+"
	Normal []float64 `json:"normal" toml:"normal"` // outward normal; nil => computed from tag
	Preset string    `json:"preset" toml:"preset"` // name of preset. ex: noslip, freeslip, openair
	Mesh   string    `json:"mesh" toml:"mesh"`     // motion of mesh nodes: "free", "fixed", "tank" or "driven"
	Body   *BodyData `json:"body" toml:"body"`     // rigid body; driven mesh only

	// open air
	Orientation []float64 `json:"orientation" toml:"orientation"` // orientation of boundary; nil => normal

	// waves and two-phase inlets
	Wave       string    `json:"wave" toml:"wave"`           // name of wave
	Vert       *int      `json:"vert" toml:"vert"`           // index of vertical axis; nil => ndim-1
	Wind       []float64 `json:"wind" toml:"wind"`           // wind velocity
	Smoothing  float64   `json:"smoothing" toml:"smoothing"` // half width of smoothed free surface
	VofAir     float64   `json:"vofair" toml:"vofair"`       // volume fraction of air; 0 => 1
	VofWater   float64   `json:"vofwater" toml:"vofwater"`   // volume fraction of water
	Velocity   []float64 `json:"u" toml:"u"`                 // inflow velocity; two-phase inlet only
	WaterLevel float64   `json:"wlevel" toml:"wlevel"`       // water level; two-phase inlet only

	// hydrostatic outlets
	Rho      float64   `json:"rho" toml:"rho"`           // density
	RhoUp    float64   `json:"rhoup" toml:"rhoup"`       // density of upper phase
	RhoDown  float64   `json:"rhodown" toml:"rhodown"`   // density of lower phase
	Grav     []float64 `json:"g" toml:"g"`               // gravity vector
	RefLevel float64   `json:"reflevel" toml:"reflevel"` // reference level
	SeaLevel float64   `json:"sealevel" toml:"sealevel"` // sea level
	PRef     float64   `json:"pref" toml:"pref"`         // reference pressure
}

// FacesData holds faces
type FacesData []*FaceData

// Get returns face boundary condition by tag
//  Note: returns nil if not found
func (o FacesData) Get(tag string) *FaceData {
	for _, f := range o {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// TagNormal returns the outward normal of the face of a box with a given tag
//  tag -- "x-", "x+", "y-", "y+", "z-" or "z+"
func TagNormal(tag string) (normal []float64, err error) {
	if len(tag) != 2 || strings.IndexByte("xyz", tag[0]) < 0 || (tag[1] != '-' && tag[1] != '+') {
		return nil, chk.Err("cannot compute normal of face tagged %q", tag)
	}
	normal = make([]float64, 3)
	normal[tag[0]-'x'] = 1
	if tag[1] == '-' {
		normal[tag[0]-'x'] = -1
	}
	return
}

// NewBcSet allocates a new set of boundary conditions according to face data
func (o *FaceData) NewBcSet(shape bcs.Shape, waves WavesData) (bc *bcs.BcSet, err error) {

	// normal
	normal := o.Normal
	if normal == nil {
		normal, err = TagNormal(o.Tag)
		if err != nil {
			return
		}
	}
	bc, err = bcs.NewBcSet(o.Tag, shape, normal)
	if err != nil {
		return
	}

	// options
	opts := wave.DefaultOpts(bc.Ndim())
	if o.Vert != nil {
		opts.VertAxis = *o.Vert
	}
	opts.Wind = o.Wind
	opts.Smoothing = o.Smoothing
	if o.VofAir > 0 {
		opts.VofAir = o.VofAir
	}
	opts.VofWater = o.VofWater

	// flow preset
	name := o.Preset
	if name == "" {
		name = "none"
	}
	preset, found := bcs.GetPreset(name)
	if !found {
		return nil, fmt.Errorf("%w: face %q: cannot find preset named %q", bcs.ErrConfig, o.Tag, o.Preset)
	}
	switch preset {
	case bcs.None:
	case bcs.NonMaterial:
		bc.SetNonMaterial()
	case bcs.NoSlip:
		bc.SetNoSlip()
	case bcs.FreeSlip:
		bc.SetFreeSlip()
	case bcs.OpenAir:
		err = bc.SetAtmosphere(o.Orientation, opts.VofAir)
	case bcs.UnsteadyTwoPhaseVelocityInlet:
		var mdl wave.Model
		mdl, err = waves.Get(o.Wave, opts.VertAxis)
		if err == nil {
			err = bc.SetUnsteadyTwoPhaseVelocityInlet(mdl, &opts)
		}
	case bcs.TwoPhaseVelocityInlet:
		err = bc.SetTwoPhaseVelocityInlet(o.Velocity, o.WaterLevel, opts.VertAxis, opts.VofAir, opts.VofWater)
	case bcs.HydrostaticPressureOutlet:
		err = bc.SetHydrostaticPressureOutlet(o.Rho, o.Grav, o.RefLevel, opts.VofAir, o.PRef, opts.VertAxis)
	case bcs.HydrostaticPressureOutletWithDepth:
		err = bc.SetHydrostaticPressureOutletWithDepth(o.SeaLevel, o.RhoUp, o.RhoDown, o.Grav, o.RefLevel, o.PRef, opts.VertAxis, opts.VofAir, opts.VofWater)
	}
	if err != nil {
		return nil, fmt.Errorf("face %q: %w", o.Tag, err)
	}

	// mesh motion
	switch strings.ToLower(o.Mesh) {
	case "", "free":
	case "fixed":
		bc.SetFixedNodes()
	case "tank":
		err = bc.SetTank()
	case "driven":
		var body *bcs.RigidBody
		body, err = o.Body.newRigidBody()
		if err == nil {
			err = bc.SetMoveMesh(body)
		}
	default:
		err = fmt.Errorf("%w: mesh motion %q is not available", bcs.ErrConfig, o.Mesh)
	}
	if err != nil {
		return nil, fmt.Errorf("face %q: %w", o.Tag, err)
	}
	return
}

// newRigidBody allocates a new rigid body handle
func (o *BodyData) newRigidBody() (*bcs.RigidBody, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: driven mesh requires body data", bcs.ErrConfig)
	}
	var rot *mat.Dense
	if o.Rot != nil {
		if len(o.Rot) != 3 {
			return nil, fmt.Errorf("%w: rotation matrix must be 3x3", bcs.ErrConfig)
		}
		rot = mat.NewDense(3, 3, nil)
		for i, row := range o.Rot {
			if len(row) != 3 {
				return nil, fmt.Errorf("%w: rotation matrix must be 3x3", bcs.ErrConfig)
			}
			rot.SetRow(i, row)
		}
	}
	return bcs.NewRigidBody(o.LastPos, o.H, rot)
}

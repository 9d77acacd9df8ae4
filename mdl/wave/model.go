// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wave implements wave kinematics models and the blending of wave and air
// conditions across a smoothed free surface
package wave

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Model defines what wave kinematics models must implement.
//  Note: x has 3 components; unused components are zero in 2D.
//        Implementations must not keep references to x or u.
type Model interface {
	Mwl() float64                          // mean (still) water level
	Eta(t float64, x []float64) float64    // free surface elevation above Mwl @ (t,x)
	U(u []float64, t float64, x []float64) // velocity @ (t,x); u has 3 components
}

// Prms holds the parameters of all wave models; each model uses a subset
type Prms struct {
	Height float64   `json:"height" toml:"height"` // wave height H (crest to trough)
	Period float64   `json:"period" toml:"period"` // wave period T
	Depth  float64   `json:"depth" toml:"depth"`   // still water depth h
	Level  float64   `json:"mwl" toml:"mwl"`       // mean water level (elevation of still surface)
	Dir    []float64 `json:"dir" toml:"dir"`       // direction of propagation
	Phase  float64   `json:"phase" toml:"phase"`   // phase ϕ [rad]
	Grav   float64   `json:"g" toml:"g"`           // gravity acceleration (positive); 0 => 9.81
}

// allocators holds all wave models
var allocators = make(map[string]func(prms *Prms, vert int) (Model, error))

// New allocates and initialises a wave model by name
//  vert -- index of vertical axis (aligned with gravity)
func New(name string, prms *Prms, vert int) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find wave model named %q", name)
	}
	if prms == nil {
		prms = new(Prms)
	}
	return alloc(prms, vert)
}

// Names returns the names of all available wave models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

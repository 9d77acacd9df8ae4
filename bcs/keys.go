// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import "strings"

// Key identifies one boundary condition of a BcSet
type Key int

// dirichlet, advective and diffusive conditions of the flow variables, followed by the
// conditions of the moving mesh
const (
	PDirichlet Key = iota
	UDirichlet
	VDirichlet
	WDirichlet
	VofDirichlet
	KDirichlet
	DissipationDirichlet
	PAdvective
	UAdvective
	VAdvective
	WAdvective
	VofAdvective
	KAdvective
	DissipationAdvective
	UDiffusive
	VDiffusive
	WDiffusive
	KDiffusive
	DissipationDiffusive
	HxDirichlet
	HyDirichlet
	HzDirichlet
	UStress
	VStress
	WStress
	NumKeys
)

// NumFlowKeys is the number of conditions of the flow variables; i.e. the ones cleared by Reset
const NumFlowKeys = int(HxDirichlet)

// keyNames holds the names of all keys
var keyNames = [NumKeys]string{
	"p_dirichlet", "u_dirichlet", "v_dirichlet", "w_dirichlet", "vof_dirichlet", "k_dirichlet", "dissipation_dirichlet",
	"p_advective", "u_advective", "v_advective", "w_advective", "vof_advective", "k_advective", "dissipation_advective",
	"u_diffusive", "v_diffusive", "w_diffusive", "k_diffusive", "dissipation_diffusive",
	"hx_dirichlet", "hy_dirichlet", "hz_dirichlet",
	"u_stress", "v_stress", "w_stress",
}

// String returns the name of key; e.g. "u_dirichlet"
func (o Key) String() string {
	if o < 0 || o >= NumKeys {
		return "unknown"
	}
	return keyNames[o]
}

// GetKey returns the key corresponding to name; e.g. "u_dirichlet" => UDirichlet
func GetKey(name string) (key Key, found bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return -1, false
}

// velocity components by axis
var (
	velDirichlet  = [3]Key{UDirichlet, VDirichlet, WDirichlet}
	meshDirichlet = [3]Key{HxDirichlet, HyDirichlet, HzDirichlet}
	meshStress    = [3]Key{UStress, VStress, WStress}
)

// Preset identifies the set of flow conditions currently active in a BcSet
type Preset int

const (
	None Preset = iota
	NonMaterial
	NoSlip
	FreeSlip
	OpenAir
	UnsteadyTwoPhaseVelocityInlet
	TwoPhaseVelocityInlet
	HydrostaticPressureOutlet
	HydrostaticPressureOutletWithDepth
)

// presetNames holds the names of presets
var presetNames = map[Preset]string{
	None:                               "None",
	NonMaterial:                        "NonMaterial",
	NoSlip:                             "NoSlip",
	FreeSlip:                           "FreeSlip",
	OpenAir:                            "OpenAir",
	UnsteadyTwoPhaseVelocityInlet:      "UnsteadyTwoPhaseVelocityInlet",
	TwoPhaseVelocityInlet:              "TwoPhaseVelocityInlet",
	HydrostaticPressureOutlet:          "HydrostaticPressureOutlet",
	HydrostaticPressureOutletWithDepth: "HydrostaticPressureOutletWithDepth",
}

// String returns the name of preset
func (o Preset) String() string {
	if name, ok := presetNames[o]; ok {
		return name
	}
	return "Unknown"
}

// PresetNameMap maps common names of boundary conditions (lowercase) to presets
var PresetNameMap = map[string]Preset{
	"none":                                   None,
	"nonmaterial":                            NonMaterial,
	"non_material":                           NonMaterial,
	"interior":                               NonMaterial,
	"noslip":                                 NoSlip,
	"no_slip":                                NoSlip,
	"wall":                                   NoSlip,
	"freeslip":                               FreeSlip,
	"free_slip":                              FreeSlip,
	"slip":                                   FreeSlip,
	"openair":                                OpenAir,
	"open_air":                               OpenAir,
	"atmosphere":                             OpenAir,
	"unsteadytwophasevelocityinlet":          UnsteadyTwoPhaseVelocityInlet,
	"unsteady_two_phase_velocity_inlet":      UnsteadyTwoPhaseVelocityInlet,
	"wave_inlet":                             UnsteadyTwoPhaseVelocityInlet,
	"twophasevelocityinlet":                  TwoPhaseVelocityInlet,
	"two_phase_velocity_inlet":               TwoPhaseVelocityInlet,
	"hydrostaticpressureoutlet":              HydrostaticPressureOutlet,
	"hydrostatic_pressure_outlet":            HydrostaticPressureOutlet,
	"hydrostaticpressureoutletwithdepth":     HydrostaticPressureOutletWithDepth,
	"hydrostatic_pressure_outlet_with_depth": HydrostaticPressureOutletWithDepth,
}

// GetPreset returns the preset corresponding to name (case insensitive)
func GetPreset(name string) (preset Preset, found bool) {
	preset, found = PresetNameMap[strings.ToLower(name)]
	return
}

// MeshMotion identifies the conditions of the moving mesh in a BcSet
type MeshMotion int

const (
	Free   MeshMotion = iota // no conditions on mesh displacement
	Fixed                    // nodes fixed
	Driven                   // nodes moved with a rigid body
	Tank                     // nodes slide along the boundary
)

// String returns the name of mesh motion
func (o MeshMotion) String() string {
	switch o {
	case Free:
		return "Free"
	case Fixed:
		return "Fixed"
	case Driven:
		return "Driven"
	case Tank:
		return "Tank"
	}
	return "Unknown"
}

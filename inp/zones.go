// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/prklVIP/proteus/mdl/wave"
	"github.com/prklVIP/proteus/zone"
	"gonum.org/v1/gonum/floats"
)

// ZoneData holds relaxation zone data
type ZoneData struct {

	// input
	Id          int       `json:"id" toml:"id"`                   // material id of elements in zone
	Type        string    `json:"type" toml:"type"`               // type of zone: "generation", "absorption" or "porous"
	Center      []float64 `json:"center" toml:"center"`           // center of zone
	Orientation []float64 `json:"orientation" toml:"orientation"` // from boundary to tank
	EpsFact     float64   `json:"epsfact" toml:"epsfact"`         // half length of zone
	Wave        string    `json:"wave" toml:"wave"`               // name of wave; generation zones only
	Vert        *int      `json:"vert" toml:"vert"`               // index of vertical axis; nil => ndim-1
	Wind        []float64 `json:"wind" toml:"wind"`               // wind velocity
	Smoothing   float64   `json:"smoothing" toml:"smoothing"`     // half width of smoothed free surface
	VofAir      float64   `json:"vofair" toml:"vofair"`           // volume fraction of air; 0 => 1
	VofWater    float64   `json:"vofwater" toml:"vofwater"`       // volume fraction of water
	DragAlpha   float64   `json:"dragalpha" toml:"dragalpha"`     // linear drag coefficient; 0 => default
	DragBeta    float64   `json:"dragbeta" toml:"dragbeta"`       // quadratic drag coefficient
	Porosity    float64   `json:"porosity" toml:"porosity"`       // porosity; 0 => 1
}

// ZonesData holds zones
type ZonesData []*ZoneData

// Get returns zone data by material id
//  Note: returns nil if not found
func (o ZonesData) Get(id int) *ZoneData {
	for _, z := range o {
		if z.Id == id {
			return z
		}
	}
	return nil
}

// Contains tells whether x is within the zone; i.e. whether the distance from x to the
// plane through Center, measured along Orientation, is not greater than EpsFact
//  Note: x has 3 components
func (o *ZoneData) Contains(x []float64) bool {
	var d [3]float64
	for i := 0; i < len(o.Center) && i < 3; i++ {
		d[i] = o.Center[i] - x[i]
	}
	var n [3]float64
	copy(n[:], o.Orientation)
	return math.Abs(floats.Dot(n[:], d[:])) <= o.EpsFact*(1+1e-12)
}

// NewZone allocates a new relaxation zone
func (o *ZoneData) NewZone(waves WavesData, ndim int) (z *zone.Zone, err error) {
	typ, err := zone.GetType(o.Type)
	if err != nil {
		return nil, fmt.Errorf("zone %d: %w", o.Id, err)
	}
	var blender *wave.Blender
	if typ == zone.Generation {
		if o.Wave == "" {
			return nil, chk.Err("zone %d: generation zone requires the name of a wave", o.Id)
		}
		opts := wave.DefaultOpts(ndim)
		if o.Vert != nil {
			opts.VertAxis = *o.Vert
		}
		opts.Wind = o.Wind
		opts.Smoothing = o.Smoothing
		if o.VofAir > 0 {
			opts.VofAir = o.VofAir
		}
		opts.VofWater = o.VofWater
		mdl, err := waves.Get(o.Wave, opts.VertAxis)
		if err != nil {
			return nil, fmt.Errorf("zone %d: %w", o.Id, err)
		}
		blender, err = wave.NewBlender(mdl, nil, opts)
		if err != nil {
			return nil, fmt.Errorf("zone %d: %w", o.Id, err)
		}
	}
	z, err = zone.New(typ, o.Center, o.Orientation, o.EpsFact, blender)
	if err != nil {
		return nil, fmt.Errorf("zone %d: %w", o.Id, err)
	}
	if o.DragAlpha > 0 {
		z.DragAlpha = o.DragAlpha
	}
	z.DragBeta = o.DragBeta
	if o.Porosity > 0 {
		z.Porosity = o.Porosity
	}
	return
}

// NewGenerator allocates and initialises a generator with all zones
func (o ZonesData) NewGenerator(waves WavesData, ndim int, verbose bool) (gen *zone.Generator, err error) {
	zones := make(map[int]*zone.Zone)
	for _, zd := range o {
		if _, found := zones[zd.Id]; found {
			return nil, chk.Err("material id %d is used by more than one zone", zd.Id)
		}
		zones[zd.Id], err = zd.NewZone(waves, ndim)
		if err != nil {
			return
		}
	}
	gen, err = zone.NewGenerator(zones, ndim)
	if err != nil {
		return
	}
	gen.Verbose = verbose
	err = gen.Init()
	return
}

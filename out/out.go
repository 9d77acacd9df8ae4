// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reports on boundary conditions and relaxation zones
package out

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/prklVIP/proteus/bcs"
	"github.com/prklVIP/proteus/zone"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// keys of results
var ResKeys = []string{"npts", "phimin", "phimax", "umax", "umean"}

// ZoneStats holds statistics of the quadrature points of one relaxation zone
type ZoneStats struct {
	Id        int       // material id of zone
	Type      zone.Type // type of zone
	Npts      int       // number of quadrature points in zone
	PhiMin    float64   // min solid fraction function
	PhiMax    float64   // max solid fraction function
	SpeedMax  float64   // max norm of velocity
	SpeedMean float64   // mean norm of velocity
}

// Stats computes the statistics of all zones using the results in levels
//  Note: zones without points have zero statistics
func Stats(gen *zone.Generator, levels ...*zone.Level) (res []*ZoneStats) {
	phi := make(map[int][]float64)
	spd := make(map[int][]float64)
	for _, lev := range levels {
		for e := 0; e < lev.Ne; e++ {
			id := lev.MatTypes[e]
			if gen.Get(id) == nil {
				continue
			}
			for q := 0; q < lev.Nq; q++ {
				p := e*lev.Nq + q
				v := lev.VelSolid[p*3 : p*3+gen.Ndim]
				phi[id] = append(phi[id], lev.PhiSolid[p])
				spd[id] = append(spd[id], math.Sqrt(floats.Dot(v, v)))
			}
		}
	}
	for _, id := range gen.Ids() {
		s := &ZoneStats{Id: id, Type: gen.Get(id).Type, Npts: len(phi[id])}
		if s.Npts > 0 {
			s.PhiMin = floats.Min(phi[id])
			s.PhiMax = floats.Max(phi[id])
			s.SpeedMax = floats.Max(spd[id])
			s.SpeedMean = stat.Mean(spd[id], nil)
		}
		res = append(res, s)
	}
	return
}

// Get returns the value corresponding to key; see ResKeys
func (o *ZoneStats) Get(key string) float64 {
	switch key {
	case "npts":
		return float64(o.Npts)
	case "phimin":
		return o.PhiMin
	case "phimax":
		return o.PhiMax
	case "umax":
		return o.SpeedMax
	case "umean":
		return o.SpeedMean
	}
	chk.Panic("cannot find result with key %q", key)
	return 0
}

// ZoneSummary returns a table with the statistics of zones at time t
func ZoneSummary(t float64, stats []*ZoneStats) string {
	l := io.Sf("relaxation zones @ t = %g\n", t)
	l += io.Sf("%4s%12s%8s%13s%13s%13s%13s\n", "id", "type", "npts", "phimin", "phimax", "umax", "umean")
	for _, s := range stats {
		l += io.Sf("%4d%12s%8d%13.5e%13.5e%13.5e%13.5e\n", s.Id, s.Type, s.Npts, s.PhiMin, s.PhiMax, s.SpeedMax, s.SpeedMean)
	}
	return l
}

// BcTable returns a table with the conditions of a boundary evaluated at points X
//  Note: unconstrained values are shown as "-"
func BcTable(bc *bcs.BcSet, t float64, X [][]float64) string {
	l := io.Sf("boundary %q: preset = %v, mesh = %v, normal = %v\n", bc.Name, bc.Preset, bc.Motion, bc.BOr)
	keys := bc.Keys()
	if len(keys) == 0 {
		return l + "  no conditions\n"
	}
	for _, key := range keys {
		line := []string{io.Sf("  %-22s%-9v", key, bc.Get(key).Kind())}
		for _, x := range X {
			val, ok := bc.Eval(key, t, x)
			if ok {
				line = append(line, io.Sf("%12.5g", val))
			} else {
				line = append(line, io.Sf("%12s", "-"))
			}
		}
		l += strings.Join(line, "") + "\n"
	}
	return l
}

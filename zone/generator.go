// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zone

import (
	"fmt"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Level holds the quadrature data of one mesh level of the hosting solver.
// Arrays are flat and numbered as the solver numbers quadrature points:
//  X[(e*Nq+q)*3+i], PhiSolid[e*Nq+q], VelSolid[(e*Nq+q)*3+i]
type Level struct {
	T        float64   // current time
	Ne       int       // number of elements
	Nq       int       // number of quadrature points per element
	X        []float64 // [Ne*Nq*3] coordinates of quadrature points
	MatTypes []int     // [Ne] material id of each element

	// output
	PhiSolid []float64 // [Ne*Nq] solid fraction function
	VelSolid []float64 // [Ne*Nq*3] velocity of solid (target velocity)
}

// NewLevel allocates a new level with ne elements and nq quadrature points per element
func NewLevel(ne, nq int) *Level {
	return &Level{
		Ne:       ne,
		Nq:       nq,
		X:        make([]float64, ne*nq*3),
		MatTypes: make([]int, ne),
		PhiSolid: make([]float64, ne*nq),
		VelSolid: make([]float64, ne*nq*3),
	}
}

// Check checks the sizes of arrays
func (o *Level) Check() error {
	if o.Ne < 0 || o.Nq < 0 {
		return chk.Err("numbers of elements and quadrature points must be non-negative. Ne=%d, Nq=%d", o.Ne, o.Nq)
	}
	n := o.Ne * o.Nq
	if len(o.X) != n*3 {
		return chk.Err("X must have %d components. %d is incorrect", n*3, len(o.X))
	}
	if len(o.MatTypes) != o.Ne {
		return chk.Err("MatTypes must have %d components. %d is incorrect", o.Ne, len(o.MatTypes))
	}
	if len(o.PhiSolid) != n {
		return chk.Err("PhiSolid must have %d components. %d is incorrect", n, len(o.PhiSolid))
	}
	if len(o.VelSolid) != n*3 {
		return chk.Err("VelSolid must have %d components. %d is incorrect", n*3, len(o.VelSolid))
	}
	return nil
}

// Generator computes the solid fraction function and target velocity of all
// relaxation zones at the quadrature points of the elements tagged with zone ids
type Generator struct {
	Zones   map[int]*Zone // material id => zone
	Ndim    int           // space dimension
	Verbose bool          // show messages

	// internal
	lookup []*Zone    // [maxId+1] dense lookup; nil if id has no zone
	u      [3]float64 // scratch: velocity at one point
}

// NewGenerator returns a new generator
func NewGenerator(zones map[int]*Zone, ndim int) (o *Generator, err error) {
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("space dimension must be 2 or 3. %d is invalid", ndim)
	}
	o = &Generator{Zones: zones, Ndim: ndim}
	return
}

// Init initialises all zones and builds the lookup table
func (o *Generator) Init() error {
	maxId := -1
	for _, id := range o.Ids() {
		if id < 0 {
			return fmt.Errorf("%w: material id %d must be non-negative", ErrConfig, id)
		}
		z := o.Zones[id]
		if z == nil {
			return fmt.Errorf("%w: zone with material id %d is nil", ErrConfig, id)
		}
		if err := z.Init(); err != nil {
			return fmt.Errorf("zone %d: %w", id, err)
		}
		if id > maxId {
			maxId = id
		}
	}
	o.lookup = make([]*Zone, maxId+1)
	for id, z := range o.Zones {
		o.lookup[id] = z
	}
	if o.Verbose {
		io.Pforan("relaxation zones: %d zones initialised; max id = %d\n", len(o.Zones), maxId)
	}
	return nil
}

// Ids returns the sorted material ids of zones
func (o *Generator) Ids() (ids []int) {
	ids = make([]int, 0, len(o.Zones))
	for id := range o.Zones {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return
}

// Get returns the zone corresponding to material id; nil if there is none
func (o *Generator) Get(id int) *Zone {
	if id < 0 || id >= len(o.lookup) {
		return nil
	}
	return o.lookup[id]
}

// Calculate computes PhiSolid and VelSolid at all quadrature points of elements
// tagged with zone ids. Points of other elements are not modified
func (o *Generator) Calculate(levels ...*Level) error {
	if o.lookup == nil {
		return chk.Err("generator must be initialised first")
	}
	for l, lev := range levels {
		if err := lev.Check(); err != nil {
			return fmt.Errorf("level %d: %w", l, err)
		}
		nzp := 0
		for e := 0; e < lev.Ne; e++ {
			z := o.Get(lev.MatTypes[e])
			if z == nil {
				continue
			}
			for q := 0; q < lev.Nq; q++ {
				p := e*lev.Nq + q
				x := lev.X[p*3 : p*3+3]
				lev.PhiSolid[p] = z.Phi(x)
				z.Velocity(o.u[:], lev.T, x)
				lev.VelSolid[p*3] = o.u[0]
				lev.VelSolid[p*3+1] = o.u[1]
				if o.Ndim > 2 {
					lev.VelSolid[p*3+2] = o.u[2]
				}
			}
			nzp += lev.Nq
		}
		if o.Verbose {
			io.Pf("level %d: t = %g: %d points in relaxation zones\n", l, lev.T, nzp)
		}
	}
	return nil
}

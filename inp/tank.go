// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/prklVIP/proteus/zone"
)

// FluidTag is the material id of cells outside relaxation zones
const FluidTag = -1

// TankData holds data for generating a structured mesh of a rectangular tank
type TankData struct {
	Xmin float64 `json:"xmin" toml:"xmin"` // min x-coordinate
	Xmax float64 `json:"xmax" toml:"xmax"` // max x-coordinate
	Ymin float64 `json:"ymin" toml:"ymin"` // min y-coordinate
	Ymax float64 `json:"ymax" toml:"ymax"` // max y-coordinate
	Zmin float64 `json:"zmin" toml:"zmin"` // min z-coordinate; 3D only
	Zmax float64 `json:"zmax" toml:"zmax"` // max z-coordinate; 3D only
	Nx   int     `json:"nx" toml:"nx"`     // number of divisions along x
	Ny   int     `json:"ny" toml:"ny"`     // number of divisions along y
	Nz   int     `json:"nz" toml:"nz"`     // number of divisions along z; 3D only
	Nip  int     `json:"nip" toml:"nip"`   // number of integration points along each direction: 1 or 2
}

// SetDefault sets default values
func (o *TankData) SetDefault() {
	o.Xmax, o.Ymax, o.Zmax = 1, 1, 1
	o.Nx, o.Ny, o.Nz = 10, 10, 1
	o.Nip = 2
}

// Cell holds cell data
type Cell struct {
	Id  int         // identifier
	Tag int         // material id; FluidTag if not in a relaxation zone
	Xc  []float64   // [3] centroid
	Ips [][]float64 // [nip][3] coordinates of integration points
}

// Face holds the boundary points of one side of the tank
type Face struct {
	Tag    string      // "x-", "x+", "y-", "y+", "z-" or "z+"
	Normal []float64   // [3] outward normal
	X      [][]float64 // [npoints][3] centres of cell faces on this side
}

// Mesh holds a structured mesh of a tank with hexahedra (3D) or quadrilaterals (2D)
type Mesh struct {
	Xmin, Xmax float64 // limits along x
	Ymin, Ymax float64 // limits along y
	Zmin, Zmax float64 // limits along z
	Cells      []*Cell // all cells
	Faces      []*Face // all sides of tank
	Nip        int     // number of integration points per cell
	ndim       int     // space dimension
}

// NewTank generates a structured mesh of a tank
func NewTank(dat *TankData, ndim int) (o *Mesh, err error) {

	// check
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("space dimension must be 2 or 3. %d is invalid", ndim)
	}
	nz := dat.Nz
	if ndim == 2 {
		nz = 1
	}
	if dat.Nx < 1 || dat.Ny < 1 || nz < 1 {
		return nil, chk.Err("numbers of divisions must be positive. nx=%d, ny=%d, nz=%d", dat.Nx, dat.Ny, nz)
	}
	if dat.Xmax <= dat.Xmin || dat.Ymax <= dat.Ymin || (ndim == 3 && dat.Zmax <= dat.Zmin) {
		return nil, chk.Err("limits of tank are invalid: x=[%g,%g], y=[%g,%g], z=[%g,%g]", dat.Xmin, dat.Xmax, dat.Ymin, dat.Ymax, dat.Zmin, dat.Zmax)
	}
	if dat.Nip != 1 && dat.Nip != 2 {
		return nil, chk.Err("number of integration points along each direction must be 1 or 2. %d is invalid", dat.Nip)
	}

	// new mesh
	o = &Mesh{Xmin: dat.Xmin, Xmax: dat.Xmax, Ymin: dat.Ymin, Ymax: dat.Ymax, ndim: ndim}
	if ndim == 3 {
		o.Zmin, o.Zmax = dat.Zmin, dat.Zmax
	}

	// grid
	X := utl.LinSpace(o.Xmin, o.Xmax, dat.Nx+1)
	Y := utl.LinSpace(o.Ymin, o.Ymax, dat.Ny+1)
	Z := []float64{0, 0}
	if ndim == 3 {
		Z = utl.LinSpace(o.Zmin, o.Zmax, nz+1)
	}

	// natural coordinates of integration points along each direction
	ξ := []float64{0}
	if dat.Nip == 2 {
		ξ = []float64{-1.0 / math.Sqrt(3.0), 1.0 / math.Sqrt(3.0)}
	}
	ζ := ξ
	if ndim == 2 {
		ζ = []float64{0}
	}

	// cells
	for k := 0; k < nz; k++ {
		for j := 0; j < dat.Ny; j++ {
			for i := 0; i < dat.Nx; i++ {
				c := &Cell{Id: len(o.Cells), Tag: FluidTag}
				c.Xc = []float64{(X[i] + X[i+1]) / 2, (Y[j] + Y[j+1]) / 2, (Z[k] + Z[k+1]) / 2}
				hx, hy, hz := (X[i+1]-X[i])/2, (Y[j+1]-Y[j])/2, (Z[k+1]-Z[k])/2
				for _, r := range ζ {
					for _, s := range ξ {
						for _, t := range ξ {
							c.Ips = append(c.Ips, []float64{c.Xc[0] + t*hx, c.Xc[1] + s*hy, c.Xc[2] + r*hz})
						}
					}
				}
				o.Cells = append(o.Cells, c)
			}
		}
	}
	o.Nip = len(o.Cells[0].Ips)

	// faces
	xc := centres(X)
	yc := centres(Y)
	zc := []float64{0}
	if ndim == 3 {
		zc = centres(Z)
	}
	o.Faces = []*Face{
		o.newFace("x-", 0, o.Xmin, yc, zc),
		o.newFace("x+", 0, o.Xmax, yc, zc),
		o.newFace("y-", 1, o.Ymin, xc, zc),
		o.newFace("y+", 1, o.Ymax, xc, zc),
	}
	if ndim == 3 {
		o.Faces = append(o.Faces,
			o.newFace("z-", 2, o.Zmin, xc, yc),
			o.newFace("z+", 2, o.Zmax, xc, yc),
		)
	}
	return
}

// Ndim returns the space dimension
func (o *Mesh) Ndim() int { return o.ndim }

// Face returns a side of the tank by tag
//  Note: returns nil if not found
func (o *Mesh) Face(tag string) *Face {
	for _, f := range o.Faces {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// TagCells sets the material id of cells whose centroid is within a relaxation zone.
// The first zone containing the centroid wins
func (o *Mesh) TagCells(zones ZonesData) (ntagged int) {
	for _, c := range o.Cells {
		c.Tag = FluidTag
		for _, z := range zones {
			if z.Contains(c.Xc) {
				c.Tag = z.Id
				ntagged++
				break
			}
		}
	}
	return
}

// NewLevel allocates a level with the integration points of all cells
func (o *Mesh) NewLevel() (lev *zone.Level) {
	lev = zone.NewLevel(len(o.Cells), o.Nip)
	for e, c := range o.Cells {
		lev.MatTypes[e] = c.Tag
		for q, x := range c.Ips {
			copy(lev.X[(e*o.Nip+q)*3:], x)
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// newFace returns a side of the tank normal to axis at coordinate a
//  u and v are the centres of cells along the two other axes, in increasing order
func (o *Mesh) newFace(tag string, axis int, a float64, u, v []float64) *Face {
	f := &Face{Tag: tag, Normal: make([]float64, 3)}
	f.Normal[axis] = 1
	if tag[1] == '-' {
		f.Normal[axis] = -1
	}
	for _, b := range v {
		for _, c := range u {
			x := make([]float64, 3)
			x[axis] = a
			x[(axis+1)%3], x[(axis+2)%3] = c, b
			if axis == 1 {
				x[0], x[2] = c, b
			}
			f.X = append(f.X, x)
		}
	}
	return f
}

// centres returns the middle points between consecutive grid coordinates
func centres(X []float64) (res []float64) {
	res = make([]float64, len(X)-1)
	for i := 0; i < len(X)-1; i++ {
		res[i] = (X[i] + X[i+1]) / 2
	}
	return
}

// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_tank01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tank01. 2D tank")

	dat := &TankData{Xmax: 1, Ymax: 1, Nx: 2, Ny: 1, Nip: 2}
	msh, err := NewTank(dat, 2)
	require.NoError(tst, err)
	require.Len(tst, msh.Cells, 2)
	assert.Equal(tst, 2, msh.Ndim())
	assert.Equal(tst, 4, msh.Nip)

	c := msh.Cells[0]
	assert.Equal(tst, FluidTag, c.Tag)
	chk.Array(tst, "xc", 1e-15, c.Xc, []float64{0.25, 0.5, 0})
	a := 1.0 / math.Sqrt(3.0)
	chk.Array(tst, "ip0", 1e-15, c.Ips[0], []float64{0.25 - 0.25*a, 0.5 - 0.5*a, 0})
	chk.Array(tst, "ip3", 1e-15, c.Ips[3], []float64{0.25 + 0.25*a, 0.5 + 0.5*a, 0})
	chk.Array(tst, "xc1", 1e-15, msh.Cells[1].Xc, []float64{0.75, 0.5, 0})

	require.Len(tst, msh.Faces, 4)
	for i, tag := range []string{"x-", "x+", "y-", "y+"} {
		assert.Equal(tst, tag, msh.Faces[i].Tag)
	}
	assert.Nil(tst, msh.Face("z+"))
	f := msh.Face("x-")
	require.NotNil(tst, f)
	chk.Array(tst, "x- normal", 1e-17, f.Normal, []float64{-1, 0, 0})
	require.Len(tst, f.X, 1)
	chk.Array(tst, "x- point", 1e-15, f.X[0], []float64{0, 0.5, 0})
	f = msh.Face("y+")
	require.NotNil(tst, f)
	chk.Array(tst, "y+ normal", 1e-17, f.Normal, []float64{0, 1, 0})
	require.Len(tst, f.X, 2)
	chk.Array(tst, "y+ point 0", 1e-15, f.X[0], []float64{0.25, 1, 0})
	chk.Array(tst, "y+ point 1", 1e-15, f.X[1], []float64{0.75, 1, 0})

	// level
	zones := ZonesData{{Id: 4, Type: "absorption", Center: []float64{1, 0.5}, Orientation: []float64{-1, 0}, EpsFact: 0.25}}
	assert.Equal(tst, 1, msh.TagCells(zones))
	lev := msh.NewLevel()
	assert.Equal(tst, []int{FluidTag, 4}, lev.MatTypes)
	require.NoError(tst, lev.Check())
	chk.Array(tst, "level: ip 5", 1e-15, lev.X[15:18], msh.Cells[1].Ips[1])
}

func Test_tank02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tank02. 3D tank and errors")

	dat := &TankData{Xmax: 1, Ymax: 1, Zmin: -1, Zmax: 1, Nx: 1, Ny: 1, Nz: 2, Nip: 1}
	msh, err := NewTank(dat, 3)
	require.NoError(tst, err)
	require.Len(tst, msh.Cells, 2)
	assert.Equal(tst, 1, msh.Nip)
	chk.Array(tst, "ip of cell 1", 1e-15, msh.Cells[1].Ips[0], []float64{0.5, 0.5, 0.5})
	require.Len(tst, msh.Faces, 6)
	f := msh.Face("z+")
	require.NotNil(tst, f)
	chk.Array(tst, "z+ normal", 1e-17, f.Normal, []float64{0, 0, 1})
	require.Len(tst, f.X, 1)
	chk.Array(tst, "z+ point", 1e-15, f.X[0], []float64{0.5, 0.5, 1})
	f = msh.Face("y-")
	require.NotNil(tst, f)
	require.Len(tst, f.X, 2)
	chk.Array(tst, "y- point 1", 1e-15, f.X[1], []float64{0.5, 0, 0.5})

	_, err = NewTank(dat, 1)
	assert.Error(tst, err)
	_, err = NewTank(&TankData{Xmax: 1, Ymax: 1, Nx: 1, Ny: 1, Nip: 3}, 2)
	assert.Error(tst, err)
	_, err = NewTank(&TankData{Xmin: 1, Xmax: 1, Ymax: 1, Nx: 1, Ny: 1, Nip: 1}, 2)
	assert.Error(tst, err)
	_, err = NewTank(&TankData{Xmax: 1, Ymax: 1, Nx: 0, Ny: 1, Nip: 1}, 2)
	assert.Error(tst, err)
}

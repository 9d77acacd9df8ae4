// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or TOML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/prklVIP/proteus/bcs"
	"github.com/prklVIP/proteus/zone"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" toml:"desc"`       // description of simulation
	Ndim    int    `json:"ndim" toml:"ndim"`       // space dimension: 2 or 3
	Verbose bool   `json:"verbose" toml:"verbose"` // show messages
	ListBcs bool   `json:"listbcs" toml:"listbcs"` // list boundary conditions
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf" toml:"tf"`       // final time
	Dt    float64 `json:"dt" toml:"dt"`       // time step size
	DtOut float64 `json:"dtout" toml:"dtout"` // time step size for output
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data        `json:"data" toml:"data"`       // stores global simulation data
	Waves   WavesData   `json:"waves" toml:"waves"`     // stores all wave models
	Faces   FacesData   `json:"faces" toml:"faces"`     // stores all face boundary conditions
	Zones   ZonesData   `json:"zones" toml:"zones"`     // stores all relaxation zones
	Tank    TankData    `json:"tank" toml:"tank"`       // synthetic mesh
	Control TimeControl `json:"control" toml:"control"` // time control

	// derived
	Key  string // simulation key; e.g. mysim01.sim => mysim01
	Ndim int    // space dimension
}

// ReadSim reads all simulation data from a .sim (JSON) or .toml file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	o.Tank.SetDefault()
	ext := strings.ToLower(io.FnExt(simfilepath))
	if ext == ".toml" {
		err = o.decodeToml(b)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	err = o.PostProcess()
	return
}

// decodeToml decodes TOML data and reports unknown keys
func (o *Simulation) decodeToml(b []byte) error {
	md, err := toml.Decode(string(b), o)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return chk.Err("unknown keys: %v", undecoded)
	}
	return nil
}

// PostProcess checks and fixes data just read
func (o *Simulation) PostProcess() error {

	// space dimension
	o.Ndim = o.Data.Ndim
	if o.Ndim == 0 {
		o.Ndim = 2
	}
	if o.Ndim != 2 && o.Ndim != 3 {
		return chk.Err("space dimension must be 2 or 3. %d is invalid", o.Ndim)
	}

	// fix Tf, Dt and DtOut
	ctl := &o.Control
	if ctl.Tf < 1e-14 {
		ctl.Tf = 1
	}
	if ctl.Dt < 1e-14 {
		ctl.Dt = ctl.Tf / 10
	}
	if ctl.DtOut < ctl.Dt {
		ctl.DtOut = ctl.Dt
	}

	// check names
	waves := make(map[string]bool)
	for _, w := range o.Waves {
		if waves[w.Name] {
			return chk.Err("wave named %q is defined more than once", w.Name)
		}
		waves[w.Name] = true
	}
	faces := make(map[string]bool)
	for _, f := range o.Faces {
		if faces[f.Tag] {
			return chk.Err("face tagged %q is defined more than once", f.Tag)
		}
		faces[f.Tag] = true
	}
	return nil
}

// NewTank generates the mesh of the tank and tags its cells with zone ids
func (o *Simulation) NewTank() (msh *Mesh, err error) {
	msh, err = NewTank(&o.Tank, o.Ndim)
	if err != nil {
		return
	}
	msh.TagCells(o.Zones)
	return
}

// NewBcSets allocates the sets of boundary conditions of all faces
func (o *Simulation) NewBcSets(shape bcs.Shape) (sets []*bcs.BcSet, err error) {
	sets = make([]*bcs.BcSet, len(o.Faces))
	for i, f := range o.Faces {
		sets[i], err = f.NewBcSet(shape, o.Waves)
		if err != nil {
			return nil, err
		}
	}
	return
}

// NewGenerator allocates and initialises the generator of relaxation zones
func (o *Simulation) NewGenerator() (*zone.Generator, error) {
	return o.Zones.NewGenerator(o.Waves, o.Ndim, o.Data.Verbose)
}

// GetInfo writes formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

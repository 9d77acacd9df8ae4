// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/prklVIP/proteus/mdl/wave"
)

// WaveData holds wave model definition
type WaveData struct {
	Name string    `json:"name" toml:"name"` // name of wave. ex: still, regular, storm01, etc.
	Type string    `json:"type" toml:"type"` // type of model. ex: still, linear
	Prms wave.Prms `json:"prms" toml:"prms"` // parameters
}

// WavesData holds waves
type WavesData []*WaveData

// Get returns wave model by name
//  Note: "still" is always available, with water level at zero, unless redefined
func (o WavesData) Get(name string, vert int) (mdl wave.Model, err error) {
	for _, w := range o {
		if w.Name == name {
			mdl, err = wave.New(w.Type, &w.Prms, vert)
			if err != nil {
				err = chk.Err("cannot get wave named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	if name == "still" {
		return wave.New("still", nil, vert)
	}
	err = chk.Err("cannot find wave named %q\n", name)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// String prints one wave
func (o WaveData) String() string {
	p := o.Prms
	return io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : {\"height\":%g, \"period\":%g, \"depth\":%g, \"mwl\":%g, \"phase\":%g}\n    }",
		o.Name, o.Type, p.Height, p.Period, p.Depth, p.Level, p.Phase)
}

// String prints waves
func (o WavesData) String() string {
	if len(o) == 0 {
		return "  \"waves\" : []"
	}
	l := "  \"waves\" : [\n"
	for i, w := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", w)
	}
	l += "\n  ]"
	return l
}

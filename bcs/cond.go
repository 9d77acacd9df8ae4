// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements boundary conditions for two-phase flows
package bcs

import "github.com/cpmech/gosl/io"

// Func defines a boundary value at time t and position x.
//  ok == false means that there is no constraint at (t,x)
type Func func(t float64, x []float64) (val float64, ok bool)

// Kind indicates how a boundary condition is defined
type Kind int

const (
	Unset    Kind = iota // no constraint
	Constant             // constant value
	Function             // function of time and space
)

// String returns the name of the kind of condition
func (o Kind) String() string {
	switch o {
	case Unset:
		return "unset"
	case Constant:
		return "constant"
	case Function:
		return "function"
	}
	return "unknown"
}

// Cond holds one boundary condition; e.g. the Dirichlet value of the pressure
type Cond struct {
	kind Kind    // how this condition is defined
	val  float64 // constant value
	fcn  Func    // function of time and space
}

// Reset removes the constraint
func (o *Cond) Reset() {
	o.kind, o.val, o.fcn = Unset, 0, nil
}

// SetConstant sets a constant value
func (o *Cond) SetConstant(val float64) {
	o.kind, o.val, o.fcn = Constant, val, nil
}

// SetFunc sets a function of time and space. A nil function resets the condition
func (o *Cond) SetFunc(fcn Func) {
	if fcn == nil {
		o.Reset()
		return
	}
	o.kind, o.val, o.fcn = Function, 0, fcn
}

// Kind returns how this condition is defined
func (o *Cond) Kind() Kind { return o.kind }

// IsSet tells whether this condition constrains anything at all
func (o *Cond) IsSet() bool { return o.kind != Unset }

// Eval evaluates the condition at (t,x)
func (o *Cond) Eval(t float64, x []float64) (val float64, ok bool) {
	switch o.kind {
	case Constant:
		return o.val, true
	case Function:
		return o.fcn(t, x)
	}
	return 0, false
}

// String returns a short description of this condition
func (o *Cond) String() string {
	if o.kind == Constant {
		return io.Sf("%g", o.val)
	}
	return o.kind.String()
}

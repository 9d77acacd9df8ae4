// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RigidBody holds the state of a rigid body driving the motion of the mesh.
//  Notes:
//   1) LastPos, H and Rot belong to the host (e.g. a body dynamics solver) that
//      updates them in place between time steps. They must outlive the BcSet
//   2) the mesh displacement of a boundary node at x is:
//          h(x) = Rot・(x - LastPos) - (x - LastPos) + H
type RigidBody struct {
	LastPos []float64  // last position of body (3 components)
	H       []float64  // displacement of body (3 components)
	Rot     *mat.Dense // rotation between last and new positions (3×3)

	// scratchpad
	x0  *mat.VecDense // x - LastPos
	rx0 *mat.VecDense // Rot・(x - LastPos)
}

// NewRigidBody returns a new rigid body handle. The slices and matrix are not copied
//  h   -- [optional] nil => zero displacement
//  rot -- [optional] nil => identity
func NewRigidBody(lastPos, h []float64, rot *mat.Dense) (o *RigidBody, err error) {
	if h == nil {
		h = make([]float64, 3)
	}
	if rot == nil {
		rot = mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	}
	o = &RigidBody{LastPos: lastPos, H: h, Rot: rot}
	if err = o.check(); err != nil {
		return nil, err
	}
	return
}

// Displacement computes the displacement of a mesh node at x
func (o *RigidBody) Displacement(h []float64, x []float64) {
	if o.x0 == nil {
		o.x0 = mat.NewVecDense(3, nil)
		o.rx0 = mat.NewVecDense(3, nil)
	}
	for i := 0; i < 3; i++ {
		o.x0.SetVec(i, x[i]-o.LastPos[i])
	}
	o.rx0.MulVec(o.Rot, o.x0)
	for i := 0; i < 3; i++ {
		h[i] = o.rx0.AtVec(i) - o.x0.AtVec(i) + o.H[i]
	}
}

// check checks sizes
func (o *RigidBody) check() error {
	if len(o.LastPos) != 3 || len(o.H) != 3 {
		return fmt.Errorf("%w: rigid body: last position and displacement must have 3 components", ErrConfig)
	}
	if o.Rot == nil {
		return fmt.Errorf("%w: rigid body: rotation matrix is missing", ErrConfig)
	}
	if r, c := o.Rot.Dims(); r != 3 || c != 3 {
		return fmt.Errorf("%w: rigid body: rotation matrix must be 3×3. %d×%d is invalid", ErrConfig, r, c)
	}
	return nil
}

// moving mesh ///////////////////////////////////////////////////////////////////////////////////////

// SetFixedNodes fixes the nodes of this boundary
func (o *BcSet) SetFixedNodes() {
	o.Motion = Fixed
	o.Body = nil
	for i := 0; i < 3; i++ {
		o.conds[meshDirichlet[i]].SetConstant(0)
		o.conds[meshStress[i]].SetConstant(0)
	}
}

// SetTank lets the nodes of this boundary slide along it: the displacement normal to
// the boundary is zero and the corresponding stress is unconstrained.
//  Note: requires a boundary aligned with one of the main axes. The other displacement
//        slots are kept; e.g. those set by SetMoveMesh still follow the body
func (o *BcSet) SetTank() error {
	if o.BOr == nil {
		return fmt.Errorf("%w: boundary %q: orientation is required by tank conditions", ErrConfig, o.Name)
	}
	for i := 0; i < 3; i++ {
		if o.BOr[i] == 1 || o.BOr[i] == -1 {
			o.Motion = Tank
			o.conds[meshDirichlet[i]].SetConstant(0)
			o.conds[meshStress[i]].Reset()
			return nil
		}
	}
	return fmt.Errorf("%w: boundary %q: tank conditions require an orientation aligned with the axes. %v is invalid", ErrConfig, o.Name, o.BOr)
}

// SetMoveMesh moves the nodes of this boundary with a rigid body. The body is kept
// by reference: updates made by the host are seen in the next evaluation
func (o *BcSet) SetMoveMesh(body *RigidBody) error {
	if body == nil {
		return fmt.Errorf("%w: boundary %q: rigid body is required to move the mesh", ErrConfig, o.Name)
	}
	if err := body.check(); err != nil {
		return fmt.Errorf("boundary %q: %w", o.Name, err)
	}
	o.Motion = Driven
	o.Body = body
	for i := 0; i < 3; i++ {
		o.conds[meshDirichlet[i]].SetFunc(o.meshDisplacement(body, i))
	}
	return nil
}

// meshDisplacement returns the function computing the i-th component of the mesh displacement
func (o *BcSet) meshDisplacement(body *RigidBody, i int) Func {
	return func(t float64, x []float64) (float64, bool) {
		body.Displacement(o.dsp[:], x)
		return o.dsp[i], true
	}
}

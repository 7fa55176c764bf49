// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spont

import (
	"errors"
	"fmt"
	"os"

	"github.com/ccneuro/spont/npz"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

const (
	// DefaultURL is the OSF download endpoint for the Stringer et al.
	// spontaneous-activity recording.
	DefaultURL = "https://osf.io/dpqaj/download"

	// DefaultFile is the conventional local artifact name.
	DefaultFile = "stringer_spontaneous.npz"
)

// ErrNoArtifact means the local dataset artifact does not exist:
// acquisition either failed or never ran.  Distinct from decode and
// shape errors, which mean the artifact is present but not usable.
var ErrNoArtifact = errors.New("spont: dataset artifact not present locally")

// ErrShape means the bundle's arrays are mutually inconsistent
// (e.g., a behavioral vector whose length does not match the number
// of imaging timepoints).
var ErrShape = errors.New("spont: bundle arrays have inconsistent shapes")

// Bundle is the loaded dataset.  All fields are populated once by
// OpenBundle and must be treated as read-only for the rest of the
// session.
type Bundle struct {

	// deconvolved calcium responses, neurons x timepoints
	Resp *etensor.Float32

	// running speed at each imaging timepoint
	RunSpeed *etensor.Float64

	// pupil area at each imaging timepoint
	PupilArea *etensor.Float64

	// anatomical position of each neuron: x, y, depth -- neurons x 3
	NeurPos *etensor.Float32
}

// NNeurons returns the number of recorded neurons.
func (bd *Bundle) NNeurons() int { return bd.Resp.Dim(0) }

// NTimes returns the number of imaging timepoints.
func (bd *Bundle) NTimes() int { return bd.Resp.Dim(1) }

// NeurResp returns the response timecourse of neuron i as a slice
// into the underlying row-major response matrix -- do not modify.
func (bd *Bundle) NeurResp(i int) []float32 {
	nt := bd.NTimes()
	return bd.Resp.Values[i*nt : (i+1)*nt]
}

// PopMean returns the mean response across all neurons at each
// timepoint -- the population-rate vector regressed against the
// behavioral covariates.
func (bd *Bundle) PopMean() []float64 {
	nn, nt := bd.NNeurons(), bd.NTimes()
	pm := make([]float64, nt)
	for i := 0; i < nn; i++ {
		row := bd.NeurResp(i)
		for t, v := range row {
			pm[t] += float64(v)
		}
	}
	for t := range pm {
		pm[t] /= float64(nn)
	}
	return pm
}

// Depth returns the cortical depth (third position coordinate) of
// neuron i.
func (bd *Bundle) Depth(i int) float32 {
	return bd.NeurPos.Value([]int{i, 2})
}

// PosRange returns the min / max extent of neuron positions along
// each of the 3 anatomical axes.
func (bd *Bundle) PosRange() [3]minmax.F32 {
	var rng [3]minmax.F32
	for d := 0; d < 3; d++ {
		rng[d].SetInfinity()
	}
	nn := bd.NNeurons()
	for i := 0; i < nn; i++ {
		for d := 0; d < 3; d++ {
			rng[d].FitValInRange(bd.NeurPos.Value([]int{i, d}))
		}
	}
	return rng
}

// OpenBundle loads the dataset bundle from the .npz artifact at path.
// A missing file reports ErrNoArtifact; a present but unreadable or
// inconsistent file reports the decode or shape error.
func OpenBundle(path string) (*Bundle, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoArtifact, path)
	}
	f, err := npz.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bd := &Bundle{}
	if bd.Resp, err = f.Float32(RespField.Key()); err != nil {
		return nil, err
	}
	run, err := f.Float64(RunSpeedField.Key())
	if err != nil {
		return nil, err
	}
	bd.RunSpeed = flatVec(run)
	pup, err := f.Float64(PupilAreaField.Key())
	if err != nil {
		return nil, err
	}
	bd.PupilArea = flatVec(pup)
	pos, err := f.Float32(NeurPosField.Key())
	if err != nil {
		return nil, err
	}
	bd.NeurPos = posMatrix(pos)

	if err = bd.Validate(); err != nil {
		return nil, err
	}
	return bd, nil
}

// Validate checks cross-field shape consistency.
func (bd *Bundle) Validate() error {
	if bd.Resp.NumDims() != 2 {
		return fmt.Errorf("%w: %s has %d dims, want 2", ErrShape, RespField.Key(), bd.Resp.NumDims())
	}
	nn, nt := bd.NNeurons(), bd.NTimes()
	if bd.RunSpeed.Len() != nt {
		return fmt.Errorf("%w: %s has %d timepoints, response matrix has %d", ErrShape, RunSpeedField.Key(), bd.RunSpeed.Len(), nt)
	}
	if bd.PupilArea.Len() != nt {
		return fmt.Errorf("%w: %s has %d timepoints, response matrix has %d", ErrShape, PupilAreaField.Key(), bd.PupilArea.Len(), nt)
	}
	if bd.NeurPos.NumDims() != 2 || bd.NeurPos.Dim(1) != 3 {
		return fmt.Errorf("%w: %s is not neurons x 3", ErrShape, NeurPosField.Key())
	}
	if bd.NeurPos.Dim(0) != nn {
		return fmt.Errorf("%w: %s has %d neurons, response matrix has %d", ErrShape, NeurPosField.Key(), bd.NeurPos.Dim(0), nn)
	}
	return nil
}

// flatVec accepts a behavioral vector stored either as (T) or as a
// single-column (T, 1) matrix (np.savez does both across dataset
// versions) and returns it as a flat 1-D tensor.
func flatVec(tsr *etensor.Float64) *etensor.Float64 {
	if tsr.NumDims() == 2 && tsr.Dim(1) == 1 {
		flat := etensor.NewFloat64([]int{tsr.Dim(0)}, nil, nil)
		copy(flat.Values, tsr.Values)
		return flat
	}
	return tsr
}

// posMatrix accepts positions stored either as (N, 3) or transposed
// (3, N) and returns them as (N, 3).
func posMatrix(tsr *etensor.Float32) *etensor.Float32 {
	if tsr.NumDims() == 2 && tsr.Dim(0) == 3 && tsr.Dim(1) != 3 {
		n := tsr.Dim(1)
		tp := etensor.NewFloat32([]int{n, 3}, nil, nil)
		for i := 0; i < n; i++ {
			for d := 0; d < 3; d++ {
				tp.Set([]int{i, d}, tsr.Value([]int{d, i}))
			}
		}
		return tp
	}
	return tsr
}

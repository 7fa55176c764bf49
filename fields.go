// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spont

import "github.com/goki/ki/kit"

// Fields are the named arrays in the spontaneous-activity bundle.
type Fields int

const (
	// RespField is the deconvolved calcium response matrix, neurons x timepoints
	RespField Fields = iota

	// RunSpeedField is the running speed at each timepoint
	RunSpeedField

	// PupilAreaField is the pupil area at each timepoint
	PupilAreaField

	// NeurPosField is the anatomical position of each neuron, neurons x 3
	NeurPosField

	FieldsN
)

var KiT_Fields = kit.Enums.AddEnum(FieldsN, false, nil)

func (ev Fields) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Fields) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

var fieldNames = [FieldsN]string{"RespField", "RunSpeedField", "PupilAreaField", "NeurPosField"}

// fieldKeys are the array names under which each field is stored in
// the .npz bundle, as written by the upstream data provider.
var fieldKeys = [FieldsN]string{"sresp", "run", "pupilArea", "xyz"}

func (ev Fields) String() string {
	if ev < 0 || ev >= FieldsN {
		return "FieldsInvalid"
	}
	return fieldNames[ev]
}

// Key returns the upstream .npz array name for this field.
func (ev Fields) Key() string {
	if ev < 0 || ev >= FieldsN {
		return ""
	}
	return fieldKeys[ev]
}

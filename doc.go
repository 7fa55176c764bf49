// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spont acquires and loads the Stringer et al. spontaneous
activity dataset: simultaneous calcium-imaging recordings from ~10,000
neurons in mouse visual cortex, together with the running-speed and
pupil-area behavioral covariates, distributed as a NumPy .npz bundle.

The Bundle type is the loaded dataset -- one named, typed tensor per
field, shape-checked at load time and read-only thereafter.  Every
analysis step downstream takes the Bundle (or results derived from it)
as an explicit argument and returns its result, so there is no shared
mutable state between steps.

Acquisition is strictly fetch-once: if the local artifact exists it is
used as-is, otherwise a single download attempt is made, and a failed
download degrades to a diagnostic rather than an abort.  The distinct
failure modes are kept distinct: ErrNoArtifact means the file was
never obtained, while decode and shape errors mean the file is present
but not usable.

Statistics over the loaded data live in the descr package; the
examples/spont program runs the full analysis session.
*/
package spont

// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spont

import (
	"fmt"

	"github.com/ccneuro/spont/fetch"
)

// Acquire is the full acquisition step: ensure the local artifact at
// path exists (downloading from url at most once, best-effort) and
// load it into a Bundle.  Network failure is downgraded to a logged
// diagnostic inside fetch and surfaces here as ErrNoArtifact, so a
// caller can distinguish "dataset unavailable" from "dataset corrupt"
// with errors.Is.
func Acquire(url, path string) (*Bundle, error) {
	ok, err := fetch.FileWarn(url, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoArtifact, path)
	}
	return OpenBundle(path)
}

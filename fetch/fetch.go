// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fetch ensures that a local copy of a remote dataset artifact
exists, downloading it at most once per process.  An existing file at
the destination path is treated as permanently valid: no freshness
check, no checksum, no re-fetch.  A single synchronous GET is issued
when the file is absent -- no retry, no timeout, no resume, which is
the right behavior for an interactive analysis session where the only
sensible response to a failed download is to tell the user.
*/
package fetch

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/c2h5oh/datasize"
)

// ConnError is a transport-level failure: the request never produced
// an HTTP response (unreachable host, refused connection, reset).
type ConnError struct {

	// URL that could not be reached
	URL string

	// underlying transport error
	Err error
}

func (ce *ConnError) Error() string {
	return fmt.Sprintf("fetch: connecting to %s failed: %v", ce.URL, ce.Err)
}

func (ce *ConnError) Unwrap() error { return ce.Err }

// StatusError means the remote endpoint responded, but not with 200 OK.
type StatusError struct {

	// URL that was requested
	URL string

	// HTTP status code returned
	Code int
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("fetch: %s returned status %d", se.URL, se.Code)
}

// WriteError is a local storage failure writing the artifact (disk
// full, permission denied).  Unlike network errors it is never
// downgraded to a diagnostic -- it propagates to the caller.
type WriteError struct {

	// Path of the destination file
	Path string

	// underlying I/O error
	Err error
}

func (we *WriteError) Error() string {
	return fmt.Sprintf("fetch: writing %s failed: %v", we.Path, we.Err)
}

func (we *WriteError) Unwrap() error { return we.Err }

// File ensures that the file at dest exists, downloading it from url
// if it does not.  The existence check always runs first, so repeated
// calls with the same dest perform exactly one network request total.
// On success the file at dest contains the exact bytes of the
// response body.  Failures are typed: *ConnError for transport
// failures, *StatusError for non-200 responses, *WriteError for local
// storage errors.  The first two leave no file behind; an interrupted
// body copy can leave a partial file (accepted -- there is no cleanup
// or checksum pass).
func File(url, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil // cache hit -- never re-fetch
	}
	resp, err := http.Get(url)
	if err != nil {
		return &ConnError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: url, Code: resp.StatusCode}
	}
	fp, err := os.Create(dest)
	if err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	n, err := io.Copy(fp, resp.Body)
	if err != nil {
		fp.Close()
		return &WriteError{Path: dest, Err: err}
	}
	if err = fp.Close(); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	log.Printf("fetch: downloaded %s: %v\n", dest, (datasize.ByteSize)(n).HumanReadable())
	return nil
}

// FileWarn is the best-effort variant of File for interactive use:
// network-layer failures (connection, bad status) are downgraded to a
// logged diagnostic and the session continues without the artifact.
// Local write failures still propagate.  The bool reports whether the
// artifact is present at dest on return.
func FileWarn(url, dest string) (bool, error) {
	err := File(url, dest)
	if err == nil {
		return true, nil
	}
	var ce *ConnError
	var se *StatusError
	if errors.As(err, &ce) || errors.As(err, &se) {
		log.Println(err)
		log.Printf("fetch: continuing without %s -- downstream loads will report the dataset as unavailable\n", dest)
		return false, nil
	}
	return false, err
}

// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package npz reads NumPy .npz archives (a zip file of .npy entries, one
per named array) into etensor tensors, preserving the shape recorded
in each npy header.  Only numeric, C-ordered arrays are supported --
that is what an upstream np.savez of recording data produces.  The
npy payload decoding is done by the npyio library; this package only
drives the zip container and shapes the result.
*/
package npz

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/emer/etable/v2/etensor"
	"github.com/sbinet/npyio"
)

// File is an open .npz archive.  Entries are decoded on demand;
// the archive stays open until Close.
type File struct {

	// Path of the archive on local storage
	Path string

	zr   *zip.ReadCloser
	ents map[string]*zip.File
}

// Open opens the .npz archive at path.  The caller owns the returned
// File and must Close it.
func Open(path string) (*File, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("npz: opening %s: %w", path, err)
	}
	f := &File{Path: path, zr: zr, ents: make(map[string]*zip.File, len(zr.File))}
	for _, zf := range zr.File {
		f.ents[strings.TrimSuffix(zf.Name, ".npy")] = zf
	}
	return f, nil
}

func (f *File) Close() error { return f.zr.Close() }

// Keys returns the array names present in the archive, in archive order.
func (f *File) Keys() []string {
	ks := make([]string, 0, len(f.zr.File))
	for _, zf := range f.zr.File {
		ks = append(ks, strings.TrimSuffix(zf.Name, ".npy"))
	}
	return ks
}

// Has reports whether the named array is present.
func (f *File) Has(key string) bool {
	_, ok := f.ents[key]
	return ok
}

// Float64 reads the named array as a float64 tensor with the shape
// recorded in its npy header.  Integer and float32 payloads are
// converted.
func (f *File) Float64(key string) (*etensor.Float64, error) {
	shp, vals, err := f.read(key)
	if err != nil {
		return nil, err
	}
	tsr := etensor.NewFloat64(shp, nil, nil)
	copy(tsr.Values, vals)
	return tsr, nil
}

// Float32 reads the named array as a float32 tensor with the shape
// recorded in its npy header, converting the payload as needed.
func (f *File) Float32(key string) (*etensor.Float32, error) {
	shp, vals, err := f.read(key)
	if err != nil {
		return nil, err
	}
	tsr := etensor.NewFloat32(shp, nil, nil)
	for i, v := range vals {
		tsr.Values[i] = float32(v)
	}
	return tsr, nil
}

// read decodes the named entry to a flat float64 slice plus its shape.
func (f *File) read(key string) ([]int, []float64, error) {
	zf, ok := f.ents[key]
	if !ok {
		return nil, nil, fmt.Errorf("npz: %s has no array %q", f.Path, key)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("npz: opening entry %q in %s: %w", key, f.Path, err)
	}
	defer rc.Close()
	r, err := npyio.NewReader(rc)
	if err != nil {
		return nil, nil, fmt.Errorf("npz: reading header of %q in %s: %w", key, f.Path, err)
	}
	if r.Header.Descr.Fortran {
		return nil, nil, fmt.Errorf("npz: array %q in %s is Fortran-ordered -- not supported", key, f.Path)
	}
	shp := r.Header.Descr.Shape
	if len(shp) == 0 {
		shp = []int{1} // 0-d scalar
	}
	vals, err := decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("npz: decoding %q in %s: %w", key, f.Path, err)
	}
	n := 1
	for _, d := range shp {
		n *= d
	}
	if len(vals) != n {
		return nil, nil, fmt.Errorf("npz: array %q in %s: %d values for shape %v", key, f.Path, len(vals), shp)
	}
	return shp, vals, nil
}

// decode reads the npy payload in its native dtype and widens to float64.
func decode(r *npyio.Reader) ([]float64, error) {
	ty := r.Header.Descr.Type
	switch {
	case strings.HasSuffix(ty, "f8"):
		var raw []float64
		if err := r.Read(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	case strings.HasSuffix(ty, "f4"):
		var raw []float32
		if err := r.Read(&raw); err != nil {
			return nil, err
		}
		vals := make([]float64, len(raw))
		for i, v := range raw {
			vals[i] = float64(v)
		}
		return vals, nil
	case strings.HasSuffix(ty, "i8"):
		var raw []int64
		if err := r.Read(&raw); err != nil {
			return nil, err
		}
		vals := make([]float64, len(raw))
		for i, v := range raw {
			vals[i] = float64(v)
		}
		return vals, nil
	case strings.HasSuffix(ty, "i4"):
		var raw []int32
		if err := r.Read(&raw); err != nil {
			return nil, err
		}
		vals := make([]float64, len(raw))
		for i, v := range raw {
			vals[i] = float64(v)
		}
		return vals, nil
	default:
		return nil, fmt.Errorf("unsupported dtype %q", ty)
	}
}

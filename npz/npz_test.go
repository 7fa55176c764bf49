// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npz

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// writeNPZ writes a .npz fixture with the given named arrays.
func writeNPZ(t *testing.T, path string, arrays map[string]any) {
	t.Helper()
	fp, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(fp)
	for nm, val := range arrays {
		w, err := zw.Create(nm + ".npy")
		if err != nil {
			t.Fatal(err)
		}
		if err = npyio.Write(w, val); err != nil {
			t.Fatalf("writing %s: %v", nm, err)
		}
	}
	if err = zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err = fp.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.npz")
	writeNPZ(t, path, map[string]any{
		"run": []float64{1, 2, 3},
		"idx": []int64{4, 5},
	})
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if len(f.Keys()) != 2 {
		t.Errorf("Keys = %v, want 2 entries", f.Keys())
	}
	if !f.Has("run") || !f.Has("idx") || f.Has("nope") {
		t.Errorf("Has gave wrong answers")
	}
}

func TestFloat64Shapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.npz")
	writeNPZ(t, path, map[string]any{
		"mat": mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
		"vec": []float64{7, 8, 9},
	})
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	m, err := f.Float64("mat")
	if err != nil {
		t.Fatal(err)
	}
	if m.NumDims() != 2 || m.Dim(0) != 2 || m.Dim(1) != 3 {
		t.Fatalf("mat dims wrong: %d x %d", m.Dim(0), m.Dim(1))
	}
	if m.Value([]int{1, 2}) != 6 {
		t.Errorf("mat[1,2] = %v, want 6", m.Value([]int{1, 2}))
	}

	v, err := f.Float64("vec")
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 3 || v.Values[2] != 9 {
		t.Errorf("vec = %v", v.Values)
	}
}

func TestConvert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.npz")
	writeNPZ(t, path, map[string]any{
		"i64": []int64{1, 2, 3},
		"f32": []float32{0.5, 1.5},
	})
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	iv, err := f.Float64("i64")
	if err != nil {
		t.Fatal(err)
	}
	if iv.Values[0] != 1 || iv.Values[2] != 3 {
		t.Errorf("i64 converted = %v", iv.Values)
	}

	fv, err := f.Float32("f32")
	if err != nil {
		t.Fatal(err)
	}
	if fv.Values[0] != 0.5 || fv.Values[1] != 1.5 {
		t.Errorf("f32 = %v", fv.Values)
	}
}

func TestMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.npz")
	writeNPZ(t, path, map[string]any{"run": []float64{1}})
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err = f.Float64("sresp"); err == nil {
		t.Errorf("missing key did not error")
	}
}

func TestNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.npz")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Errorf("corrupt archive did not error")
	}
}
